package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/snaplane/internal/carousel"
)

// Theme holds the colors the lane, header and footer are painted with.
type Theme struct {
	Name string

	Background string // behind the lane
	Surface    string // header and footer bars
	CardBg     string // resting cards
	FocusBg    string // centered card

	SelectionBg   string // centered card that is also selected
	SelectionText string

	CardBorder  string
	FocusBorder string

	Text    string
	Muted   string
	Faint   string
	Accent  string
	Warning string
	Danger  string
	Info    string
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Text       lipgloss.Style
	MutedText  lipgloss.Style
	FaintText  lipgloss.Style
	AccentText lipgloss.Style
	DangerText lipgloss.Style

	Footer lipgloss.Style
	Logo   lipgloss.Style
	Card   lipgloss.Style

	phaseColors map[carousel.Phase]string
	background  string
	muted       string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	fg := func(c string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}
	return Styles{
		Text:       fg(t.Text),
		MutedText:  fg(t.Muted),
		FaintText:  fg(t.Faint),
		AccentText: fg(t.Accent),
		DangerText: fg(t.Danger).Bold(true),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),
		Logo: fg(t.Warning).Bold(true),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.CardBorder)).
			BorderBackground(lipgloss.Color(t.Background)).
			Background(lipgloss.Color(t.CardBg)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		phaseColors: map[carousel.Phase]string{
			carousel.PhaseIdle:                  t.Muted,
			carousel.PhaseUserScrolling:         t.Warning,
			carousel.PhaseProgrammaticSelecting: t.Info,
		},
		background: t.Background,
		muted:      t.Muted,
	}
}

// PhaseStyle returns a badge style for the given carousel phase.
func (s Styles) PhaseStyle(phase carousel.Phase) lipgloss.Style {
	color := s.phaseColors[phase]
	if color == "" {
		color = s.muted
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.background)).
		Background(lipgloss.Color(color)).
		Padding(0, 1)
}

// WithBackground returns a copy of Styles whose text styles sit on bgColor
// instead of inheriting the terminal default.
func (s Styles) WithBackground(bgColor string) Styles {
	bg := lipgloss.Color(bgColor)
	out := s
	out.Text = s.Text.Background(bg)
	out.MutedText = s.MutedText.Background(bg)
	out.FaintText = s.FaintText.Background(bg)
	out.AccentText = s.AccentText.Background(bg)
	out.DangerText = s.DangerText.Background(bg)
	out.Footer = s.Footer.Background(bg)
	out.Logo = s.Logo.Background(bg)
	return out
}

var themes = map[string]Theme{
	"Nightfox": nightfoxTheme(),
	"Slate":    slateTheme(),
}

var themeOrder = []string{"Nightfox", "Slate"}

// GetTheme returns a theme by name, falling back to Nightfox.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return nightfoxTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

// nightfoxTheme uses the Nightfox palette (github.com/EdenEast/nightfox.nvim).
func nightfoxTheme() Theme {
	return Theme{
		Name:          "Nightfox",
		Background:    "#131a24",
		Surface:       "#192330",
		CardBg:        "#212e3f",
		FocusBg:       "#29394f",
		SelectionBg:   "#2b3b51",
		SelectionText: "#dfdfe0",
		CardBorder:    "#39506d",
		FocusBorder:   "#86abdc",
		Text:          "#cdcecf",
		Muted:         "#738091",
		Faint:         "#71839b",
		Accent:        "#719cd6",
		Warning:       "#dbc074",
		Danger:        "#c94f6d",
		Info:          "#63cdcf",
	}
}

// slateTheme uses Tailwind's slate and sky scales.
func slateTheme() Theme {
	return Theme{
		Name:          "Slate",
		Background:    "#020617",
		Surface:       "#0f172a",
		CardBg:        "#1e293b",
		FocusBg:       "#334155",
		SelectionBg:   "#0369a1",
		SelectionText: "#f8fafc",
		CardBorder:    "#475569",
		FocusBorder:   "#7dd3fc",
		Text:          "#e2e8f0",
		Muted:         "#94a3b8",
		Faint:         "#64748b",
		Accent:        "#38bdf8",
		Warning:       "#fbbf24",
		Danger:        "#f87171",
		Info:          "#22d3ee",
	}
}
