package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the status bar: phase, index, selection and the state
// of the items file.
func (m Model) renderHeader() string {
	// Header uses Surface background
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBackdrop(m.theme.Surface)

	phase := m.lane.Phase()
	parts := []string{
		bg.Words("snaplane", styles.Logo),
		styles.PhaseStyle(phase).Render(phase.String()),
		bg.Words(m.indexLabel(), styles.Text),
	}

	if item, ok := m.lane.Selected(); ok {
		parts = append(parts,
			bg.Words("selected", styles.FaintText)+bg.Fill(1)+
				bg.Words(truncateMiddle(item, 32), styles.AccentText))
	} else {
		parts = append(parts, bg.Words("no selection", styles.MutedText))
	}

	parts = append(parts, bg.Words(m.lane.Layout().Sizing.String(), styles.MutedText))

	if m.snapshot.LastError != nil {
		last := "soon"
		if !m.lastUpdated.IsZero() {
			last = m.lastUpdated.Format("15:04:05")
		}
		label := "items unreadable"
		if m.snapshot.IsStale() {
			label = "items stale"
		}
		parts = append(parts,
			bg.Words(label, styles.DangerText),
			bg.Words(last, styles.MutedText))
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Width(m.width).
		MaxWidth(m.width).
		Render(bg.Join(parts, "  "))
}

// indexLabel formats the bound index as "3/10", or "-/0" when empty.
func (m Model) indexLabel() string {
	n := m.lane.Items().Len()
	if idx, ok := m.lane.Index(); ok {
		return fmt.Sprintf("%d/%d", idx+1, n)
	}
	return fmt.Sprintf("-/%d", n)
}

// renderFooter renders the short key help.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	return styles.Footer.Width(m.width).MaxWidth(m.width).Render(m.help.View(m.keys))
}
