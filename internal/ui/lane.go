package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// card is one rendered item placed at a lane column.
type card struct {
	col   int
	width int
	lines []string
}

// renderLane draws the near-visible items at their scrolled columns and
// centers the strip vertically in height rows.
func (m Model) renderLane(height int) string {
	if height <= 0 || m.width <= 0 {
		return ""
	}
	geo := m.lane.Geometry()
	if m.lane.Items().Len() == 0 {
		styles := m.theme.Styles()
		msg := "No items"
		if m.config != nil && m.config.ItemsFile != "" {
			msg = "No items in " + truncateMiddle(m.config.ItemsFile, max(m.width-12, 10))
		}
		return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, styles.MutedText.Render(msg))
	}

	centered, hasCentered := m.lane.CenteredIndex()
	selected, hasSelected := m.lane.Selected()

	var cards []card
	offset := m.lane.Offset()
	for i, item := range m.lane.Visible(VisibleCache) {
		w := int(math.Round(geo.ItemWidth))
		if w <= 0 {
			continue
		}
		col := int(math.Round(offset + geo.SlotStart(i)))
		focus := hasCentered && i == centered
		chosen := hasSelected && item == selected
		cards = append(cards, card{
			col:   col,
			width: w,
			lines: m.renderCard(m.lane.Render(i, item), w, focus, chosen),
		})
	}

	rows := composeRows(cards, m.width, CardHeight, NewBackdrop(m.theme.Background))
	strip := strings.Join(rows, "\n")
	return lipgloss.Place(m.width, height, lipgloss.Left, lipgloss.Center, strip,
		lipgloss.WithWhitespaceBackground(lipgloss.Color(m.theme.Background)))
}

// renderCard renders one item as CardHeight lines of exactly width cells.
func (m Model) renderCard(label string, width int, focus, chosen bool) []string {
	style := m.theme.Styles().Card
	switch {
	case focus && chosen:
		style = style.BorderForeground(lipgloss.Color(m.theme.FocusBorder)).
			Background(lipgloss.Color(m.theme.SelectionBg)).
			Foreground(lipgloss.Color(m.theme.SelectionText))
	case focus:
		style = style.BorderForeground(lipgloss.Color(m.theme.FocusBorder)).
			Background(lipgloss.Color(m.theme.FocusBg))
	case chosen:
		style = style.BorderForeground(lipgloss.Color(m.theme.Accent))
	}

	// Narrow cards cannot fit a border and padding.
	if width < 5 {
		fill := Backdrop{paint: lipgloss.NewStyle().Background(style.GetBackground()), set: true}.Fill(width)
		lines := make([]string, CardHeight)
		for i := range lines {
			lines[i] = fill
		}
		return lines
	}

	inner := width - 4
	label = ansi.Truncate(strings.ReplaceAll(label, "\n", " "), inner, "…")
	rendered := style.
		Width(width - 2).
		Height(CardHeight - 2).
		AlignVertical(lipgloss.Center).
		Render(label)
	return strings.Split(rendered, "\n")
}

// composeRows lays the cards out on height rows of exactly width cells,
// clipping the ones that cross the edges. Gaps are painted on bg. Cards must
// be sorted by column.
func composeRows(cards []card, width, height int, bg Backdrop) []string {
	rows := make([]string, height)
	for r := range rows {
		var b strings.Builder
		cursor := 0
		for _, c := range cards {
			end := c.col + c.width
			start := max(c.col, cursor, 0)
			if start >= width || end <= start {
				continue
			}
			line := ""
			if r < len(c.lines) {
				line = c.lines[r]
			}
			if skip := start - c.col; skip > 0 {
				line = ansi.TruncateLeft(line, skip, "")
			}
			if visible := min(end, width) - start; ansi.StringWidth(line) > visible {
				line = ansi.Truncate(line, visible, "")
			}
			b.WriteString(bg.Fill(start - cursor))
			b.WriteString(line)
			cursor = start + ansi.StringWidth(line)
		}
		b.WriteString(bg.Fill(width - cursor))
		rows[r] = b.String()
	}
	return rows
}

// truncateMiddle shortens s to at most n cells by eliding its middle.
func truncateMiddle(s string, n int) string {
	if ansi.StringWidth(s) <= n || n < 5 {
		return s
	}
	head := (n - 1) / 2
	tail := n - 1 - head
	return ansi.Truncate(s, head, "") + "…" + ansi.TruncateLeft(s, ansi.StringWidth(s)-tail, "")
}
