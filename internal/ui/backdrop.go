package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Backdrop paints blank cells and words onto one background color. Lipgloss
// resets between segments, so every space has to carry the color itself or
// the terminal default shows through the gaps.
//
// The zero Backdrop paints nothing and pads with plain spaces.
type Backdrop struct {
	paint lipgloss.Style
	set   bool
}

// NewBackdrop returns a Backdrop for the given color.
func NewBackdrop(color string) Backdrop {
	return Backdrop{
		paint: lipgloss.NewStyle().Background(lipgloss.Color(color)),
		set:   true,
	}
}

// Fill returns n blank cells.
func (b Backdrop) Fill(n int) string {
	if n <= 0 {
		return ""
	}
	pad := strings.Repeat(" ", n)
	if !b.set {
		return pad
	}
	return b.paint.Render(pad)
}

// Words renders text in style, keeping runs of spaces on the backdrop.
func (b Backdrop) Words(text string, style lipgloss.Style) string {
	if text == "" {
		return ""
	}
	if b.set {
		style = style.Inherit(b.paint)
	}
	words := strings.Split(text, " ")
	for i, w := range words {
		if w != "" {
			words[i] = style.Render(w)
		}
	}
	return strings.Join(words, b.Fill(1))
}

// Join joins parts with sep painted on the backdrop.
func (b Backdrop) Join(parts []string, sep string) string {
	if b.set {
		sep = b.paint.Render(sep)
	}
	return strings.Join(parts, sep)
}
