package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestComposeRows_ClipsAtEdges(t *testing.T) {
	tests := []struct {
		name  string
		cards []card
		width int
		want  string
	}{
		{
			name:  "empty lane",
			width: 4,
			want:  "    ",
		},
		{
			name: "left and right clipping",
			cards: []card{
				{col: -2, width: 5, lines: []string{"abcde"}},
				{col: 4, width: 5, lines: []string{"fghij"}},
				{col: 9, width: 5, lines: []string{"klmno"}},
			},
			width: 10,
			want:  "cde fghijk",
		},
		{
			name: "overlap from rounding keeps the earlier card",
			cards: []card{
				{col: 0, width: 4, lines: []string{"aaaa"}},
				{col: 3, width: 4, lines: []string{"bbbb"}},
			},
			width: 8,
			want:  "aaaabbb ",
		},
		{
			name: "cards fully outside are skipped",
			cards: []card{
				{col: -10, width: 5, lines: []string{"xxxxx"}},
				{col: 2, width: 2, lines: []string{"ok"}},
				{col: 12, width: 5, lines: []string{"yyyyy"}},
			},
			width: 6,
			want:  "  ok  ",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := composeRows(tt.cards, tt.width, 1, Backdrop{})
			if len(rows) != 1 {
				t.Fatalf("rows = %d, want 1", len(rows))
			}
			if rows[0] != tt.want {
				t.Fatalf("row = %q, want %q", rows[0], tt.want)
			}
		})
	}
}

func TestComposeRows_PadsShortCards(t *testing.T) {
	rows := composeRows([]card{{col: 1, width: 3, lines: []string{"abc"}}}, 5, 3, Backdrop{})
	want := []string{" abc ", "     ", "     "}
	for i := range want {
		if rows[i] != want[i] {
			t.Fatalf("row %d = %q, want %q", i, rows[i], want[i])
		}
	}
}

func TestComposeRows_KeepsStyledWidth(t *testing.T) {
	styled := GetTheme("Nightfox").Styles().AccentText.Render("abcdef")
	rows := composeRows([]card{{col: -2, width: 6, lines: []string{styled}}}, 3, 1, Backdrop{})
	if got := ansi.Strip(rows[0]); got != "cde" {
		t.Fatalf("row = %q, want %q", got, "cde")
	}
}

func TestComposeRows_PaintsGaps(t *testing.T) {
	cards := []card{{col: 2, width: 2, lines: []string{"ok"}}}
	plain := composeRows(cards, 6, 2, Backdrop{})
	painted := composeRows(cards, 6, 2, NewBackdrop("#131a24"))
	for i := range plain {
		if got := ansi.Strip(painted[i]); got != plain[i] {
			t.Fatalf("painted row %d = %q, want %q", i, got, plain[i])
		}
		if w := ansi.StringWidth(painted[i]); w != 6 {
			t.Fatalf("painted row %d width = %d, want 6", i, w)
		}
	}
}

func TestRenderLane_OnlyNearVisibleItems(t *testing.T) {
	items := make([]string, 200)
	for i := range items {
		items[i] = "item-" + string(rune('A'+i%26))
	}
	items[0] = "first"
	items[199] = "last"
	m := newTestModel(t, items...)

	lane := ansi.Strip(m.renderLane(CardHeight))
	if !strings.Contains(lane, "first") {
		t.Fatalf("centered first card missing:\n%s", lane)
	}
	if strings.Contains(lane, "last") {
		t.Fatalf("far item rendered:\n%s", lane)
	}
	for _, row := range strings.Split(lane, "\n") {
		if w := ansi.StringWidth(row); w != 50 {
			t.Fatalf("row width = %d, want 50: %q", w, row)
		}
	}
}

func TestTruncateMiddle(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"abcdefghij", 7, "abc…hij"},
		{"abcdefghij", 4, "abcdefghij"},
	}
	for _, tt := range tests {
		if got := truncateMiddle(tt.in, tt.n); got != tt.want {
			t.Fatalf("truncateMiddle(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}
