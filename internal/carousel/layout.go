package carousel

import "math"

// Sizing selects how the width of each item slot is derived.
type Sizing int

const (
	// SizingFixed gives every item exactly Layout.ItemWidth.
	SizingFixed Sizing = iota
	// SizingViewport gives every item the viewport width minus the edge
	// overlap on both sides, so one item is visible with slivers of its
	// neighbours.
	SizingViewport
)

// String returns the config spelling of the sizing policy.
func (s Sizing) String() string {
	if s == SizingViewport {
		return "viewport"
	}
	return "fixed"
}

// ParseSizing maps a config value to a Sizing. Unknown values report false.
func ParseSizing(value string) (Sizing, bool) {
	switch value {
	case "fixed", "":
		return SizingFixed, true
	case "viewport":
		return SizingViewport, true
	default:
		return SizingFixed, false
	}
}

// Layout is the immutable sizing configuration of a carousel instance.
type Layout struct {
	Sizing       Sizing
	ItemWidth    float64
	ItemSpacing  float64
	EdgesOverlap float64
}

// Geometry is a Layout resolved against a viewport width and item count.
type Geometry struct {
	ViewportWidth float64
	ItemWidth     float64
	Spacing       float64
	Pitch         float64
	ContentWidth  float64
	Count         int
}

// Normalize returns a copy with spacing made non-negative and widths clamped
// to zero.
func (l Layout) Normalize() Layout {
	l.ItemWidth = nonNegative(l.ItemWidth)
	l.ItemSpacing = nonNegative(math.Abs(l.ItemSpacing))
	l.EdgesOverlap = nonNegative(l.EdgesOverlap)
	return l
}

// Measure resolves slot widths and pitch for the given viewport and count.
func (l Layout) Measure(viewportWidth float64, count int) Geometry {
	l = l.Normalize()
	viewportWidth = nonNegative(viewportWidth)
	if count < 0 {
		count = 0
	}

	width := l.ItemWidth
	if l.Sizing == SizingViewport {
		width = nonNegative(viewportWidth - 2*l.EdgesOverlap)
	}

	pitch := width + l.ItemSpacing
	if pitch < width || !finite(pitch) {
		pitch = width
	}
	spacing := pitch - width

	g := Geometry{
		ViewportWidth: viewportWidth,
		ItemWidth:     width,
		Spacing:       spacing,
		Pitch:         pitch,
		Count:         count,
	}
	if count > 0 {
		g.ContentWidth = float64(count)*pitch - spacing
	}
	return g
}

// Valid reports whether index computation is possible with this geometry.
func (g Geometry) Valid() bool {
	return g.Count > 0 && g.Pitch > 0 && finite(g.Pitch)
}

// Clamp limits index to [0, Count-1]. The result is meaningless when Count
// is zero.
func (g Geometry) Clamp(index int) int {
	if index >= g.Count {
		index = g.Count - 1
	}
	if index < 0 {
		index = 0
	}
	return index
}

// SlotStart returns the content coordinate where the slot of index begins.
func (g Geometry) SlotStart(index int) float64 {
	return float64(index) * g.Pitch
}

// OffsetFor returns the scroll offset that centers item index in the
// viewport. Reconciling the returned offset yields index again.
func (g Geometry) OffsetFor(index int) float64 {
	if g.Count == 0 {
		return 0
	}
	index = g.Clamp(index)
	return -(g.SlotStart(index) + g.ItemWidth/2 - g.ViewportWidth/2)
}

// Bounds returns the offset range a drag may move within: from the offset
// centering the last item up to the one centering the first.
func (g Geometry) Bounds() (lo, hi float64) {
	if g.Count == 0 {
		return 0, 0
	}
	return g.OffsetFor(g.Count - 1), g.OffsetFor(0)
}

// VisibleRange returns the half-open range of indices whose slots intersect
// the viewport at offset, widened by cache points on each side.
func (g Geometry) VisibleRange(offset, cache float64) (start, end int) {
	if !g.Valid() || !finite(offset) {
		return 0, 0
	}
	if cache < 0 || !finite(cache) {
		cache = 0
	}
	visibleStart := -offset - cache
	visibleEnd := -offset + g.ViewportWidth + cache
	start = int(math.Floor(visibleStart / g.Pitch))
	end = int(math.Ceil(visibleEnd / g.Pitch))
	if start < 0 {
		start = 0
	}
	if end > g.Count {
		end = g.Count
	}
	if end < start {
		end = start
	}
	return start, end
}

func nonNegative(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if math.IsInf(v, 1) {
		return math.MaxFloat64
	}
	return v
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
