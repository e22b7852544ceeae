package carousel

import "math"

// CenteredIndex converts a scroll offset into the index of the item whose
// slot contains the viewport's horizontal midpoint.
//
// The midpoint in content coordinates is -offset + viewportWidth/2. Slot i
// owns the half-open range [i*pitch, (i+1)*pitch), so a midpoint exactly on
// a boundary belongs to the item on the right. The result is clamped to
// [0, count-1]. It reports false when there is nothing to index: an empty
// list, a non-positive pitch, or non-finite input.
func CenteredIndex(offset, viewportWidth, pitch float64, count int) (int, bool) {
	if count <= 0 || pitch <= 0 {
		return 0, false
	}
	if !finite(offset) || !finite(viewportWidth) || !finite(pitch) {
		return 0, false
	}

	center := -offset + viewportWidth/2
	candidate := math.Floor(center / pitch)
	switch {
	case candidate < 0:
		return 0, true
	case candidate >= float64(count-1):
		return count - 1, true
	}
	return int(candidate), true
}

// CenteredIndex reconciles offset against the geometry.
func (g Geometry) CenteredIndex(offset float64) (int, bool) {
	return CenteredIndex(offset, g.ViewportWidth, g.Pitch, g.Count)
}
