package ui

import "time"

// Lane geometry in terminal cells.
const (
	// CardHeight is the rendered height of one item card, borders included.
	CardHeight = 5

	// VisibleCache widens the materialized range beyond the viewport edges.
	VisibleCache = 8
)

// Gesture tuning.
const (
	// KeyDragStep is how far one h/l press drags the lane.
	KeyDragStep = 4

	// WheelStep is how far one wheel notch drags the lane.
	WheelStep = 2

	// KeyDragIdle ends a keyboard or wheel drag when no further input arrives.
	KeyDragIdle = 150 * time.Millisecond
)

// Timing constants.
const (
	// DefaultUIInterval is the default store refresh interval.
	DefaultUIInterval = time.Second
)
