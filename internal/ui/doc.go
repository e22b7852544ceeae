// Package ui renders the snaplane carousel with Bubble Tea.
//
// # Architecture Overview
//
// Model wraps a carousel.Carousel[string] and acts as its host: it turns
// terminal input into drag signals, delivers settle timers and animation
// frames as messages, and pushes item lists from the state.Store into the
// carousel's list.
//
//	tea.KeyMsg / tea.MouseMsg ──> BeginDrag / DragBy / EndDrag
//	                          ──> IndexBinding().Set / SelectionBinding().Set
//	snapshotMsg               ──> Items().Set (when Revision moved)
//	settleMsg{gen}            ──> Settled(gen)
//	frameMsg                  ──> Frame()
//
// After every message Model.pump asks the carousel for a pending settle
// request and, while it animates, schedules the next frame with tea.Tick.
// Stale settle generations are dropped by the carousel itself.
//
// # Package Structure
//
//   - app.go: Model, Update loop, message and command plumbing, Run
//   - keys.go: key bindings (bubbles/key) shared with the help views
//   - lane.go: lane rendering; only near-visible items are drawn and cards
//     crossing the viewport edges are clipped with x/ansi
//   - header.go: status bar (phase, index, selection, items file health)
//     and the footer help line
//   - help.go: full help overlay
//   - theme.go, style_helpers.go: palettes and lipgloss helpers
//
// # Input
//
// Keyboard drags have no release event, so h/l (and the mouse wheel) start a
// drag that ends once no further input arrives within KeyDragIdle. Mouse
// press, motion and release map directly onto the drag lifecycle.
//
// n/p/g/G write the index and s writes a random selection, both as external
// writes, which is how a caller outside the carousel would drive it.
package ui
