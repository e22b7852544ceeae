// Package carousel implements the reconciliation core of a horizontal
// snapping carousel.
//
// # Overview
//
// A carousel lays items out in a horizontal lane, keeps one of them centered
// and mirrors which one that is into caller-owned state: a current index and
// an optional selection. Rendering is left to the host; this package only
// deals with geometry, scroll offsets and the state machine that keeps the
// two write paths (user gestures and external changes) from feeding back
// into each other.
//
// # Components
//
//   - layout.go: Layout and Geometry; slot widths, pitch, centering offsets
//   - reconcile.go: CenteredIndex, offset to index with right-favouring ties
//   - tracker.go: Tracker, the live offset plus drag and animation signals
//   - settle.go: Settle, a generation-keyed resettable settle timer
//   - binding.go: Binding and Selection, two-way state handles tagged by origin
//   - list.go: List, the caller-owned item collection
//   - carousel.go: Carousel, the synchronizer and its Phase state machine
//
// # Data Flow
//
//	drag / animation frame
//	       │
//	       ▼
//	┌──────────────┐  ScrollEvent   ┌────────────────┐
//	│   Tracker    │ ─────────────> │ HandleScroll() │
//	└──────────────┘                └───────┬────────┘
//	                                        │ CenteredIndex()
//	                                        ▼
//	                         Index / Selection bindings  (OriginGesture)
//
//	external Set(OriginExternal)
//	       │
//	       ▼
//	selectionChanged / indexChanged ──> Tracker.AnimateTo()  (OriginProgrammatic)
//
// # Phases
//
// The synchronizer is always in one of three phases:
//
//   - PhaseIdle: both paths may write.
//   - PhaseUserScrolling: entered on every gesture-derived update. External
//     selection changes are ignored; external index changes only update the
//     selection. The settle firing reconciles the final offset, so the
//     gesture wins over anything ignored meanwhile.
//   - PhaseProgrammaticSelecting: entered while an external change is being
//     applied. Animation frames do not write back. A new drag takes over.
//
// Both guards are cleared by the settle timer. Every motion event re-arms it
// with a new generation and a firing for an older generation is dropped, so
// a stale timer can never end a newer interaction early.
//
// # Hosting
//
// The package is single-threaded and has no goroutines or timers of its own.
// After each call the host asks SettleRequest whether a settle firing must be
// scheduled and Animating whether to keep delivering Frame calls. A Bubble
// Tea host turns both into tea.Tick commands.
//
//	c := carousel.New(carousel.Options[string]{
//		Items:  carousel.NewList("a", "b", "c"),
//		Layout: carousel.Layout{ItemWidth: 20, ItemSpacing: 2},
//	})
//	c.Mount(80)
//	c.DragBy(-25)
//	c.EndDrag()
//	if gen, delay, ok := c.SettleRequest(); ok {
//		// deliver c.Settled(gen) after delay
//	}
//
// # Error Handling
//
// Nothing here returns an error. Out of range indices are clamped by the
// reconciler or ignored by the synchronizer, an empty list reports no index
// and publishes no selection, and a non-positive pitch skips index
// computation entirely.
package carousel
