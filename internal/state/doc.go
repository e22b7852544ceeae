// Package state provides thread-safe sharing of the item list between the
// background poller and the UI.
//
// # Overview
//
// The poller re-reads the items file and calls Store.Update; the UI takes a
// Snapshot on every tick and only pushes items into the carousel when the
// snapshot's Revision has moved.
//
//	Producer (Poller):             Consumer (UI):
//	┌────────────────┐            ┌─────────────────┐
//	│ itemsrc.Read() │            │ tickMsg         │
//	│      ↓         │            │      ↓          │
//	│ store.Update() │───────────→│ store.Snapshot()│
//	│      ↓         │  (mutex)   │      ↓          │
//	│  repeat...     │            │ Items().Set()   │
//	└────────────────┘            └─────────────────┘
//
// # Update Semantics
//
// A successful read replaces the items and bumps Revision when they differ
// from what is stored. A failed read keeps the previous items, records
// LastError and increments ConsecutiveFailures; the next success resets it.
//
// Snapshot returns copies, so callers may mutate what they get back.
//
// The zero Store is ready to use.
package state
