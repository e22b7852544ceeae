// Package app is the composition root for snaplane.
//
// # Overview
//
// Run wires configuration, preferences, logging, the item poller and the UI
// together:
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()    Layout, settle window, items file
//	       ├─────> prefs.Load()     Theme and sizing chosen in the UI
//	       ├─────> setupLogging()   tea.LogToFile or discard
//	       ├─────> refresh()        Populate the store once
//	       ├─────> StartPoller()    Re-read the items file
//	       └─────> ui.Run()         Start TUI (blocks)
//
// # Polling Behavior
//
// The poller re-reads the items file every interval (default 2s) and
// publishes the result into a state.Store. The UI picks changes up on its own
// tick, so the list may change while a drag or a programmatic scroll is in
// flight; the carousel follows the selected item across such changes.
//
// Read failures are logged and recorded in the store. Each consecutive
// failure doubles the wait, capped at 30s; the first success restores the
// normal cadence.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Configuration file unreadable or invalid
//   - Debug log file cannot be opened
//
// Recoverable errors (logged, polling continues):
//   - Items file unreadable
package app
