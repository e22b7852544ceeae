package carousel

import "time"

// DefaultSettleDelay is how long motion must stop before scrolling counts
// as finished.
const DefaultSettleDelay = 500 * time.Millisecond

// Settle is a resettable one-shot timer keyed by generation. The host
// delivers Fire(gen) after Delay for each generation returned by Arm; only
// the newest generation is honoured, so re-arming replaces any earlier
// pending firing instead of stacking another one.
type Settle struct {
	delay time.Duration
	gen   uint64
	armed bool
}

// NewSettle returns a timer with the given delay, or DefaultSettleDelay when
// delay is not positive.
func NewSettle(delay time.Duration) *Settle {
	if delay <= 0 {
		delay = DefaultSettleDelay
	}
	return &Settle{delay: delay}
}

// Delay returns the settle window.
func (s *Settle) Delay() time.Duration {
	return s.delay
}

// Arm starts or restarts the window and returns the generation to deliver.
func (s *Settle) Arm() uint64 {
	s.gen++
	s.armed = true
	return s.gen
}

// Fire reports whether gen is the newest armed generation. A true result
// disarms the timer.
func (s *Settle) Fire(gen uint64) bool {
	if !s.armed || gen != s.gen {
		return false
	}
	s.armed = false
	return true
}

// Stop invalidates any pending firing.
func (s *Settle) Stop() {
	s.gen++
	s.armed = false
}

// Pending reports whether a firing is outstanding.
func (s *Settle) Pending() bool {
	return s.armed
}
