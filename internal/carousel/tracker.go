package carousel

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// DefaultSpace names the scroll observation channel when none is configured.
const DefaultSpace = "carousel"

// Animation frame rate and spring parameters. The spring is critically damped
// so snaps never overshoot.
const (
	FrameRate     = 60
	FrameInterval = time.Second / FrameRate

	springFrequency = 9.0
	springDamping   = 1.0
	settleEpsilon   = 0.25
)

// EventKind distinguishes the signals a Tracker delivers.
type EventKind int

const (
	DragStarted EventKind = iota
	DragChanged
	DragEnded
	Animated
	Jumped
)

func (k EventKind) String() string {
	switch k {
	case DragStarted:
		return "drag-started"
	case DragChanged:
		return "drag-changed"
	case DragEnded:
		return "drag-ended"
	case Animated:
		return "animated"
	default:
		return "jumped"
	}
}

// ScrollEvent is one offset update from a Tracker.
type ScrollEvent struct {
	Space  string
	Offset float64
	Kind   EventKind
}

// IsDrag reports whether the event belongs to a user gesture.
func (e ScrollEvent) IsDrag() bool {
	return e.Kind == DragStarted || e.Kind == DragChanged || e.Kind == DragEnded
}

// Tracker holds the live horizontal offset of the lane: the position of the
// content origin relative to the viewport origin, negative once the content
// has moved left. Only the latest value is kept.
type Tracker struct {
	space  string
	offset float64

	lo, hi  float64
	bounded bool

	dragging  bool
	animating bool
	target    float64
	velocity  float64
	spring    harmonica.Spring

	listeners map[int]func(ScrollEvent)
	nextID    int
}

// NewTracker returns a tracker publishing on space, or DefaultSpace when
// space is empty.
func NewTracker(space string) *Tracker {
	if space == "" {
		space = DefaultSpace
	}
	return &Tracker{
		space:  space,
		spring: harmonica.NewSpring(harmonica.FPS(FrameRate), springFrequency, springDamping),
	}
}

// Space returns the observation channel name.
func (t *Tracker) Space() string {
	return t.space
}

// Offset returns the latest offset.
func (t *Tracker) Offset() float64 {
	return t.offset
}

// Dragging reports whether a drag is in progress.
func (t *Tracker) Dragging() bool {
	return t.dragging
}

// Animating reports whether an animation still has frames to run.
func (t *Tracker) Animating() bool {
	return t.animating
}

// Target returns the destination of the current or last animation.
func (t *Tracker) Target() float64 {
	return t.target
}

// SetBounds limits drags and animation targets to [lo, hi].
func (t *Tracker) SetBounds(lo, hi float64) {
	if lo > hi {
		lo, hi = hi, lo
	}
	t.lo, t.hi = lo, hi
	t.bounded = true
	// A live drag is pulled inside the new range so the next delta starts
	// from a reachable offset.
	if t.dragging {
		if v := t.clamp(t.offset); v != t.offset {
			t.offset = v
			t.emit(DragChanged)
		}
	}
}

// AddListener registers fn for offset updates and returns its removal func.
func (t *Tracker) AddListener(fn func(ScrollEvent)) func() {
	if fn == nil {
		return func() {}
	}
	if t.listeners == nil {
		t.listeners = make(map[int]func(ScrollEvent))
	}
	id := t.nextID
	t.nextID++
	t.listeners[id] = fn
	return func() {
		delete(t.listeners, id)
	}
}

// BeginDrag starts a gesture, interrupting any animation.
func (t *Tracker) BeginDrag() {
	if t.dragging {
		return
	}
	t.animating = false
	t.velocity = 0
	t.dragging = true
	t.emit(DragStarted)
}

// DragBy moves the offset by dx as part of a gesture, starting one if needed.
func (t *Tracker) DragBy(dx float64) {
	if !finite(dx) {
		return
	}
	if !t.dragging {
		t.BeginDrag()
	}
	t.offset = t.clamp(t.offset + dx)
	t.emit(DragChanged)
}

// EndDrag finishes the gesture.
func (t *Tracker) EndDrag() {
	if !t.dragging {
		return
	}
	t.dragging = false
	t.emit(DragEnded)
}

// JumpTo moves to offset immediately, cancelling any animation.
func (t *Tracker) JumpTo(offset float64) {
	if !finite(offset) {
		return
	}
	t.animating = false
	t.velocity = 0
	t.offset = t.clamp(offset)
	t.target = t.offset
	t.emit(Jumped)
}

// AnimateTo starts moving towards target. Call Step once per frame.
func (t *Tracker) AnimateTo(target float64) {
	if !finite(target) {
		return
	}
	t.target = t.clamp(target)
	t.animating = t.offset != t.target
}

// Stop cancels an animation where it stands.
func (t *Tracker) Stop() {
	t.animating = false
	t.velocity = 0
}

// Step advances the animation by one frame and reports whether more frames
// are needed. The final frame lands exactly on the target.
func (t *Tracker) Step() bool {
	if !t.animating {
		return false
	}
	t.offset, t.velocity = t.spring.Update(t.offset, t.velocity, t.target)
	if math.Abs(t.offset-t.target) < settleEpsilon && math.Abs(t.velocity) < settleEpsilon {
		t.offset = t.target
		t.velocity = 0
		t.animating = false
	}
	t.emit(Animated)
	return t.animating
}

func (t *Tracker) clamp(v float64) float64 {
	if !t.bounded {
		return v
	}
	return math.Max(t.lo, math.Min(t.hi, v))
}

func (t *Tracker) emit(kind EventKind) {
	ev := ScrollEvent{Space: t.space, Offset: t.offset, Kind: kind}
	for id := 0; id < t.nextID; id++ {
		if fn, ok := t.listeners[id]; ok {
			fn(ev)
		}
	}
}
