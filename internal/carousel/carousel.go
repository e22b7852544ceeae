package carousel

import (
	"fmt"
	"iter"
	"time"
)

// Phase is the synchronizer state. Exactly one write path is live per phase.
type Phase int

const (
	// PhaseIdle accepts both external changes and gesture-derived writes.
	PhaseIdle Phase = iota
	// PhaseUserScrolling is the guard set by gesture-derived updates. External
	// selection changes are ignored until the settle window elapses.
	PhaseUserScrolling
	// PhaseProgrammaticSelecting is the guard set while an external change is
	// being applied. Offset updates do not write back.
	PhaseProgrammaticSelecting
)

func (p Phase) String() string {
	switch p {
	case PhaseUserScrolling:
		return "scrolling"
	case PhaseProgrammaticSelecting:
		return "selecting"
	default:
		return "idle"
	}
}

// Options configure a Carousel. Nil handles are created internally.
type Options[T comparable] struct {
	Items       *List[T]
	Selection   *Binding[Selection[T]]
	Index       *Binding[int]
	Layout      Layout
	Space       string
	SettleDelay time.Duration
	Render      func(index int, item T) string
	Logf        func(format string, args ...any)
}

// Carousel keeps the scroll position of a lane and the caller's
// selection/index state in step.
type Carousel[T comparable] struct {
	items     *List[T]
	selection *Binding[Selection[T]]
	index     *Binding[int]
	layout    Layout
	render    func(int, T) string
	logf      func(string, ...any)

	tracker  *Tracker
	settle   *Settle
	geometry Geometry
	offset   float64
	phase    Phase
	mounted  bool

	request   uint64
	requested bool

	unsubscribe []func()
}

// New builds an unmounted carousel.
func New[T comparable](opts Options[T]) *Carousel[T] {
	c := &Carousel[T]{
		items:     opts.Items,
		selection: opts.Selection,
		index:     opts.Index,
		layout:    opts.Layout.Normalize(),
		render:    opts.Render,
		logf:      opts.Logf,
		tracker:   NewTracker(opts.Space),
		settle:    NewSettle(opts.SettleDelay),
	}
	if c.items == nil {
		c.items = NewList[T]()
	}
	if c.selection == nil {
		c.selection = NewBinding(None[T]())
	}
	if c.index == nil {
		c.index = NewBinding(0)
	}
	if c.logf == nil {
		c.logf = func(string, ...any) {}
	}
	return c
}

// Items returns the item list handle.
func (c *Carousel[T]) Items() *List[T] { return c.items }

// SelectionBinding returns the selection handle.
func (c *Carousel[T]) SelectionBinding() *Binding[Selection[T]] { return c.selection }

// IndexBinding returns the current index handle.
func (c *Carousel[T]) IndexBinding() *Binding[int] { return c.index }

// Tracker returns the scroll position tracker driving this carousel.
func (c *Carousel[T]) Tracker() *Tracker { return c.tracker }

// Space returns the scroll observation channel name.
func (c *Carousel[T]) Space() string { return c.tracker.Space() }

// Phase returns the synchronizer state.
func (c *Carousel[T]) Phase() Phase { return c.phase }

// Geometry returns the current layout resolution.
func (c *Carousel[T]) Geometry() Geometry { return c.geometry }

// Layout returns the sizing configuration.
func (c *Carousel[T]) Layout() Layout { return c.layout }

// Offset returns the last observed scroll offset.
func (c *Carousel[T]) Offset() float64 { return c.offset }

// Mounted reports whether Mount has been called without a matching Unmount.
func (c *Carousel[T]) Mounted() bool { return c.mounted }

// Index returns the current index when it addresses an item.
func (c *Carousel[T]) Index() (int, bool) {
	idx := c.index.Get()
	if idx < 0 || idx >= c.items.Len() {
		return 0, false
	}
	return idx, true
}

// Selected returns the selected item, if any.
func (c *Carousel[T]) Selected() (T, bool) {
	sel := c.selection.Get()
	return sel.Item, sel.OK
}

// CenteredIndex reconciles the last observed offset without side effects.
func (c *Carousel[T]) CenteredIndex() (int, bool) {
	return c.geometry.CenteredIndex(c.offset)
}

// Mount attaches the carousel to its state handles and lays it out for the
// viewport. Mounting twice only resizes.
func (c *Carousel[T]) Mount(viewportWidth float64) {
	if c.mounted {
		c.Resize(viewportWidth)
		return
	}
	c.mounted = true
	c.phase = PhaseIdle
	c.unsubscribe = append(c.unsubscribe,
		c.tracker.AddListener(c.HandleScroll),
		c.items.Subscribe(c.itemsChanged),
		c.selection.Subscribe(c.selectionChanged),
		c.index.Subscribe(c.indexChanged),
	)
	c.relayout(viewportWidth)

	if c.items.Len() == 0 {
		c.selection.Set(None[T](), OriginProgrammatic)
		c.tracker.JumpTo(0)
		return
	}

	idx, ok := c.Index()
	if !ok {
		if sel := c.selection.Get(); sel.OK {
			if found := c.items.Index(sel.Item); found >= 0 {
				c.index.Set(found, OriginProgrammatic)
				idx, ok = found, true
			}
		}
	}
	if !ok {
		c.tracker.JumpTo(c.geometry.OffsetFor(c.index.Get()))
		return
	}
	c.publishSelection(idx, OriginProgrammatic)
	c.tracker.JumpTo(c.geometry.OffsetFor(idx))
}

// Unmount detaches from the state handles and discards transient state.
func (c *Carousel[T]) Unmount() {
	for _, fn := range c.unsubscribe {
		fn()
	}
	c.unsubscribe = nil
	c.settle.Stop()
	c.tracker.Stop()
	c.tracker.EndDrag()
	c.requested = false
	c.phase = PhaseIdle
	c.mounted = false
}

// Resize relayouts for a new viewport width and keeps the current item
// centered.
func (c *Carousel[T]) Resize(viewportWidth float64) {
	c.relayout(viewportWidth)
	c.recenter()
}

// SetLayout swaps the sizing configuration and keeps the current item
// centered.
func (c *Carousel[T]) SetLayout(layout Layout) {
	c.layout = layout.Normalize()
	c.relayout(c.geometry.ViewportWidth)
	c.recenter()
}

// BeginDrag, DragBy and EndDrag forward gesture signals to the tracker.
func (c *Carousel[T]) BeginDrag() { c.tracker.BeginDrag() }

// DragBy moves the lane by dx points.
func (c *Carousel[T]) DragBy(dx float64) { c.tracker.DragBy(dx) }

// EndDrag ends the gesture; the lane then snaps to the centered item.
func (c *Carousel[T]) EndDrag() { c.tracker.EndDrag() }

// Dragging reports whether a gesture is in progress.
func (c *Carousel[T]) Dragging() bool { return c.tracker.Dragging() }

// Animating reports whether the host must keep delivering frames.
func (c *Carousel[T]) Animating() bool { return c.tracker.Animating() }

// Frame advances the running animation by one frame and reports whether more
// frames are needed.
func (c *Carousel[T]) Frame() bool {
	if !c.mounted {
		return false
	}
	return c.tracker.Step()
}

// SettleRequest returns the newest settle generation that the host must
// deliver to Settled after the returned delay. Each request is handed out
// once.
func (c *Carousel[T]) SettleRequest() (gen uint64, delay time.Duration, ok bool) {
	if !c.requested {
		return 0, 0, false
	}
	c.requested = false
	return c.request, c.settle.Delay(), true
}

// HandleScroll consumes one offset update. Events from another observation
// space are ignored.
func (c *Carousel[T]) HandleScroll(ev ScrollEvent) {
	if !c.mounted || ev.Space != c.tracker.Space() {
		return
	}
	moved := ev.Offset != c.offset
	c.offset = ev.Offset

	switch ev.Kind {
	case Jumped:
	case DragStarted:
		c.enter(PhaseUserScrolling)
		c.arm()
	case DragChanged:
		if moved {
			c.reconcile()
		}
	case DragEnded:
		c.reconcile()
		c.snap()
	case Animated:
		if c.phase == PhaseProgrammaticSelecting {
			c.arm()
			return
		}
		if moved {
			c.reconcile()
		}
	}
}

// Settled delivers a settle firing. Stale generations are ignored.
func (c *Carousel[T]) Settled(gen uint64) {
	if !c.mounted || !c.settle.Fire(gen) {
		return
	}
	if c.tracker.Dragging() || c.tracker.Animating() {
		c.arm()
		return
	}
	if idx, ok := c.CenteredIndex(); ok {
		origin := OriginGesture
		if c.phase == PhaseProgrammaticSelecting {
			origin = OriginProgrammatic
		}
		c.index.Set(idx, origin)
		c.publishSelection(idx, origin)
	}
	c.enter(PhaseIdle)
}

// Visible yields the items whose slots lie within cache points of the
// viewport, in order. The range is recomputed on every iteration.
func (c *Carousel[T]) Visible(cache float64) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		start, end := c.geometry.VisibleRange(c.offset, cache)
		for i := start; i < end; i++ {
			item, ok := c.items.At(i)
			if !ok || !yield(i, item) {
				return
			}
		}
	}
}

// Render produces the content for one item using the configured callback.
func (c *Carousel[T]) Render(index int, item T) string {
	if c.render == nil {
		return fmt.Sprint(item)
	}
	return c.render(index, item)
}

func (c *Carousel[T]) reconcile() {
	if c.phase == PhaseProgrammaticSelecting {
		return
	}
	idx, ok := c.CenteredIndex()
	if !ok {
		return
	}
	c.enter(PhaseUserScrolling)
	c.arm()
	if c.index.Get() != idx {
		c.index.Set(idx, OriginGesture)
		c.publishSelection(idx, OriginGesture)
	}
}

func (c *Carousel[T]) snap() {
	idx, ok := c.CenteredIndex()
	if !ok {
		return
	}
	c.tracker.AnimateTo(c.geometry.OffsetFor(idx))
	c.arm()
}

func (c *Carousel[T]) selectionChanged(sel Selection[T], origin Origin) {
	if origin != OriginExternal {
		return
	}
	if c.phase == PhaseUserScrolling {
		c.logf("carousel: external selection ignored while scrolling")
		return
	}
	if !sel.OK {
		return
	}
	idx := c.items.Index(sel.Item)
	if idx < 0 {
		c.logf("carousel: external selection not in list")
		c.repairSelection()
		return
	}
	c.selectProgrammatically(idx)
}

// repairSelection puts the selection back on the item at the current index,
// or clears it when the index addresses nothing.
func (c *Carousel[T]) repairSelection() {
	if idx, ok := c.Index(); ok {
		c.publishSelection(idx, OriginProgrammatic)
		return
	}
	c.selection.Set(None[T](), OriginProgrammatic)
}

func (c *Carousel[T]) indexChanged(idx int, origin Origin) {
	if origin != OriginExternal {
		return
	}
	if c.phase == PhaseProgrammaticSelecting {
		c.logf("carousel: external index %d ignored while selecting", idx)
		return
	}
	item, ok := c.items.At(idx)
	if !ok {
		c.logf("carousel: external index %d out of bounds (count %d)", idx, c.items.Len())
		return
	}
	if c.phase == PhaseUserScrolling {
		c.selection.Set(Some(item), OriginProgrammatic)
		return
	}
	c.selectProgrammatically(idx)
}

func (c *Carousel[T]) itemsChanged(change Change[T]) {
	c.relayout(c.geometry.ViewportWidth)
	count := c.items.Len()
	if count == 0 {
		c.selection.Set(None[T](), OriginProgrammatic)
		c.tracker.Stop()
		c.tracker.JumpTo(0)
		return
	}

	target := -1
	if sel := c.selection.Get(); sel.OK {
		target = c.follow(c.index.Get(), change, sel.Item)
	}
	if target < 0 {
		target = c.geometry.Clamp(c.index.Get())
	}
	c.index.Set(target, OriginProgrammatic)
	c.publishSelection(target, OriginProgrammatic)
	c.recenter()
}

// follow finds the selected item after a list change. The slot it occupied
// wins over an equal item elsewhere, so duplicates never pull the lane away.
func (c *Carousel[T]) follow(idx int, change Change[T], item T) int {
	switch change.Type {
	case ChangeAdd:
		if change.Index <= idx {
			idx++
		}
	case ChangeRemove:
		if change.Index < idx {
			idx--
		}
	}
	if got, ok := c.items.At(idx); ok && got == item {
		return idx
	}
	return c.items.Index(item)
}

func (c *Carousel[T]) selectProgrammatically(idx int) {
	c.enter(PhaseProgrammaticSelecting)
	c.index.Set(idx, OriginProgrammatic)
	c.publishSelection(idx, OriginProgrammatic)
	c.tracker.AnimateTo(c.geometry.OffsetFor(idx))
	c.arm()
}

func (c *Carousel[T]) publishSelection(idx int, origin Origin) {
	if item, ok := c.items.At(idx); ok {
		c.selection.Set(Some(item), origin)
	}
}

// recenter moves the lane back onto the current index after a relayout. An
// active drag keeps its position; the next motion reconciles against the new
// geometry.
func (c *Carousel[T]) recenter() {
	if !c.mounted || c.tracker.Dragging() || c.geometry.Count == 0 {
		return
	}
	target := c.geometry.OffsetFor(c.index.Get())
	if c.tracker.Animating() {
		c.tracker.AnimateTo(target)
		return
	}
	c.tracker.JumpTo(target)
}

func (c *Carousel[T]) relayout(viewportWidth float64) {
	c.geometry = c.layout.Measure(viewportWidth, c.items.Len())
	c.tracker.SetBounds(c.geometry.Bounds())
}

func (c *Carousel[T]) arm() {
	c.request = c.settle.Arm()
	c.requested = true
}

func (c *Carousel[T]) enter(p Phase) {
	if c.phase == p {
		return
	}
	c.logf("carousel: %s -> %s", c.phase, p)
	c.phase = p
}
