package carousel

// Origin tags which update path produced a write.
type Origin int

const (
	// OriginExternal is a write made by the owner of the state.
	OriginExternal Origin = iota
	// OriginGesture is a write derived from the user's scrolling.
	OriginGesture
	// OriginProgrammatic is a write the carousel makes while applying an
	// external change.
	OriginProgrammatic
)

func (o Origin) String() string {
	switch o {
	case OriginGesture:
		return "gesture"
	case OriginProgrammatic:
		return "programmatic"
	default:
		return "external"
	}
}

// Binding is a read/write state handle shared between the caller and the
// carousel. Every write carries its origin so observers can tell their own
// echoes from foreign changes.
type Binding[T comparable] struct {
	value     T
	listeners map[int]func(T, Origin)
	nextID    int
}

// NewBinding returns a binding holding initial.
func NewBinding[T comparable](initial T) *Binding[T] {
	return &Binding[T]{value: initial}
}

// Get returns the current value.
func (b *Binding[T]) Get() T {
	return b.value
}

// Set stores v and notifies subscribers. Writing the current value is a
// no-op and reports false.
func (b *Binding[T]) Set(v T, origin Origin) bool {
	if v == b.value {
		return false
	}
	b.value = v
	for id := 0; id < b.nextID; id++ {
		if fn, ok := b.listeners[id]; ok {
			fn(v, origin)
		}
	}
	return true
}

// Subscribe registers fn for future changes and returns its removal func.
func (b *Binding[T]) Subscribe(fn func(T, Origin)) func() {
	if fn == nil {
		return func() {}
	}
	if b.listeners == nil {
		b.listeners = make(map[int]func(T, Origin))
	}
	id := b.nextID
	b.nextID++
	b.listeners[id] = fn
	return func() {
		delete(b.listeners, id)
	}
}

// Selection is an optional item value.
type Selection[T comparable] struct {
	Item T
	OK   bool
}

// Some wraps v as a present selection.
func Some[T comparable](v T) Selection[T] {
	return Selection[T]{Item: v, OK: true}
}

// None returns the empty selection.
func None[T comparable]() Selection[T] {
	return Selection[T]{}
}
