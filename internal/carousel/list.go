package carousel

// ChangeType identifies a list mutation.
type ChangeType int

const (
	ChangeSet ChangeType = iota // full replacement
	ChangeAdd
	ChangeRemove
	ChangeClear
)

// Change describes a list mutation.
type Change[T comparable] struct {
	Type  ChangeType
	Index int
	Item  T
}

// List is the caller-owned ordered item collection. The carousel reads it
// and subscribes to its changes; it never mutates it.
type List[T comparable] struct {
	items     []T
	listeners map[int]func(Change[T])
	nextID    int
}

// NewList returns a list holding a copy of items.
func NewList[T comparable](items ...T) *List[T] {
	l := &List[T]{}
	l.items = append(l.items, items...)
	return l
}

// Len returns the number of items.
func (l *List[T]) Len() int {
	return len(l.items)
}

// At returns the item at i and whether i was in bounds.
func (l *List[T]) At(i int) (T, bool) {
	if i < 0 || i >= len(l.items) {
		var zero T
		return zero, false
	}
	return l.items[i], true
}

// Index returns the position of the first item equal to v, or -1.
func (l *List[T]) Index(v T) int {
	for i, item := range l.items {
		if item == v {
			return i
		}
	}
	return -1
}

// Items returns a copy of the items.
func (l *List[T]) Items() []T {
	if len(l.items) == 0 {
		return nil
	}
	dup := make([]T, len(l.items))
	copy(dup, l.items)
	return dup
}

// Set replaces all items.
func (l *List[T]) Set(items []T) {
	l.items = append(l.items[:0:0], items...)
	l.notify(Change[T]{Type: ChangeSet})
}

// Append adds item at the end.
func (l *List[T]) Append(item T) {
	l.items = append(l.items, item)
	l.notify(Change[T]{Type: ChangeAdd, Index: len(l.items) - 1, Item: item})
}

// Insert places item at i, clamped to the list bounds.
func (l *List[T]) Insert(i int, item T) {
	if i < 0 {
		i = 0
	}
	if i > len(l.items) {
		i = len(l.items)
	}
	l.items = append(l.items, item)
	copy(l.items[i+1:], l.items[i:])
	l.items[i] = item
	l.notify(Change[T]{Type: ChangeAdd, Index: i, Item: item})
}

// RemoveAt deletes the item at i. Out of range indices are ignored.
func (l *List[T]) RemoveAt(i int) {
	if i < 0 || i >= len(l.items) {
		return
	}
	old := l.items[i]
	l.items = append(l.items[:i], l.items[i+1:]...)
	l.notify(Change[T]{Type: ChangeRemove, Index: i, Item: old})
}

// Clear removes all items.
func (l *List[T]) Clear() {
	l.items = l.items[:0]
	l.notify(Change[T]{Type: ChangeClear})
}

// Subscribe registers fn for future mutations and returns its removal func.
func (l *List[T]) Subscribe(fn func(Change[T])) func() {
	if fn == nil {
		return func() {}
	}
	if l.listeners == nil {
		l.listeners = make(map[int]func(Change[T]))
	}
	id := l.nextID
	l.nextID++
	l.listeners[id] = fn
	return func() {
		delete(l.listeners, id)
	}
}

func (l *List[T]) notify(c Change[T]) {
	for id := 0; id < l.nextID; id++ {
		if fn, ok := l.listeners[id]; ok {
			fn(c)
		}
	}
}
