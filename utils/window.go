package utils

// Window is a bounded FIFO that keeps the last Capacity items pushed.
type Window[T comparable] struct {
	items    []T
	capacity int
}

func NewWindow[T comparable](capacity int) *Window[T] {
	if capacity < 0 {
		panic("window capacity must not be negative")
	}
	return &Window[T]{items: make([]T, 0, capacity+1), capacity: capacity}
}

// Push appends item and drops the oldest entry once over capacity.
func (w *Window[T]) Push(item T) {
	if w.capacity == 0 {
		return
	}
	w.items = append(w.items, item)
	if len(w.items) > w.capacity {
		copy(w.items, w.items[1:])
		w.items = w.items[:w.capacity]
	}
}

func (w *Window[T]) Contains(item T) bool {
	return FindIndex(w.items, item) >= 0
}

func (w *Window[T]) Len() int {
	return len(w.items)
}

func (w *Window[T]) Capacity() int {
	return w.capacity
}

// Items returns a copy, oldest first.
func (w *Window[T]) Items() []T {
	out := make([]T, len(w.items))
	copy(out, w.items)
	return out
}
