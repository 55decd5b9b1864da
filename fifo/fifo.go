// Package fifo provides a fixed-capacity ring buffer that drops the oldest
// unread item when pushed while full.
package fifo

// FIFO is not safe for concurrent use. Producer and consumer must run on the
// same goroutine or be serialized by the caller.
type FIFO[T any] struct {
	head, tail uint // write and read cursors; slot index is cursor % len(buf)
	buf        []T
}

func New[T any](size int) *FIFO[T] {
	if size <= 0 {
		panic("fifo: size must be positive")
	}
	return &FIFO[T]{buf: make([]T, size)}
}

func (f *FIFO[T]) IsEmpty() bool {
	return f.head == f.tail
}

// Len returns the number of unread items.
func (f *FIFO[T]) Len() int {
	return int(f.head - f.tail)
}

func (f *FIFO[T]) Cap() int {
	return len(f.buf)
}

// Push never fails. If the buffer is full, the oldest unread item is lost.
func (f *FIFO[T]) Push(item T) {
	size := uint(len(f.buf))
	if f.head-f.tail == size {
		f.tail++ // Discard the old one
	}
	f.buf[f.head%size] = item
	f.head++
}

// Pop returns the next unread item, or false if the buffer is empty.
func (f *FIFO[T]) Pop() (T, bool) {
	var zero T
	if f.IsEmpty() {
		return zero, false
	}
	idx := f.tail % uint(len(f.buf))
	item := f.buf[idx]
	f.buf[idx] = zero
	f.tail++
	return item, true
}
