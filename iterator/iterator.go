package iterator

import "iter"

// List is an append-only ordered collection.
// The zero value is an empty list.
type List[T any] struct {
	items []T
}

// NewList creates a List seeded with items in the given order.
func NewList[T any](items ...T) *List[T] {
	l := &List[T]{items: make([]T, len(items))}
	copy(l.items, items)

	return l
}

// Append adds v to the end of the list.
// Complexity: O(1) amortized.
func (l *List[T]) Append(v T) {
	l.items = append(l.items, v)
}

// Len returns the number of elements.
func (l *List[T]) Len() int { return len(l.items) }

// Iterator returns a cursor over a snapshot of the current elements.
// Later Appends do not affect an already-created iterator.
// Complexity: O(N) for the snapshot.
func (l *List[T]) Iterator() *Iterator[T] {
	snap := make([]T, len(l.items))
	copy(snap, l.items)

	return &Iterator[T]{items: snap}
}

// All returns an iter.Seq over a snapshot, for use with range.
func (l *List[T]) All() iter.Seq[T] {
	it := l.Iterator()

	return func(yield func(T) bool) {
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// Enumerate returns an iter.Seq2 of (index, element) over a snapshot.
func (l *List[T]) Enumerate() iter.Seq2[int, T] {
	it := l.Iterator()

	return func(yield func(int, T) bool) {
		for i := 0; ; i++ {
			v, ok := it.Next()
			if !ok {
				return
			}
			if !yield(i, v) {
				return
			}
		}
	}
}

// Iterator is a forward cursor over a fixed element sequence.
type Iterator[T any] struct {
	items []T
	pos   int
}

// HasNext reports whether Next will yield another element.
func (it *Iterator[T]) HasNext() bool { return it.pos < len(it.items) }

// Next yields the next element. The second return value is false once the
// sequence is exhausted; the first is then the zero value.
func (it *Iterator[T]) Next() (T, bool) {
	if !it.HasNext() {
		var zero T

		return zero, false
	}
	v := it.items[it.pos]
	it.pos++

	return v, true
}
