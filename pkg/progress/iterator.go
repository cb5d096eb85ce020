package progress

import "iter"

// Iterator drives a bar from a retained slice: each item pulled
// advances the bar by one unit. A spent iterator stays spent; build a
// fresh one to walk the items again.
type Iterator[T any] struct {
	bar   *Bar
	items []T
	pos   int
}

// NewForSlice creates a bar whose total is len(items) together with an
// iterator over those items.
func NewForSlice[T any](items []T, opts ...Option) (*Bar, *Iterator[T], error) {
	bar, err := New(int64(len(items)), opts...)
	if err != nil {
		return nil, nil, err
	}
	return bar, &Iterator[T]{bar: bar, items: items}, nil
}

// Next returns the item under the cursor and advances, incrementing
// the owning bar once per item. The second return is false once the
// items are exhausted.
func (it *Iterator[T]) Next() (T, bool) {
	if it.pos >= len(it.items) {
		var zero T
		return zero, false
	}

	item := it.items[it.pos]
	it.pos++
	it.bar.Add1()
	return item, true
}

// All yields the remaining items for use with a range statement.
func (it *Iterator[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			item, ok := it.Next()
			if !ok || !yield(item) {
				return
			}
		}
	}
}

// Bar returns the bar this iterator advances.
func (it *Iterator[T]) Bar() *Bar {
	return it.bar
}

// Remaining returns how many items have not been pulled yet.
func (it *Iterator[T]) Remaining() int {
	return len(it.items) - it.pos
}
