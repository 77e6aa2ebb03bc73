package trackable

// Iterator walks the first size elements of a list as observed when the
// iterator was created. Forward-only, not restartable.
type Iterator[T any] struct {
	items []T
	size  int
	next  int
}

// Next advances to the next element, reporting false when exhausted.
//
//	it, _ := list.Iterator()
//	for it.Next() {
//	    use(it.Value())
//	}
func (it *Iterator[T]) Next() bool {
	if it.next >= it.size {
		return false
	}
	it.next++
	return true
}

// Value returns the element Next advanced to. It is only valid after a Next
// call that returned true.
func (it *Iterator[T]) Value() T {
	return it.items[it.next-1]
}
