package trackable

import (
	"fmt"
	"slices"

	"github.com/joshuapare/heapkit/internal/overflow"
	"github.com/joshuapare/heapkit/memory"
)

// ArrayList is a heap-accounted growable list. It tracks its own structure
// with the supplied memory.Tracker, not the elements within.
type ArrayList[T any] struct {
	tracker memory.Tracker

	// instanceBytes is the fixed per-instance overhead registered at
	// construction and released at close.
	instanceBytes int64

	// bufferBytes is the shallow cost of the current backing buffer as
	// registered with the tracker.
	bufferBytes int64

	size   int
	items  []T
	closed bool
}

// NewArrayList creates a list with initial capacity 1.
func NewArrayList[T any](tracker memory.Tracker) (*ArrayList[T], error) {
	return NewArrayListWithCapacity[T](1, tracker)
}

// NewArrayListWithCapacity creates a list with the given initial capacity.
// The instance overhead plus the buffer's shallow cost is reserved with the
// tracker before the list exists; a denied reservation produces no list and
// the tracker error is returned unchanged. A negative capacity is rejected
// before any tracker interaction.
func NewArrayListWithCapacity[T any](initialCapacity int, tracker memory.Tracker) (*ArrayList[T], error) {
	if initialCapacity < 0 {
		return nil, fmt.Errorf("capacity %d: %w", initialCapacity, ErrNegativeCapacity)
	}
	bufferBytes, err := memory.ShallowSizeOfSlice[T](initialCapacity)
	if err != nil {
		return nil, err
	}
	instanceBytes := memory.ShallowSizeOfInstance((*ArrayList[T])(nil))
	if err := tracker.AllocateHeap(instanceBytes + bufferBytes); err != nil {
		return nil, err
	}
	return &ArrayList[T]{
		tracker:       tracker,
		instanceBytes: instanceBytes,
		bufferBytes:   bufferBytes,
		items:         make([]T, initialCapacity),
	}, nil
}

// Add appends item, growing the backing buffer by 50% plus one slot when
// full. A failed growth (budget denied or capacity overflow) returns the
// error and leaves the list unchanged.
func (l *ArrayList[T]) Add(item T) error {
	if l.closed {
		return ErrClosed
	}
	if l.size == len(l.items) {
		if err := l.grow(l.size + 1); err != nil {
			return err
		}
	}
	l.items[l.size] = item
	l.size++
	return nil
}

// AddAll appends items in order, stopping at the first failed append.
func (l *ArrayList[T]) AddAll(items ...T) error {
	for _, item := range items {
		if err := l.Add(item); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the element at index. Valid indices are [0, Size()).
func (l *ArrayList[T]) Get(index int) (T, error) {
	var zero T
	if l.closed {
		return zero, ErrClosed
	}
	if index < 0 || index >= l.size {
		return zero, fmt.Errorf("get %d of %d: %w", index, l.size, ErrIndexOutOfRange)
	}
	return l.items[index], nil
}

// Set writes value at index without growing. Valid indices are
// [0, Capacity()); writing past Size() leaves Size() unchanged and the slot
// has no meaning until appends reach it.
func (l *ArrayList[T]) Set(index int, value T) error {
	if l.closed {
		return ErrClosed
	}
	if index < 0 || index >= len(l.items) {
		return fmt.Errorf("set %d of %d: %w", index, len(l.items), ErrIndexOutOfRange)
	}
	l.items[index] = value
	return nil
}

// Size returns the logical element count. It reports zero once the list has
// been closed.
func (l *ArrayList[T]) Size() int {
	return l.size
}

// Capacity returns the current backing-buffer length. It never decreases
// while the list is live and reports zero once the list has been closed.
func (l *ArrayList[T]) Capacity() int {
	return len(l.items)
}

// TrackedBytes returns the bytes currently registered with the tracker on
// behalf of this list: the instance overhead plus the buffer's shallow cost,
// or zero once closed.
func (l *ArrayList[T]) TrackedBytes() int64 {
	if l.closed {
		return 0
	}
	return l.instanceBytes + l.bufferBytes
}

// Sort reorders the first Size() elements in place by cmp, which must define
// a total order (negative when a < b, zero when equal, positive when a > b).
// Slots past Size() are untouched; the sort is not stable.
func (l *ArrayList[T]) Sort(cmp func(a, b T) int) error {
	if l.closed {
		return ErrClosed
	}
	slices.SortFunc(l.items[:l.size], cmp)
	return nil
}

// Clear zeroes the first Size() slots so the elements become independently
// reclaimable, and resets Size() to zero. Capacity and tracked bytes are
// unchanged. Slots past Size() are never eagerly zeroed by other operations;
// callers must not rely on reclamation timing for them.
func (l *ArrayList[T]) Clear() error {
	if l.closed {
		return ErrClosed
	}
	clear(l.items[:l.size])
	l.size = 0
	return nil
}

// Iterator returns a forward-only iterator over the first Size() elements as
// observed now. It is not restartable, and mutating the list while iterating
// is unspecified.
func (l *ArrayList[T]) Iterator() (*Iterator[T], error) {
	if l.closed {
		return nil, ErrClosed
	}
	return &Iterator[T]{items: l.items, size: l.size}, nil
}

// Close releases everything tracked on behalf of this list and makes it
// permanently inert. Closing an already-closed list is a no-op; every other
// operation on a closed list fails with ErrClosed.
func (l *ArrayList[T]) Close() error {
	if l.closed {
		return nil
	}
	l.tracker.ReleaseHeap(l.instanceBytes + l.bufferBytes)
	l.items = nil
	l.size = 0
	l.bufferBytes = 0
	l.closed = true
	return nil
}

// grow swaps in a larger buffer and reports the size change to the tracker.
// The new buffer's cost is allocated strictly before the old buffer's cost
// is released, so the tracker never under-reports retained memory. On any
// failure the list is left exactly as it was.
func (l *ArrayList[T]) grow(minimumCapacity int) error {
	newCapacity, err := overflow.GrownCapacity(l.size, minimumCapacity)
	if err != nil {
		return err
	}
	newBufferBytes, err := memory.ShallowSizeOfSlice[T](newCapacity)
	if err != nil {
		return err
	}
	if err := l.tracker.AllocateHeap(newBufferBytes); err != nil {
		return err
	}
	newItems := make([]T, newCapacity)
	copy(newItems, l.items[:min(l.size, newCapacity)])
	l.items = newItems
	l.tracker.ReleaseHeap(l.bufferBytes)
	l.bufferBytes = newBufferBytes
	return nil
}
