package memory

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/joshuapare/heapkit/internal/overflow"
)

// ShallowSizeOfSlice returns the shallow cost in bytes of the backing array
// of a []T with the given length: n * sizeof(T), excluding the memory owned
// by whatever the elements reference. The slice header itself is part of the
// owning instance and is covered by ShallowSizeOfInstance.
//
// The multiplication is overflow-checked; a length whose byte cost cannot be
// represented fails with overflow.ErrCapacityOverflow.
func ShallowSizeOfSlice[T any](n int) (int64, error) {
	if n < 0 {
		return 0, fmt.Errorf("slice length %d: %w", n, ErrNegativeBytes)
	}
	var zero T
	elemSize := int64(unsafe.Sizeof(zero))
	total, ok := overflow.Mul64(int64(n), elemSize)
	if !ok {
		return 0, fmt.Errorf("slice length %d, element size %d: %w",
			n, elemSize, overflow.ErrCapacityOverflow)
	}
	return total, nil
}

// ShallowSizeOfInstance returns the shallow cost in bytes of v's type: the
// struct itself including any embedded slice or map headers, excluding
// everything those headers point at. A pointer is dereferenced one level so
// that ShallowSizeOfInstance((*T)(nil)) reports sizeof(T).
func ShallowSizeOfInstance(v any) int64 {
	t := reflect.TypeOf(v)
	if t == nil {
		return 0
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return int64(t.Size())
}
