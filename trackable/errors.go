package trackable

import (
	"errors"

	"github.com/joshuapare/heapkit/internal/overflow"
)

var (
	// ErrClosed indicates an operation on a list that has been closed.
	ErrClosed = errors.New("trackable: use after close")

	// ErrIndexOutOfRange indicates an index outside the valid range for the
	// operation.
	ErrIndexOutOfRange = errors.New("trackable: index out of range")

	// ErrNegativeCapacity indicates a negative initial capacity. It is
	// rejected before any tracker interaction.
	ErrNegativeCapacity = errors.New("trackable: negative initial capacity")

	// ErrCapacityOverflow indicates a required capacity exceeds the maximum
	// supported backing-store length. Raised before consulting the tracker.
	ErrCapacityOverflow = overflow.ErrCapacityOverflow
)
