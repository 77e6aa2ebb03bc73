package memory

// Tracker is the accounting boundary a tracked structure reports to. It is
// called with the shallow cost of backing storage at well-defined points:
// construction, each growth, and final release.
//
// Implementations must tolerate concurrent callers; many independent
// structures share one Tracker.
type Tracker interface {
	// AllocateHeap registers bytes of structural memory about to be
	// retained. It returns ErrMemoryLimitExceeded (possibly wrapped) when
	// the budget cannot accommodate the request, in which case the caller
	// must not retain the memory.
	AllocateHeap(bytes int64) error

	// ReleaseHeap deregisters bytes previously registered with
	// AllocateHeap. It never fails. Callers must release exactly what they
	// allocated.
	ReleaseHeap(bytes int64)
}

// NopTracker is a Tracker that accepts every allocation and records nothing.
type NopTracker struct{}

var _ Tracker = NopTracker{}

func (NopTracker) AllocateHeap(bytes int64) error { return nil }

func (NopTracker) ReleaseHeap(bytes int64) {}
