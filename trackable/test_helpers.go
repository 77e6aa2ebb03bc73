package trackable

import (
	"fmt"

	"github.com/joshuapare/heapkit/memory"
)

// trackerCall records a single accounting call made against recordingTracker.
type trackerCall struct {
	op    string // "allocate" or "release"
	bytes int64
}

// recordingTracker is a memory.Tracker that records every call for
// assertions. It can be armed to deny a specific allocation by ordinal.
type recordingTracker struct {
	calls []trackerCall

	// denyAllocation denies the Nth AllocateHeap call (1-based). Zero means
	// never deny. Denied calls are not recorded in the ledger.
	denyAllocation int

	allocations int
}

var _ memory.Tracker = (*recordingTracker)(nil)

func (rt *recordingTracker) AllocateHeap(bytes int64) error {
	rt.allocations++
	if rt.denyAllocation != 0 && rt.allocations == rt.denyAllocation {
		return fmt.Errorf("allocate %d bytes: %w", bytes, memory.ErrMemoryLimitExceeded)
	}
	rt.calls = append(rt.calls, trackerCall{op: "allocate", bytes: bytes})
	return nil
}

func (rt *recordingTracker) ReleaseHeap(bytes int64) {
	rt.calls = append(rt.calls, trackerCall{op: "release", bytes: bytes})
}

// net returns the cumulative ledger delta across all recorded calls.
func (rt *recordingTracker) net() int64 {
	var n int64
	for _, c := range rt.calls {
		if c.op == "allocate" {
			n += c.bytes
		} else {
			n -= c.bytes
		}
	}
	return n
}

// minNet returns the lowest value the ledger reached at any point in the
// recorded call sequence. Used to assert the tracker never under-reports
// retained memory during a buffer swap.
func (rt *recordingTracker) minNet() int64 {
	var n, lowest int64
	for _, c := range rt.calls {
		if c.op == "allocate" {
			n += c.bytes
		} else {
			n -= c.bytes
		}
		if n < lowest {
			lowest = n
		}
	}
	return lowest
}

// sliceCost returns the tracked shallow cost of a []T backing buffer of the
// given length. Test capacities are small, so estimation cannot fail.
func sliceCost[T any](n int) int64 {
	cost, err := memory.ShallowSizeOfSlice[T](n)
	if err != nil {
		panic(err)
	}
	return cost
}

// instanceCost returns the fixed per-instance overhead of an ArrayList[T].
func instanceCost[T any]() int64 {
	return memory.ShallowSizeOfInstance((*ArrayList[T])(nil))
}
