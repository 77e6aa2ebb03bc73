// Package memory provides heap accounting for structural memory claimed by
// in-process data structures.
//
// # Overview
//
// Long-running engines that build large transient data structures need a way
// to bound their growth. This package defines the accounting boundary those
// structures report to, and a concrete budget-enforcing implementation:
//
//   - Tracker: the interface a tracked structure calls around every change to
//     its backing storage. AllocateHeap may refuse; ReleaseHeap never fails.
//   - Pool: a limit-bounded Tracker safe for concurrent use by many
//     structures. Refuses allocations that would exceed its limit and keeps
//     usage statistics.
//   - NopTracker: accepts everything and records nothing, for callers that
//     opt out of accounting.
//
// # Shallow cost
//
// Trackers account for structural memory only: the backing buffer of a
// container, not the elements it references. ShallowSizeOfSlice and
// ShallowSizeOfInstance compute those costs with overflow-checked arithmetic.
//
// # Usage
//
//	pool := memory.NewPool(64 << 20) // 64 MB budget
//	list, err := trackable.NewArrayList[*Row](pool)
//	if err != nil {
//	    return err // budget already exhausted
//	}
//	defer list.Close()
//
// # Metrics
//
// NewPoolCollector exposes a Pool's usage as prometheus gauges:
//
//	reg.MustRegister(memory.NewPoolCollector("query", pool))
//
// # Thread safety
//
// Pool is safe for concurrent use. Tracked structures themselves are
// generally not; see their own documentation.
package memory
