// Package trackable provides growable containers whose structural memory is
// accounted against a memory.Tracker.
//
// # Overview
//
// ArrayList is a resizable, index-addressable list of caller-owned elements.
// Only the list's own backing storage is tracked: the buffer's shallow cost
// plus a fixed per-instance overhead. Element contents are never copied,
// cloned, or accounted for.
//
// # Accounting protocol
//
// The tracker is consulted at exactly three points:
//
//   - Construction reserves the instance overhead plus the initial buffer's
//     shallow cost. If the reservation is denied no list is produced.
//   - Each growth allocates the new buffer's cost before releasing the old
//     buffer's cost, so the tracker never under-reports retained memory. It
//     may transiently over-report by the old buffer's size during the swap.
//   - Close releases everything still tracked, once. Close is idempotent.
//
// A denied or overflowing growth leaves the list exactly as it was; there is
// no partially-grown state.
//
// # Thread safety
//
// An ArrayList has a single logical owner and is not safe for concurrent
// use. The Tracker it reports to must be, since many lists share it.
package trackable
