package memory

import (
	"fmt"
	"log/slog"
	"math"
	"sync"

	"github.com/joshuapare/heapkit/internal/overflow"
)

// Pool is a limit-bounded Tracker shared by many tracked structures. All
// methods are safe for concurrent use.
type Pool struct {
	mu sync.Mutex

	// limit is the budget in bytes. Zero means unbounded.
	limit int64

	// used is the sum of allocated-but-not-released bytes.
	used int64

	stats PoolStats

	logger *slog.Logger
}

// PoolStats holds cumulative usage counters for a Pool.
type PoolStats struct {
	// Allocations is the number of successful AllocateHeap calls.
	Allocations uint64

	// Denials is the number of AllocateHeap calls refused over the limit.
	Denials uint64

	// BytesAllocated is the total bytes ever successfully allocated.
	BytesAllocated int64

	// HighWater is the largest value used has reached.
	HighWater int64
}

// PoolOption configures a Pool at construction.
type PoolOption func(*Pool)

// WithLogger makes the pool log a warning on every denied allocation.
func WithLogger(logger *slog.Logger) PoolOption {
	return func(p *Pool) { p.logger = logger }
}

// NewPool creates a pool with the given budget in bytes. A limit of zero
// means the pool tracks usage and refuses an allocation only when it would
// overflow the int64 ledger.
func NewPool(limit int64, opts ...PoolOption) *Pool {
	p := &Pool{limit: limit}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var _ Tracker = (*Pool)(nil)

// AllocateHeap registers bytes against the pool's budget. When the request
// would exceed the limit it returns ErrMemoryLimitExceeded with the request,
// current usage, and limit attached, and the ledger is left unchanged. The
// comparisons are overflow-proof: the limit check never adds (bytes is
// compared against the remaining headroom, both non-negative), and a request
// that would wrap the int64 ledger is denied even on an unbounded pool.
func (p *Pool) AllocateHeap(bytes int64) error {
	if bytes < 0 {
		return fmt.Errorf("allocate %d: %w", bytes, ErrNegativeBytes)
	}

	p.mu.Lock()
	newUsed, ok := overflow.Add64(p.used, bytes)
	if (p.limit > 0 && bytes > p.limit-p.used) || !ok {
		p.stats.Denials++
		used, limit := p.used, p.limit
		p.mu.Unlock()
		if p.logger != nil {
			p.logger.Warn("heap allocation denied",
				"requested", bytes, "used", used, "limit", limit)
		}
		return fmt.Errorf("allocate %d bytes (used %d of %d): %w",
			bytes, used, limit, ErrMemoryLimitExceeded)
	}
	p.used = newUsed
	p.stats.Allocations++
	if total, ok := overflow.Add64(p.stats.BytesAllocated, bytes); ok {
		p.stats.BytesAllocated = total
	} else {
		p.stats.BytesAllocated = math.MaxInt64
	}
	if p.used > p.stats.HighWater {
		p.stats.HighWater = p.used
	}
	p.mu.Unlock()
	return nil
}

// ReleaseHeap deregisters bytes previously allocated. Releasing more than was
// allocated corrupts the ledger; the pool does not second-guess its callers.
func (p *Pool) ReleaseHeap(bytes int64) {
	if bytes < 0 {
		return
	}
	p.mu.Lock()
	p.used -= bytes
	p.mu.Unlock()
}

// Used returns the bytes currently allocated from the pool.
func (p *Pool) Used() int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.used
}

// Limit returns the pool's budget in bytes, zero if unbounded.
func (p *Pool) Limit() int64 {
	return p.limit
}

// Stats returns a copy of the pool's cumulative counters.
func (p *Pool) Stats() PoolStats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stats
}

// snapshot returns used and the cumulative counters under one lock, so
// callers exposing both never observe used ahead of the high-water mark.
func (p *Pool) snapshot() (int64, PoolStats) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.used, p.stats
}
