package memory

import "github.com/prometheus/client_golang/prometheus"

// PoolCollector exposes a Pool's usage as prometheus gauges. Register one per
// pool; the pool name becomes a label so several pools can share a registry.
type PoolCollector struct {
	pool *Pool

	used      *prometheus.Desc
	limit     *prometheus.Desc
	highWater *prometheus.Desc
}

var _ prometheus.Collector = (*PoolCollector)(nil)

// NewPoolCollector creates a collector reporting the given pool under name.
func NewPoolCollector(name string, pool *Pool) *PoolCollector {
	labels := prometheus.Labels{"pool": name}
	return &PoolCollector{
		pool: pool,
		used: prometheus.NewDesc(
			"heapkit_pool_used_bytes",
			"Structural memory currently allocated from the pool.",
			nil, labels),
		limit: prometheus.NewDesc(
			"heapkit_pool_limit_bytes",
			"Pool budget in bytes, zero when unbounded.",
			nil, labels),
		highWater: prometheus.NewDesc(
			"heapkit_pool_high_water_bytes",
			"Largest value used bytes has reached.",
			nil, labels),
	}
}

func (c *PoolCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.used
	ch <- c.limit
	ch <- c.highWater
}

func (c *PoolCollector) Collect(ch chan<- prometheus.Metric) {
	used, stats := c.pool.snapshot()
	ch <- prometheus.MustNewConstMetric(c.used, prometheus.GaugeValue, float64(used))
	ch <- prometheus.MustNewConstMetric(c.limit, prometheus.GaugeValue, float64(c.pool.Limit()))
	ch <- prometheus.MustNewConstMetric(c.highWater, prometheus.GaugeValue, float64(stats.HighWater))
}
