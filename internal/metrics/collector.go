package metrics

import (
	"context"
	"runtime"
	"time"
)

// PoolStats is satisfied by *pgxpool.Stat.
type PoolStats interface {
	AcquiredConns() int32
	IdleConns() int32
	TotalConns() int32
	MaxConns() int32
}

type CacheStats interface {
	Stats() (hits, misses uint64, ratio float64)
}

type InfraRecorder interface {
	RecordInfra(m InfraMetric)
}

// Collector samples connection pool, cache and runtime figures on a fixed
// interval. pool and cache are optional.
type Collector struct {
	recorder InfraRecorder
	pool     func() PoolStats
	cache    CacheStats
	interval time.Duration
	now      func() time.Time
}

func NewCollector(recorder InfraRecorder, pool func() PoolStats, cache CacheStats, interval time.Duration) *Collector {
	return &Collector{
		recorder: recorder,
		pool:     pool,
		cache:    cache,
		interval: interval,
		now:      time.Now,
	}
}

// Run records a sample every interval until ctx is done.
func (c *Collector) Run(ctx context.Context) error {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			c.recorder.RecordInfra(c.Sample())
		}
	}
}

func (c *Collector) Sample() InfraMetric {
	m := InfraMetric{
		Time:       c.now(),
		Goroutines: runtime.NumGoroutine(),
	}

	if c.pool != nil {
		stat := c.pool()
		m.PoolAcquired = int(stat.AcquiredConns())
		m.PoolIdle = int(stat.IdleConns())
		m.PoolTotal = int(stat.TotalConns())
		m.PoolMax = int(stat.MaxConns())
	}

	if c.cache != nil {
		hits, misses, ratio := c.cache.Stats()
		m.CacheHits = int64(hits)
		m.CacheMisses = int64(misses)
		m.CacheHitRatio = ratio
	}

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)
	m.HeapAllocMB = float64(memStats.HeapAlloc) / 1024 / 1024

	return m
}
