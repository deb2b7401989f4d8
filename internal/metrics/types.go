package metrics

import "time"

type HTTPMetric struct {
	Time       time.Time
	Method     string
	Path       string
	StatusCode int
	DurationMs float64
	ClientIP   string
	Error      string
}

type InfraMetric struct {
	Time          time.Time
	PoolAcquired  int
	PoolIdle      int
	PoolTotal     int
	PoolMax       int
	CacheHits     int64
	CacheMisses   int64
	CacheHitRatio float64
	Goroutines    int
	HeapAllocMB   float64
}

var (
	httpColumns = []string{
		"time", "method", "path", "status_code", "duration_ms", "client_ip", "error",
	}
	infraColumns = []string{
		"time", "pool_acquired", "pool_idle", "pool_total", "pool_max",
		"cache_hits", "cache_misses", "cache_hit_ratio", "goroutines", "heap_alloc_mb",
	}
)

func httpRow(m HTTPMetric) []any {
	return []any{m.Time, m.Method, m.Path, m.StatusCode, m.DurationMs, m.ClientIP, m.Error}
}

func infraRow(m InfraMetric) []any {
	return []any{
		m.Time, m.PoolAcquired, m.PoolIdle, m.PoolTotal, m.PoolMax,
		m.CacheHits, m.CacheMisses, m.CacheHitRatio, m.Goroutines, m.HeapAllocMB,
	}
}
