package metrics_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"shorty/internal/metrics"
)

type stubPool struct{}

func (stubPool) AcquiredConns() int32 { return 3 }
func (stubPool) IdleConns() int32     { return 2 }
func (stubPool) TotalConns() int32    { return 5 }
func (stubPool) MaxConns() int32      { return 20 }

type stubCache struct{}

func (stubCache) Stats() (uint64, uint64, float64) { return 30, 10, 0.75 }

type captureRecorder struct {
	mu      sync.Mutex
	samples []metrics.InfraMetric
}

func (r *captureRecorder) RecordInfra(m metrics.InfraMetric) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.samples = append(r.samples, m)
}

func (r *captureRecorder) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.samples)
}

func TestCollector_Sample(t *testing.T) {
	c := metrics.NewCollector(&captureRecorder{}, func() metrics.PoolStats { return stubPool{} }, stubCache{}, time.Second)

	m := c.Sample()

	assert.Equal(t, 3, m.PoolAcquired)
	assert.Equal(t, 2, m.PoolIdle)
	assert.Equal(t, 5, m.PoolTotal)
	assert.Equal(t, 20, m.PoolMax)
	assert.Equal(t, int64(30), m.CacheHits)
	assert.Equal(t, int64(10), m.CacheMisses)
	assert.InDelta(t, 0.75, m.CacheHitRatio, 1e-9)
	assert.Positive(t, m.Goroutines)
	assert.False(t, m.Time.IsZero())
}

func TestCollector_SampleWithoutSources(t *testing.T) {
	c := metrics.NewCollector(&captureRecorder{}, nil, nil, time.Second)

	m := c.Sample()

	assert.Zero(t, m.PoolMax)
	assert.Zero(t, m.CacheHits)
	assert.Positive(t, m.Goroutines)
}

func TestCollector_Run(t *testing.T) {
	rec := &captureRecorder{}
	c := metrics.NewCollector(rec, nil, stubCache{}, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()

	assert.Eventually(t, func() bool { return rec.len() >= 2 }, time.Second, 5*time.Millisecond)

	cancel()
	assert.NoError(t, <-done)
}
