package cache

import (
	"time"

	"github.com/dgraph-io/ristretto"

	"shorty/internal/domain"
)

// entryOverhead approximates the per-entry bookkeeping beyond the strings.
const entryOverhead = 64

// LinkCache holds resolved links. An entry never outlives the link it
// mirrors, so a cached redirect cannot survive the record's expiry.
type LinkCache struct {
	cache  *ristretto.Cache
	maxTTL time.Duration
	now    func() time.Time
}

func New(maxSizePow2 int, maxTTL time.Duration) (*LinkCache, error) {
	maxCost := max(1, int64(1)<<maxSizePow2)
	numCounters := max(1, maxCost/100) // ~100 bytes per entry estimate

	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: numCounters,
		MaxCost:     maxCost,
		BufferItems: 64,
		Metrics:     true,
	})
	if err != nil {
		return nil, err
	}
	return &LinkCache{cache: cache, maxTTL: maxTTL, now: time.Now}, nil
}

func (c *LinkCache) Get(slug string) (*domain.Link, bool) {
	val, found := c.cache.Get(slug)
	if !found {
		return nil, false
	}
	link := val.(domain.Link)
	if link.Remaining(c.now()) <= 0 {
		return nil, false
	}
	return &link, true
}

func (c *LinkCache) Set(link *domain.Link) {
	ttl := link.Remaining(c.now())
	if ttl <= 0 {
		return
	}
	if c.maxTTL > 0 {
		ttl = min(ttl, c.maxTTL)
	}
	cost := int64(len(link.Slug)+len(link.URL)) + entryOverhead
	c.cache.SetWithTTL(link.Slug, *link, cost, ttl)
}

// Wait blocks until buffered writes are applied.
func (c *LinkCache) Wait() {
	c.cache.Wait()
}

func (c *LinkCache) Close() {
	c.cache.Close()
}

func (c *LinkCache) Stats() (hits, misses uint64, ratio float64) {
	metrics := c.cache.Metrics
	hits = metrics.Hits()
	misses = metrics.Misses()
	ratio = metrics.Ratio()
	return
}
