package repository

import (
	"context"
	"sync"
	"time"

	"shorty/internal/domain"
)

// MemoryRepository keeps links in process memory. Expired entries read as
// absent straight away and are dropped by PurgeExpired.
type MemoryRepository struct {
	mu    sync.RWMutex
	links map[string]domain.Link
	now   func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return NewMemoryRepositoryWithClock(time.Now)
}

func NewMemoryRepositoryWithClock(now func() time.Time) *MemoryRepository {
	return &MemoryRepository{
		links: make(map[string]domain.Link),
		now:   now,
	}
}

func (r *MemoryRepository) Get(ctx context.Context, slug string) (*domain.Link, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	link, ok := r.links[slug]
	r.mu.RUnlock()

	if !ok || !r.live(link) {
		return nil, ErrNotFound
	}
	return &link, nil
}

func (r *MemoryRepository) Put(ctx context.Context, link *domain.Link, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.store(link, ttl)
	return nil
}

func (r *MemoryRepository) PutIfAbsent(ctx context.Context, link *domain.Link, ttl time.Duration) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.links[link.Slug]; ok && r.live(existing) {
		return false, nil
	}
	r.store(link, ttl)
	return true, nil
}

func (r *MemoryRepository) PurgeExpired(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var purged int64
	for slug, link := range r.links {
		if !r.live(link) {
			delete(r.links, slug)
			purged++
		}
	}
	return purged, nil
}

func (r *MemoryRepository) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (r *MemoryRepository) Close() {}

// store must be called with mu held.
func (r *MemoryRepository) store(link *domain.Link, ttl time.Duration) {
	link.ExpiresAt = r.now().Add(ttl)
	r.links[link.Slug] = *link
}

func (r *MemoryRepository) live(link domain.Link) bool {
	return r.now().Before(link.ExpiresAt)
}
