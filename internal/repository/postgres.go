package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"shorty/internal/config"
	"shorty/internal/domain"
)

const (
	getLinkSQL = `
SELECT slug, url, status, expires_at
FROM links
WHERE slug = $1 AND expires_at > now()`

	putLinkSQL = `
INSERT INTO links (slug, url, status, created_at, expires_at)
VALUES ($1, $2, $3, now(), now() + make_interval(secs => $4))
ON CONFLICT (slug) DO UPDATE
SET url = EXCLUDED.url, status = EXCLUDED.status,
    created_at = EXCLUDED.created_at, expires_at = EXCLUDED.expires_at
RETURNING expires_at`

	// The conflict branch only fires for an expired row, so a live slug is
	// never replaced and no row comes back.
	putLinkIfAbsentSQL = `
INSERT INTO links (slug, url, status, created_at, expires_at)
VALUES ($1, $2, $3, now(), now() + make_interval(secs => $4))
ON CONFLICT (slug) DO UPDATE
SET url = EXCLUDED.url, status = EXCLUDED.status,
    created_at = EXCLUDED.created_at, expires_at = EXCLUDED.expires_at
WHERE links.expires_at <= now()
RETURNING expires_at`

	purgeExpiredSQL = `DELETE FROM links WHERE expires_at <= now()`
)

type LinkRepository struct {
	pool *pgxpool.Pool
}

func NewLinkRepository(ctx context.Context, cfg *config.DatabaseConfig) (*LinkRepository, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &LinkRepository{pool: pool}, nil
}

// NewLinkRepositoryFromPool wraps an existing pool. Close closes the pool.
func NewLinkRepositoryFromPool(pool *pgxpool.Pool) *LinkRepository {
	return &LinkRepository{pool: pool}
}

func (r *LinkRepository) Migrate(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func (r *LinkRepository) Get(ctx context.Context, slug string) (*domain.Link, error) {
	var link domain.Link
	err := r.pool.QueryRow(ctx, getLinkSQL, slug).
		Scan(&link.Slug, &link.URL, &link.Status, &link.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get link: %w", err)
	}
	return &link, nil
}

// Put stores link unconditionally and sets link.ExpiresAt.
func (r *LinkRepository) Put(ctx context.Context, link *domain.Link, ttl time.Duration) error {
	err := r.pool.QueryRow(ctx, putLinkSQL, link.Slug, link.URL, link.Status, ttl.Seconds()).
		Scan(&link.ExpiresAt)
	if err != nil {
		return fmt.Errorf("failed to put link: %w", err)
	}
	return nil
}

// PutIfAbsent stores link unless a live record already holds the slug. It
// reports whether the write happened and sets link.ExpiresAt when it did.
func (r *LinkRepository) PutIfAbsent(ctx context.Context, link *domain.Link, ttl time.Duration) (bool, error) {
	err := r.pool.QueryRow(ctx, putLinkIfAbsentSQL, link.Slug, link.URL, link.Status, ttl.Seconds()).
		Scan(&link.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to put link: %w", err)
	}
	return true, nil
}

func (r *LinkRepository) PurgeExpired(ctx context.Context) (int64, error) {
	tag, err := r.pool.Exec(ctx, purgeExpiredSQL)
	if err != nil {
		return 0, fmt.Errorf("failed to purge expired links: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *LinkRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func (r *LinkRepository) Pool() *pgxpool.Pool {
	return r.pool
}

func (r *LinkRepository) Close() {
	r.pool.Close()
}
