package service

//go:generate go tool mockery

import (
	"context"
	"time"

	"shorty/internal/domain"
)

type Repository interface {
	Get(ctx context.Context, slug string) (*domain.Link, error)
	Put(ctx context.Context, link *domain.Link, ttl time.Duration) error
	PutIfAbsent(ctx context.Context, link *domain.Link, ttl time.Duration) (bool, error)
}

type Cache interface {
	Get(slug string) (*domain.Link, bool)
	Set(link *domain.Link)
}

type SlugGenerator interface {
	Generate() (string, error)
}
