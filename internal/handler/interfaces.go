package handler

//go:generate go tool mockery

import (
	"context"

	"shorty/internal/domain"
)

type LinkService interface {
	Create(ctx context.Context, in domain.NewLink, origin string) (*domain.CreateLinkResponse, error)
	Resolve(ctx context.Context, slug string) (*domain.Link, error)
}

type LinkValidator interface {
	Validate(req domain.CreateLinkRequest) (domain.NewLink, error)
}

type HealthChecker interface {
	Ping(ctx context.Context) error
}
