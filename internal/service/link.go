package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shorty/internal/domain"
	"shorty/internal/repository"
)

// DefaultLinkTTL is the retention window of every link.
const DefaultLinkTTL = 24 * time.Hour

var (
	ErrLinkNotFound = errors.New("link not found")
	ErrSlugTaken    = errors.New("slug already taken")
)

type LinkService struct {
	repo  Repository
	slugs SlugGenerator
	cache Cache
	ttl   time.Duration
}

// NewLinkService wires the allocator. cache may be nil; ttl <= 0 means
// DefaultLinkTTL.
func NewLinkService(repo Repository, slugs SlugGenerator, cache Cache, ttl time.Duration) *LinkService {
	if cache == nil {
		cache = nopCache{}
	}
	if ttl <= 0 {
		ttl = DefaultLinkTTL
	}
	return &LinkService{
		repo:  repo,
		slugs: slugs,
		cache: cache,
		ttl:   ttl,
	}
}

// Create stores a link and returns its slug and the short URL under origin.
//
// Caller-chosen slugs are claimed with a conditional write, so two concurrent
// requests for the same slug cannot both succeed. Generated slugs are written
// without an occupancy check: with 62^7 possible values a collision is
// improbable at the expected volume, but not impossible.
func (s *LinkService) Create(ctx context.Context, in domain.NewLink, origin string) (*domain.CreateLinkResponse, error) {
	link := &domain.Link{
		Slug:   in.Slug,
		URL:    in.URL,
		Status: in.Status,
	}

	if link.Slug == "" {
		slug, err := s.slugs.Generate()
		if err != nil {
			return nil, fmt.Errorf("failed to generate slug: %w", err)
		}
		link.Slug = slug

		if err := s.repo.Put(ctx, link, s.ttl); err != nil {
			return nil, fmt.Errorf("failed to store link: %w", err)
		}
	} else {
		created, err := s.repo.PutIfAbsent(ctx, link, s.ttl)
		if err != nil {
			return nil, fmt.Errorf("failed to store link: %w", err)
		}
		if !created {
			return nil, ErrSlugTaken
		}
	}

	s.cache.Set(link)

	return &domain.CreateLinkResponse{
		Slug:      link.Slug,
		Shortened: origin + "/" + link.Slug,
	}, nil
}

func (s *LinkService) Resolve(ctx context.Context, slug string) (*domain.Link, error) {
	if link, ok := s.cache.Get(slug); ok {
		return link, nil
	}

	link, err := s.repo.Get(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, fmt.Errorf("failed to get link: %w", err)
	}

	s.cache.Set(link)
	return link, nil
}

type nopCache struct{}

func (nopCache) Get(string) (*domain.Link, bool) { return nil, false }
func (nopCache) Set(*domain.Link)                {}
