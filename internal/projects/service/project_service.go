package service

import (
	"context"

	"github.com/aipage-top/aipage-backend/internal/preview"
	"github.com/aipage-top/aipage-backend/internal/projects/domain"
	"github.com/aipage-top/aipage-backend/internal/projects/repository"
)

// ProjectService handles project-related business logic on top of the store
// gateway, including share-preview assembly and preview cache maintenance.
type ProjectService struct {
	repo  *repository.Repo
	cache *preview.Cache
}

// NewProjectService creates a new project service. cache may be nil, in which
// case previews always read through to the store.
func NewProjectService(repo *repository.Repo, cache *preview.Cache) *ProjectService {
	return &ProjectService{repo: repo, cache: cache}
}

// UsingFallback reports whether project data lives in the in-memory mock
// store and will not survive a restart.
func (s *ProjectService) UsingFallback() bool {
	return s.repo.UsingFallback()
}

// Create persists a new project, sanitizing its HTML on the way in.
func (s *ProjectService) Create(ctx context.Context, in repository.CreateInput) (*domain.Project, error) {
	return s.repo.Create(ctx, in)
}

// Get returns a single project by id.
func (s *ProjectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	return s.repo.Get(ctx, id)
}

// Update applies a partial field replacement and invalidates any cached
// preview.
func (s *ProjectService) Update(ctx context.Context, id string, in repository.UpdateInput) (*domain.Project, error) {
	p, err := s.repo.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, id)
	}
	return p, nil
}

// Delete removes a project permanently and invalidates any cached preview.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, id)
	}
	return nil
}

// List returns projects ordered by updated_at descending, optionally
// filtered to public ones server-side.
func (s *ProjectService) List(ctx context.Context, publicOnly bool) ([]domain.Project, error) {
	return s.repo.List(ctx, publicOnly)
}

// Preview returns the stored (already sanitized) HTML for a project,
// serving public projects from the cache when possible.
func (s *ProjectService) Preview(ctx context.Context, id string) (string, error) {
	if s.cache != nil {
		if html, ok := s.cache.Get(ctx, id); ok {
			return html, nil
		}
	}

	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if s.cache != nil && p.IsPublic {
		s.cache.Set(ctx, id, p.HTMLContent)
	}
	return p.HTMLContent, nil
}
