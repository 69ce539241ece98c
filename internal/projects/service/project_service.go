package service

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/anirudhASAWA/Time-Motion-Study/internal/projects/domain"
	"github.com/anirudhASAWA/Time-Motion-Study/internal/projects/repository"
)

// ProjectService handles business logic for project records: input
// validation, savedAt stamping, and listing-cache maintenance on top of
// whichever store backend is configured.
type ProjectService struct {
	store repository.Store
	cache *repository.SummaryCache // nil when Redis is not configured
}

func NewProjectService(store repository.Store, cache *repository.SummaryCache) *ProjectService {
	return &ProjectService{store: store, cache: cache}
}

// Save validates the record, stamps savedAt, and persists it. A
// client-supplied savedAt is always discarded.
func (s *ProjectService) Save(ctx context.Context, p *domain.Project) (string, error) {
	if strings.TrimSpace(p.ProjectName) == "" {
		return "", domain.ErrProjectNameRequired
	}

	p.SavedAt = time.Now().UTC()

	filename, err := s.store.Save(ctx, p)
	if err != nil {
		return "", err
	}

	s.invalidate(ctx)
	return filename, nil
}

func (s *ProjectService) List(ctx context.Context) ([]domain.Summary, error) {
	if s.cache != nil {
		if summaries, ok := s.cache.Get(ctx); ok {
			return summaries, nil
		}
	}

	summaries, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, summaries); err != nil {
			log.Printf("[warn] summary cache set failed: %v", err)
		}
	}
	return summaries, nil
}

func (s *ProjectService) Get(ctx context.Context, filename string) (*domain.Project, error) {
	return s.store.Get(ctx, filename)
}

func (s *ProjectService) Delete(ctx context.Context, filename string) error {
	if err := s.store.Delete(ctx, filename); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// RefreshSummaries re-lists the store and rewrites the cached listing.
// Used by the cron warmer; a no-op without a cache.
func (s *ProjectService) RefreshSummaries(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	summaries, err := s.store.List(ctx)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, summaries)
}

func (s *ProjectService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		log.Printf("[warn] summary cache invalidate failed: %v", err)
	}
}
