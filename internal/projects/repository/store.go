package repository

import (
	"context"

	"github.com/anirudhASAWA/Time-Motion-Study/internal/projects/domain"
)

// Store persists project records keyed by their generated filename. The
// file backend is the default; the postgres backend is the earlier
// relational variant. Both treat records as immutable between Save and
// Delete: a save always produces a new record, never an update in place.
type Store interface {
	Save(ctx context.Context, p *domain.Project) (filename string, err error)
	List(ctx context.Context) ([]domain.Summary, error)
	Get(ctx context.Context, filename string) (*domain.Project, error)
	Delete(ctx context.Context, filename string) error
}
