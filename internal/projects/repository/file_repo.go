package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/anirudhASAWA/Time-Motion-Study/internal/projects/domain"
)

const filenameStampLayout = "20060102_150405"

// FileRepo stores one indented-JSON document per project record inside
// a single directory. There is no locking: concurrent saves are safe
// because each save derives a distinct filename, but a delete racing a
// read can surface ErrProjectNotFound to the reader.
type FileRepo struct {
	dir string
}

func NewFileRepo(dir string) (*FileRepo, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileRepo{dir: dir}, nil
}

func (r *FileRepo) Save(ctx context.Context, p *domain.Project) (string, error) {
	base := domain.SanitizeName(p.ProjectName)
	if base == "" {
		base = "project"
	}

	filename := base + "_" + p.SavedAt.Format(filenameStampLayout) + ".json"
	path := filepath.Join(r.dir, filename)

	// Two saves of the same name within the same second would collide;
	// disambiguate with a short suffix rather than overwrite.
	if _, err := os.Stat(path); err == nil {
		stem := strings.TrimSuffix(filename, ".json")
		filename = stem + "_" + uuid.NewString()[:8] + ".json"
		path = filepath.Join(r.dir, filename)
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode project: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write project file: %w", err)
	}
	return filename, nil
}

func (r *FileRepo) List(ctx context.Context) ([]domain.Summary, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("read data dir: %w", err)
	}

	out := make([]domain.Summary, 0, len(entries))
	for _, e := range entries {
		// only list what Get would serve: files this store could have
		// generated, not whatever else landed in the directory
		if e.IsDir() || !ValidFilename(e.Name()) {
			continue
		}
		p, err := r.readFile(e.Name())
		if err != nil {
			return nil, err
		}
		out = append(out, p.Summarize(e.Name()))
	}
	return out, nil
}

func (r *FileRepo) Get(ctx context.Context, filename string) (*domain.Project, error) {
	if !ValidFilename(filename) {
		return nil, domain.ErrProjectNotFound
	}
	return r.readFile(filename)
}

func (r *FileRepo) Delete(ctx context.Context, filename string) error {
	if !ValidFilename(filename) {
		return domain.ErrProjectNotFound
	}
	if err := os.Remove(filepath.Join(r.dir, filename)); err != nil {
		if os.IsNotExist(err) {
			return domain.ErrProjectNotFound
		}
		return fmt.Errorf("delete project file: %w", err)
	}
	return nil
}

func (r *FileRepo) readFile(filename string) (*domain.Project, error) {
	data, err := os.ReadFile(filepath.Join(r.dir, filename))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("read project file: %w", err)
	}

	var p domain.Project
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode project file %s: %w", filename, err)
	}
	return &p, nil
}
