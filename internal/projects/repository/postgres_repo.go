package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anirudhASAWA/Time-Motion-Study/internal/projects/domain"
)

// PostgresRepo is the relational variant of the store: one row per
// record, with the generated filename as primary key and the full
// record as jsonb.
type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

// EnsureSchema creates the projects table if it does not exist yet.
func (r *PostgresRepo) EnsureSchema(ctx context.Context) error {
	const q = `
create table if not exists projects (
    filename text primary key,
    data     jsonb not null,
    saved_at timestamptz not null
);
`
	if _, err := r.db.Exec(ctx, q); err != nil {
		return fmt.Errorf("ensure projects schema: %w", err)
	}
	return nil
}

func (r *PostgresRepo) Save(ctx context.Context, p *domain.Project) (string, error) {
	base := domain.SanitizeName(p.ProjectName)
	if base == "" {
		base = "project"
	}

	data, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("encode project: %w", err)
	}

	filename := base + "_" + p.SavedAt.Format(filenameStampLayout) + ".json"
	const q = `insert into projects (filename, data, saved_at) values ($1, $2, $3);`

	for i := 0; i < 2; i++ {
		_, err := r.db.Exec(ctx, q, filename, data, p.SavedAt)
		if err == nil {
			return filename, nil
		}

		// primary-key violation → same-second collision, retry with suffix
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			stem := strings.TrimSuffix(filename, ".json")
			filename = stem + "_" + uuid.NewString()[:8] + ".json"
			continue
		}
		return "", fmt.Errorf("insert project: %w", err)
	}

	return "", fmt.Errorf("failed to generate unique project filename")
}

func (r *PostgresRepo) List(ctx context.Context) ([]domain.Summary, error) {
	const q = `select filename, data from projects order by saved_at desc;`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Summary, 0, 16)
	for rows.Next() {
		var filename string
		var data []byte
		if err := rows.Scan(&filename, &data); err != nil {
			return nil, fmt.Errorf("scan project row: %w", err)
		}
		var p domain.Project
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("decode project %s: %w", filename, err)
		}
		out = append(out, p.Summarize(filename))
	}
	return out, rows.Err()
}

func (r *PostgresRepo) Get(ctx context.Context, filename string) (*domain.Project, error) {
	if !ValidFilename(filename) {
		return nil, domain.ErrProjectNotFound
	}

	const q = `select data from projects where filename = $1;`

	var data []byte
	if err := r.db.QueryRow(ctx, q, filename).Scan(&data); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("get project: %w", err)
	}

	var p domain.Project
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode project %s: %w", filename, err)
	}
	return &p, nil
}

func (r *PostgresRepo) Delete(ctx context.Context, filename string) error {
	if !ValidFilename(filename) {
		return domain.ErrProjectNotFound
	}

	const q = `delete from projects where filename = $1;`

	ct, err := r.db.Exec(ctx, q, filename)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}
