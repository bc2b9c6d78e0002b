package repository

import (
	"context"

	"cv-generator/internal/domain"

	"github.com/jackc/pgx/v4/pgxpool"
)

// ExportsRepo records export history. Persistence is best-effort: a nil pool
// turns every call into a no-op so the service runs fine without a database.
type ExportsRepo struct {
	pool *pgxpool.Pool
}

func NewExportsRepo(pool *pgxpool.Pool) *ExportsRepo {
	return &ExportsRepo{pool: pool}
}

// Init creates the exports table if missing.
func (r *ExportsRepo) Init(ctx context.Context) error {
	if r.pool == nil {
		return nil
	}
	_, err := r.pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS cv_exports (
		id UUID PRIMARY KEY,
		session_id UUID NOT NULL,
		title TEXT NOT NULL,
		kind TEXT NOT NULL,
		status TEXT NOT NULL,
		detail TEXT,
		created_at TIMESTAMPTZ NOT NULL
	)`)
	return err
}

func (r *ExportsRepo) Save(ctx context.Context, e *domain.ExportRecord) error {
	if r.pool == nil {
		return nil
	}
	_, err := r.pool.Exec(ctx, `INSERT INTO cv_exports (id, session_id, title, kind, status, detail, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		ON CONFLICT (id) DO UPDATE SET status = EXCLUDED.status, detail = EXCLUDED.detail`,
		e.ID, e.SessionID, e.Title, e.Kind, e.Status, e.Detail, e.CreatedAt)
	return err
}

// ListBySession returns export history for one session, newest first.
func (r *ExportsRepo) ListBySession(ctx context.Context, sessionID string) ([]domain.ExportRecord, error) {
	if r.pool == nil {
		return []domain.ExportRecord{}, nil
	}
	rows, err := r.pool.Query(ctx, `SELECT id, session_id, title, kind, status, coalesce(detail, ''), created_at
		FROM cv_exports WHERE session_id::text = $1 ORDER BY created_at DESC`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.ExportRecord{}
	for rows.Next() {
		var e domain.ExportRecord
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Title, &e.Kind, &e.Status, &e.Detail, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
