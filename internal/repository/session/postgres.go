package session

import (
	"context"
	"time"

	"ethela-storefront/internal/domain"
	"ethela-storefront/internal/repository/pgerr"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Create(ctx context.Context, rec Record) error {
	const q = `
INSERT INTO sessions (id, user_id, expires_at)
VALUES ($1::text::uuid, $2::text::uuid, $3)
`
	if _, err := r.pool.Exec(ctx, q, rec.ID, rec.UserID, rec.ExpiresAt); err != nil {
		return pgerr.Translate(err)
	}
	return nil
}

func (r *postgresRepo) Get(ctx context.Context, id string) (*Record, error) {
	const q = `
SELECT id::text, user_id::text, expires_at, created_at
FROM sessions
WHERE id = $1::text::uuid
LIMIT 1
`
	var out Record
	if err := r.pool.QueryRow(ctx, q, id).Scan(&out.ID, &out.UserID, &out.ExpiresAt, &out.CreatedAt); err != nil {
		return nil, pgerr.Translate(err)
	}
	return &out, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM sessions WHERE id = $1::text::uuid`, id)
	if err != nil {
		return pgerr.Translate(err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM sessions WHERE expires_at <= $1`, now)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}
