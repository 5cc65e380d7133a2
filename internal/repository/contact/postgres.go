package contact

import (
	"context"

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

func (r *postgresRepo) Create(ctx context.Context, m domain.ContactMessage) (*domain.ContactMessage, error) {
	const q = `
INSERT INTO contact_messages (name, email, phone, subject, message)
VALUES ($1, $2, $3, $4, $5)
RETURNING id::text, created_at
`
	out := m
	if err := r.pool.QueryRow(ctx, q, m.Name, m.Email, m.Phone, m.Subject, m.Message).Scan(&out.ID, &out.CreatedAt); err != nil {
		return nil, pgerr.Translate(err)
	}
	return &out, nil
}
