package user

import (
	"context"
	"strings"

	"ethela-storefront/internal/domain"
	"ethela-storefront/internal/logging"
	"ethela-storefront/internal/repository/pgerr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const userColumns = `id::text, email, password_hash, display_name, role, created_at`

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// NewPostgres returns a Repository backed by Postgres.
func NewPostgres(pool *pgxpool.Pool, logger *zap.Logger) Repository {
	return &postgresRepo{pool: pool, logger: logging.OrNop(logger).Named("user_repo")}
}

func (r *postgresRepo) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	const q = `
INSERT INTO users (email, password_hash, display_name, role)
VALUES ($1, $2, $3, $4)
RETURNING ` + userColumns
	role := u.Role
	if role == "" {
		role = domain.RoleCustomer
	}
	created, err := r.scanUser(r.pool.QueryRow(ctx, q, strings.ToLower(u.Email), u.PasswordHash, u.DisplayName, role))
	if err != nil {
		return nil, err
	}
	r.logger.Info("created", zap.String("id", created.ID), zap.String("role", created.Role))
	return created, nil
}

func (r *postgresRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE lower(email) = lower($1) LIMIT 1`
	return r.scanUser(r.pool.QueryRow(ctx, q, email))
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE id = $1::text::uuid LIMIT 1`
	return r.scanUser(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) SetRole(ctx context.Context, id, role string) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE users SET role = $2 WHERE id = $1::text::uuid`, id, role)
	if err != nil {
		return pgerr.Translate(err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	r.logger.Info("role changed", zap.String("id", id), zap.String("role", role))
	return nil
}

func (r *postgresRepo) scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.DisplayName, &u.Role, &u.CreatedAt)
	if err != nil {
		err = pgerr.Translate(err)
		if err != domain.ErrNotFound && err != domain.ErrAlreadyExists {
			r.logger.Error("scan", zap.Error(err))
		}
		return nil, err
	}
	return &u, nil
}
