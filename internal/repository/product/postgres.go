package product

import (
	"context"

	"ethela-storefront/internal/domain"
	"ethela-storefront/internal/logging"
	"ethela-storefront/internal/repository/pgerr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const productColumns = `id::text, name, description, price::float8, image_url, blockchain_url, featured, created_at`

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *zap.Logger) Repository {
	return &postgresRepo{pool: pool, logger: logging.OrNop(logger).Named("product_repo")}
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Product, error) {
	const q = `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC, id`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Error("list", zap.Error(err))
		return nil, err
	}
	result, err := scanProducts(rows)
	if err != nil {
		r.logger.Error("list rows", zap.Error(err))
		return nil, err
	}
	r.logger.Debug("list", zap.Int("count", len(result)))
	return result, nil
}

func (r *postgresRepo) ListFeatured(ctx context.Context, limit int) ([]domain.Product, error) {
	const q = `SELECT ` + productColumns + ` FROM products WHERE featured = true ORDER BY created_at DESC, id LIMIT $1`
	rows, err := r.pool.Query(ctx, q, limit)
	if err != nil {
		r.logger.Error("list featured", zap.Int("limit", limit), zap.Error(err))
		return nil, err
	}
	result, err := scanProducts(rows)
	if err != nil {
		r.logger.Error("list featured rows", zap.Error(err))
		return nil, err
	}
	r.logger.Debug("list featured", zap.Int("limit", limit), zap.Int("count", len(result)))
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	const q = `SELECT ` + productColumns + ` FROM products WHERE id = $1::text::uuid`
	p, err := scanProduct(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		err = pgerr.Translate(err)
		if err != domain.ErrNotFound {
			r.logger.Error("get", zap.String("id", id), zap.Error(err))
		}
		return nil, err
	}
	return p, nil
}

func (r *postgresRepo) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (name, description, price, image_url, blockchain_url, featured)
VALUES ($1, $2, $3::float8, $4, $5, $6)
RETURNING ` + productColumns
	created, err := scanProduct(r.pool.QueryRow(ctx, q,
		p.Name, p.Description, p.Price, p.ImageURL, p.BlockchainURL, p.Featured,
	))
	if err != nil {
		r.logger.Error("create", zap.String("name", p.Name), zap.Error(err))
		return nil, pgerr.Translate(err)
	}
	r.logger.Info("created", zap.String("id", created.ID), zap.String("name", created.Name))
	return created, nil
}

func (r *postgresRepo) Update(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
UPDATE products
SET name = $2, description = $3, price = $4::float8, image_url = $5, blockchain_url = $6, featured = $7
WHERE id = $1::text::uuid
RETURNING ` + productColumns
	updated, err := scanProduct(r.pool.QueryRow(ctx, q,
		p.ID, p.Name, p.Description, p.Price, p.ImageURL, p.BlockchainURL, p.Featured,
	))
	if err != nil {
		err = pgerr.Translate(err)
		if err != domain.ErrNotFound {
			r.logger.Error("update", zap.String("id", p.ID), zap.Error(err))
		}
		return nil, err
	}
	r.logger.Info("updated", zap.String("id", updated.ID))
	return updated, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1::text::uuid`, id)
	if err != nil {
		err = pgerr.Translate(err)
		if err != domain.ErrNotFound {
			r.logger.Error("delete", zap.String("id", id), zap.Error(err))
		}
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	r.logger.Info("deleted", zap.String("id", id))
	return nil
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.ImageURL, &p.BlockchainURL, &p.Featured, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func scanProducts(rows pgx.Rows) ([]domain.Product, error) {
	defer rows.Close()
	result := []domain.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	return result, rows.Err()
}
