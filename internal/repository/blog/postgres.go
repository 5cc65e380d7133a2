package blog

import (
	"context"

	"ethela-storefront/internal/domain"
	"ethela-storefront/internal/logging"
	"ethela-storefront/internal/repository/pgerr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const blogColumns = `id::text, title, content, author, cover_image_url, published, created_at`

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *zap.Logger) Repository {
	return &postgresRepo{pool: pool, logger: logging.OrNop(logger).Named("blog_repo")}
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.BlogPost, error) {
	return r.list(ctx, `SELECT `+blogColumns+` FROM blogs ORDER BY created_at DESC, id`)
}

func (r *postgresRepo) ListPublished(ctx context.Context) ([]domain.BlogPost, error) {
	return r.list(ctx, `SELECT `+blogColumns+` FROM blogs WHERE published = true ORDER BY created_at DESC, id`)
}

func (r *postgresRepo) list(ctx context.Context, q string) ([]domain.BlogPost, error) {
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Error("list", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	result := []domain.BlogPost{}
	for rows.Next() {
		b, err := scanBlog(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *b)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("list rows", zap.Error(err))
		return nil, err
	}
	r.logger.Debug("list", zap.Int("count", len(result)))
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.BlogPost, error) {
	return r.get(ctx, `SELECT `+blogColumns+` FROM blogs WHERE id = $1::text::uuid`, id)
}

func (r *postgresRepo) GetPublished(ctx context.Context, id string) (*domain.BlogPost, error) {
	return r.get(ctx, `SELECT `+blogColumns+` FROM blogs WHERE id = $1::text::uuid AND published = true`, id)
}

func (r *postgresRepo) get(ctx context.Context, q, id string) (*domain.BlogPost, error) {
	b, err := scanBlog(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		err = pgerr.Translate(err)
		if err != domain.ErrNotFound {
			r.logger.Error("get", zap.String("id", id), zap.Error(err))
		}
		return nil, err
	}
	return b, nil
}

func (r *postgresRepo) Create(ctx context.Context, b domain.BlogPost) (*domain.BlogPost, error) {
	const q = `
INSERT INTO blogs (title, content, author, cover_image_url, published)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + blogColumns
	created, err := scanBlog(r.pool.QueryRow(ctx, q, b.Title, b.Content, b.Author, b.CoverImageURL, b.Published))
	if err != nil {
		r.logger.Error("create", zap.String("title", b.Title), zap.Error(err))
		return nil, pgerr.Translate(err)
	}
	r.logger.Info("created", zap.String("id", created.ID), zap.Bool("published", created.Published))
	return created, nil
}

func (r *postgresRepo) Update(ctx context.Context, b domain.BlogPost) (*domain.BlogPost, error) {
	const q = `
UPDATE blogs
SET title = $2, content = $3, author = $4, cover_image_url = $5, published = $6
WHERE id = $1::text::uuid
RETURNING ` + blogColumns
	updated, err := scanBlog(r.pool.QueryRow(ctx, q, b.ID, b.Title, b.Content, b.Author, b.CoverImageURL, b.Published))
	if err != nil {
		err = pgerr.Translate(err)
		if err != domain.ErrNotFound {
			r.logger.Error("update", zap.String("id", b.ID), zap.Error(err))
		}
		return nil, err
	}
	r.logger.Info("updated", zap.String("id", updated.ID))
	return updated, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM blogs WHERE id = $1::text::uuid`, id)
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

func scanBlog(row pgx.Row) (*domain.BlogPost, error) {
	var b domain.BlogPost
	if err := row.Scan(&b.ID, &b.Title, &b.Content, &b.Author, &b.CoverImageURL, &b.Published, &b.CreatedAt); err != nil {
		return nil, err
	}
	return &b, nil
}
