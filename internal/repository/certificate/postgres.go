package certificate

import (
	"context"

	"ethela-storefront/internal/domain"
	"ethela-storefront/internal/repository/pgerr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const certificateColumns = `code, product_name, blockchain_hash, manufacturer, certificate_url, carat, color, clarity, cut, origin, issued_at`

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) GetByCode(ctx context.Context, code string) (*domain.Certificate, error) {
	const q = `SELECT ` + certificateColumns + ` FROM certificates WHERE code = $1`
	c, err := scanCertificate(r.pool.QueryRow(ctx, q, code))
	if err != nil {
		return nil, pgerr.Translate(err)
	}
	return c, nil
}

func (r *postgresRepo) Upsert(ctx context.Context, c domain.Certificate) (*domain.Certificate, error) {
	const q = `
INSERT INTO certificates (code, product_name, blockchain_hash, manufacturer, certificate_url, carat, color, clarity, cut, origin)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (code) DO UPDATE SET
    product_name = EXCLUDED.product_name,
    blockchain_hash = EXCLUDED.blockchain_hash,
    manufacturer = EXCLUDED.manufacturer,
    certificate_url = EXCLUDED.certificate_url,
    carat = EXCLUDED.carat,
    color = EXCLUDED.color,
    clarity = EXCLUDED.clarity,
    cut = EXCLUDED.cut,
    origin = EXCLUDED.origin
RETURNING ` + certificateColumns
	out, err := scanCertificate(r.pool.QueryRow(ctx, q,
		c.Code, c.ProductName, c.BlockchainHash, c.Manufacturer, c.CertificateURL,
		c.Carat, c.Color, c.Clarity, c.Cut, c.Origin,
	))
	if err != nil {
		return nil, pgerr.Translate(err)
	}
	return out, nil
}

func scanCertificate(row pgx.Row) (*domain.Certificate, error) {
	var c domain.Certificate
	err := row.Scan(&c.Code, &c.ProductName, &c.BlockchainHash, &c.Manufacturer, &c.CertificateURL,
		&c.Carat, &c.Color, &c.Clarity, &c.Cut, &c.Origin, &c.IssuedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
