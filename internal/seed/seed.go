package seed

import (
	"context"
	"fmt"
	"time"

	"ethela-storefront/internal/domain"
	"ethela-storefront/internal/logging"
	certrepo "ethela-storefront/internal/repository/certificate"
	sessionrepo "ethela-storefront/internal/repository/session"
	userrepo "ethela-storefront/internal/repository/user"
	identitysvc "ethela-storefront/internal/service/identity"
	verificationsvc "ethela-storefront/internal/service/verification"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Options select the optional admin account.
type Options struct {
	AdminEmail    string
	AdminPassword string
}

type productSeed struct {
	Name          string
	Description   string
	Price         float64
	ImageURL      string
	BlockchainURL string
	Featured      bool
	Age           time.Duration
}

type blogSeed struct {
	Title     string
	Content   string
	Published bool
	Age       time.Duration
}

var products = []productSeed{
	{
		Name:          "Aurora Solitaire Ring",
		Description:   "1 ct lab-grown round brilliant in 18k white gold.",
		Price:         125000,
		ImageURL:      "https://images.ethela.in/aurora-ring.jpg",
		BlockchainURL: "https://polygonscan.com/tx/0x7a1c9e0f4b2d",
		Featured:      true,
		Age:           time.Hour,
	},
	{
		Name:        "Lumen Stud Earrings",
		Description: "Pair of 0.5 ct studs with a four-prong setting.",
		Price:       48500,
		ImageURL:    "https://images.ethela.in/lumen-studs.jpg",
		Age:         2 * time.Hour,
	},
	{
		Name:          "Halo Pear Pendant",
		Description:   "Pear-cut centre stone framed by a micro-pavé halo.",
		Price:         72000,
		ImageURL:      "https://images.ethela.in/halo-pendant.jpg",
		BlockchainURL: "https://polygonscan.com/tx/0x3f88b21ac90e",
		Featured:      true,
		Age:           3 * time.Hour,
	},
	{
		Name:        "Nova Eternity Band",
		Description: "Full eternity band of 21 matched stones.",
		Price:       96000,
		ImageURL:    "https://images.ethela.in/nova-band.jpg",
		Age:         4 * time.Hour,
	},
}

var blogs = []blogSeed{
	{
		Title:     "How lab-grown diamonds are made",
		Content:   "Lab-grown diamonds share the chemistry and optics of mined stones. They are grown by CVD or HPHT in weeks rather than millennia.",
		Published: true,
		Age:       time.Hour,
	},
	{
		Title:     "Caring for your everyday sparkle",
		Content:   "Soak in warm water with a drop of mild soap, brush gently and pat dry with a lint-free cloth.",
		Published: true,
		Age:       24 * time.Hour,
	},
	{
		Title:     "Bridal collection preview",
		Content:   "A first look at next season's bridal pieces.",
		Published: false,
		Age:       30 * time.Minute,
	},
}

var certificates = []domain.Certificate{
	{
		Code:           "ETH-2024-001234567",
		ProductName:    "Aurora Solitaire Ring",
		BlockchainHash: "0x7a1c9e0f4b2d8e6a5c3b1f0e9d8c7b6a5f4e3d2c",
		Manufacturer:   "Ethéla Labs, Surat",
		CertificateURL: "https://certs.ethela.in/ETH-2024-001234567.pdf",
		Carat:          "1.00",
		Color:          "E",
		Clarity:        "VVS1",
		Cut:            "Excellent",
		Origin:         "Lab-grown (CVD)",
	},
}

// Apply inserts demo catalog, journal and certificate data plus the admin
// account when a password is configured. Re-running it does not duplicate rows.
func Apply(ctx context.Context, pool *pgxpool.Pool, opts Options, logger *zap.Logger) error {
	logger = logging.OrNop(logger).Named("seed")

	for _, p := range products {
		if err := insertProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("insert product %q: %w", p.Name, err)
		}
	}
	for _, b := range blogs {
		if err := insertBlog(ctx, pool, b); err != nil {
			return fmt.Errorf("insert blog %q: %w", b.Title, err)
		}
	}

	verifier := verificationsvc.New(certrepo.NewPostgres(pool), logger)
	for _, c := range certificates {
		if _, err := verifier.Register(ctx, c); err != nil {
			return fmt.Errorf("register certificate %s: %w", c.Code, err)
		}
	}

	if opts.AdminPassword == "" {
		logger.Warn("ADMIN_PASSWORD not set, skipping admin account")
		return nil
	}
	identity := identitysvc.New(userrepo.NewPostgres(pool, logger), sessionrepo.NewPostgres(pool), identitysvc.Options{}, logger)
	admin, err := identity.EnsureAdmin(ctx, opts.AdminEmail, opts.AdminPassword, "Ethéla Admin")
	if err != nil {
		return fmt.Errorf("ensure admin %s: %w", opts.AdminEmail, err)
	}
	logger.Info("admin ready", zap.String("email", admin.Email))
	return nil
}

func insertProduct(ctx context.Context, pool *pgxpool.Pool, p productSeed) error {
	const q = `
INSERT INTO products (name, description, price, image_url, blockchain_url, featured, created_at)
SELECT $1, $2, $3::float8, $4, $5, $6, now() - $7::bigint * interval '1 second'
WHERE NOT EXISTS (SELECT 1 FROM products WHERE name = $1)
`
	_, err := pool.Exec(ctx, q, p.Name, p.Description, p.Price, p.ImageURL, p.BlockchainURL, p.Featured, int64(p.Age.Seconds()))
	return err
}

func insertBlog(ctx context.Context, pool *pgxpool.Pool, b blogSeed) error {
	const q = `
INSERT INTO blogs (title, content, author, published, created_at)
SELECT $1, $2, $3, $4, now() - $5::bigint * interval '1 second'
WHERE NOT EXISTS (SELECT 1 FROM blogs WHERE title = $1)
`
	_, err := pool.Exec(ctx, q, b.Title, b.Content, "Ethéla Team", b.Published, int64(b.Age.Seconds()))
	return err
}
