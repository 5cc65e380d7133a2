package seed

import (
	"context"
	"os"
	"testing"

	"ethela-storefront/internal/migrate"
	productrepo "ethela-storefront/internal/repository/product"
	userrepo "ethela-storefront/internal/repository/user"
	"github.com/jackc/pgx/v5/pgxpool"
)

func TestApply_Idempotent(t *testing.T) {
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	defer pool.Close()
	if err := migrate.Apply(ctx, pool, nil); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	if _, err := pool.Exec(ctx, `TRUNCATE products, blogs, sessions, users, certificates, contact_messages RESTART IDENTITY CASCADE`); err != nil {
		t.Fatalf("truncate tables: %v", err)
	}

	opts := Options{AdminEmail: "admin@ethela.in", AdminPassword: "admin-secret"}
	for i := 0; i < 2; i++ {
		if err := Apply(ctx, pool, opts, nil); err != nil {
			t.Fatalf("apply #%d: %v", i+1, err)
		}
	}

	repo := productrepo.NewPostgres(pool, nil)
	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != len(products) {
		t.Fatalf("expected %d products, got %d", len(products), len(all))
	}
	featured, err := repo.ListFeatured(ctx, 4)
	if err != nil {
		t.Fatalf("list featured: %v", err)
	}
	if len(featured) != 2 || featured[0].Name != "Aurora Solitaire Ring" {
		t.Fatalf("unexpected featured %+v", featured)
	}

	admin, err := userrepo.NewPostgres(pool, nil).GetByEmail(ctx, "admin@ethela.in")
	if err != nil {
		t.Fatalf("get admin: %v", err)
	}
	if admin.Role != "admin" {
		t.Fatalf("expected admin role, got %q", admin.Role)
	}
}
