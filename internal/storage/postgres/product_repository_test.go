package postgres_test

import (
	"context"
	"testing"

	"github.com/SinhaGautam/nothing-server-app/internal/domain"
	"github.com/SinhaGautam/nothing-server-app/internal/storage/postgres"
	"github.com/SinhaGautam/nothing-server-app/internal/testutil"
)

func TestProductRepository(t *testing.T) {
	pool := testutil.NewTestPool(t)
	ctx := context.Background()
	testutil.ApplyMigrations(t, ctx, pool)
	testutil.TruncateAll(t, ctx, pool)

	testutil.InsertProduct(t, ctx, pool, domain.Product{
		ID: "P1", Name: "Absolutely Nothing", Description: "A void", Price: 500,
		Category: "voids", Active: true, Inventory: 1000,
	})
	testutil.InsertProduct(t, ctx, pool, domain.Product{
		ID: "P2", Name: "Premium Nothing", Price: 1500, Category: "voids",
		Active: true, Featured: true,
	})
	testutil.InsertProduct(t, ctx, pool, domain.Product{
		ID: "P3", Name: "Retired Nothing", Price: 100, Active: false,
	})

	repo := postgres.NewProductRepository(pool)

	t.Run("get by id", func(t *testing.T) {
		got, err := repo.GetByID(ctx, "P1")
		if err != nil {
			t.Fatalf("get product: %v", err)
		}
		if got.Name != "Absolutely Nothing" || got.Price != 500 || got.Inventory != 1000 {
			t.Fatalf("unexpected product: %+v", got)
		}
	})

	t.Run("missing product", func(t *testing.T) {
		if _, err := repo.GetByID(ctx, "P404"); err != domain.ErrProductNotFound {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("list active excludes inactive", func(t *testing.T) {
		got, err := repo.ListActive(ctx)
		if err != nil {
			t.Fatalf("list active: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 active products, got %d", len(got))
		}
		for _, p := range got {
			if p.ID == "P3" {
				t.Fatalf("inactive product listed")
			}
		}
	})

	t.Run("list featured", func(t *testing.T) {
		got, err := repo.ListFeatured(ctx)
		if err != nil {
			t.Fatalf("list featured: %v", err)
		}
		if len(got) != 1 || got[0].ID != "P2" {
			t.Fatalf("expected only P2 featured, got %+v", got)
		}
	})
}
