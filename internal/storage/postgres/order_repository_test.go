package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SinhaGautam/nothing-server-app/internal/domain"
	"github.com/SinhaGautam/nothing-server-app/internal/storage/postgres"
	"github.com/SinhaGautam/nothing-server-app/internal/testutil"
)

func TestOrderRepository_CreateAndGet(t *testing.T) {
	pool := testutil.NewTestPool(t)
	ctx := context.Background()
	testutil.ApplyMigrations(t, ctx, pool)
	testutil.TruncateAll(t, ctx, pool)

	testutil.InsertProduct(t, ctx, pool, domain.Product{
		ID: "P1", Name: "Absolutely Nothing", Price: 500, Category: "voids", Active: true,
	})

	repo := postgres.NewOrderRepository(pool)
	now := time.Now().UTC().Truncate(time.Microsecond)

	order := domain.Order{
		ID:              "order_Abc123",
		ProductID:       "P1",
		ProductName:     "Absolutely Nothing",
		ProductCategory: "voids",
		CustomerEmail:   "a@b.com",
		CustomerName:    "A",
		Amount:          500,
		Status:          domain.OrderStatusConfirmed,
		PaymentStatus:   domain.PaymentStatusPending,
		CreatedAt:       now,
	}

	if err := repo.CreateOrder(ctx, order); err != nil {
		t.Fatalf("create order: %v", err)
	}

	got, err := repo.GetByID(ctx, "order_Abc123")
	if err != nil {
		t.Fatalf("get order: %v", err)
	}
	if got.ProductName != "Absolutely Nothing" || got.Amount != 500 {
		t.Fatalf("unexpected order: %+v", got)
	}
	if got.Status != domain.OrderStatusConfirmed || got.PaymentStatus != domain.PaymentStatusPending {
		t.Fatalf("unexpected statuses: %+v", got)
	}
	if len(got.ShareEvents) != 0 {
		t.Fatalf("expected no share events, got %d", len(got.ShareEvents))
	}
}

func TestOrderRepository_GetMissing(t *testing.T) {
	pool := testutil.NewTestPool(t)
	ctx := context.Background()
	testutil.ApplyMigrations(t, ctx, pool)
	testutil.TruncateAll(t, ctx, pool)

	repo := postgres.NewOrderRepository(pool)

	if _, err := repo.GetByID(ctx, "order_Gone"); err != domain.ErrOrderNotFound {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestOrderRepository_WithTxRollsBack(t *testing.T) {
	pool := testutil.NewTestPool(t)
	ctx := context.Background()
	testutil.ApplyMigrations(t, ctx, pool)
	testutil.TruncateAll(t, ctx, pool)

	testutil.InsertProduct(t, ctx, pool, domain.Product{
		ID: "P1", Name: "Absolutely Nothing", Price: 500, Active: true,
	})

	repo := postgres.NewOrderRepository(pool)
	boom := errors.New("gateway exploded")

	err := repo.WithTx(ctx, func(txCtx context.Context) error {
		if err := repo.CreateOrder(txCtx, domain.Order{
			ID:            "order_Doomed",
			ProductID:     "P1",
			ProductName:   "Absolutely Nothing",
			CustomerEmail: "a@b.com",
			CustomerName:  "A",
			Amount:        500,
			Status:        domain.OrderStatusConfirmed,
			PaymentStatus: domain.PaymentStatusPending,
			CreatedAt:     time.Now().UTC(),
		}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected injected error, got %v", err)
	}

	if _, err := repo.GetByID(ctx, "order_Doomed"); err != domain.ErrOrderNotFound {
		t.Fatalf("expected rollback to remove order, got %v", err)
	}
}

func TestOrderRepository_PaymentStatusAndShares(t *testing.T) {
	pool := testutil.NewTestPool(t)
	ctx := context.Background()
	testutil.ApplyMigrations(t, ctx, pool)
	testutil.TruncateAll(t, ctx, pool)

	testutil.InsertProduct(t, ctx, pool, domain.Product{
		ID: "P1", Name: "Absolutely Nothing", Price: 500, Active: true,
	})
	now := time.Now().UTC().Truncate(time.Microsecond)
	testutil.InsertOrder(t, ctx, pool, domain.Order{
		ID: "order_Abc123", ProductID: "P1", ProductName: "Absolutely Nothing",
		CustomerEmail: "a@b.com", CustomerName: "A", Amount: 500,
		Status: domain.OrderStatusConfirmed, PaymentStatus: domain.PaymentStatusPending,
		CreatedAt: now,
	})

	repo := postgres.NewOrderRepository(pool)

	if err := repo.UpdatePaymentStatus(ctx, "order_Abc123", domain.PaymentStatusPaid); err != nil {
		t.Fatalf("update payment status: %v", err)
	}
	if err := repo.UpdatePaymentStatus(ctx, "order_Gone", domain.PaymentStatusPaid); err != domain.ErrOrderNotFound {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}

	if err := repo.AddShareEvent(ctx, "order_Abc123", domain.PlatformTwitter, now); err != nil {
		t.Fatalf("add share event: %v", err)
	}
	if err := repo.AddShareEvent(ctx, "order_Abc123", domain.PlatformWhatsApp, now.Add(time.Second)); err != nil {
		t.Fatalf("add share event: %v", err)
	}
	if err := repo.MarkShared(ctx, "order_Abc123"); err != nil {
		t.Fatalf("mark shared: %v", err)
	}
	if err := repo.AddShareEvent(ctx, "order_Gone", domain.PlatformTwitter, now); err != domain.ErrOrderNotFound {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}

	got, err := repo.GetByID(ctx, "order_Abc123")
	if err != nil {
		t.Fatalf("get order: %v", err)
	}
	if got.PaymentStatus != domain.PaymentStatusPaid {
		t.Fatalf("expected payment status paid, got %s", got.PaymentStatus)
	}
	if !got.Shared {
		t.Fatalf("expected order marked shared")
	}
	if len(got.ShareEvents) != 2 {
		t.Fatalf("expected 2 share events, got %d", len(got.ShareEvents))
	}
	// Insertion order is preserved.
	if got.ShareEvents[0].Platform != domain.PlatformTwitter || got.ShareEvents[1].Platform != domain.PlatformWhatsApp {
		t.Fatalf("unexpected share event order: %+v", got.ShareEvents)
	}
}
