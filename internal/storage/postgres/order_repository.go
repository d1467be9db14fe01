package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/SinhaGautam/nothing-server-app/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

func (r *OrderRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return withTx(ctx, r.pool, fn)
}

func (r *OrderRepository) CreateOrder(ctx context.Context, order domain.Order) error {
	const stmt = `
INSERT INTO orders (id, product_id, product_name, product_category, customer_email, customer_name, amount, status, payment_status, shared, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.exec(ctx, stmt,
		order.ID, order.ProductID, order.ProductName, order.ProductCategory,
		order.CustomerEmail, order.CustomerName, order.Amount,
		order.Status, order.PaymentStatus, order.Shared, order.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("create order %s: duplicate gateway order id: %w", order.ID, err)
		}
		if isForeignKeyViolation(err) {
			return domain.ErrProductNotFound
		}
		return fmt.Errorf("create order: %w", err)
	}
	return nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (domain.Order, error) {
	const query = `
SELECT id, product_id, product_name, product_category, customer_email, customer_name, amount, status, payment_status, shared, created_at
FROM orders
WHERE id = $1`

	var o domain.Order
	var status, paymentStatus string
	err := r.queryRow(ctx, query, id).Scan(
		&o.ID, &o.ProductID, &o.ProductName, &o.ProductCategory,
		&o.CustomerEmail, &o.CustomerName, &o.Amount,
		&status, &paymentStatus, &o.Shared, &o.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return domain.Order{}, domain.ErrOrderNotFound
		}
		return domain.Order{}, fmt.Errorf("get order: %w", err)
	}
	o.Status = domain.OrderStatus(status)
	o.PaymentStatus = domain.PaymentStatus(paymentStatus)

	events, err := r.shareEvents(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}
	o.ShareEvents = events
	return o, nil
}

func (r *OrderRepository) UpdatePaymentStatus(ctx context.Context, id string, status domain.PaymentStatus) error {
	const stmt = `UPDATE orders SET payment_status = $2 WHERE id = $1`

	tag, err := r.exec(ctx, stmt, id, status)
	if err != nil {
		return fmt.Errorf("update payment status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func (r *OrderRepository) AddShareEvent(ctx context.Context, orderID string, platform domain.Platform, at time.Time) error {
	const stmt = `INSERT INTO order_share_events (order_id, platform, created_at) VALUES ($1, $2, $3)`

	_, err := r.exec(ctx, stmt, orderID, platform, at)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrOrderNotFound
		}
		return fmt.Errorf("add share event: %w", err)
	}
	return nil
}

func (r *OrderRepository) MarkShared(ctx context.Context, orderID string) error {
	const stmt = `UPDATE orders SET shared = TRUE WHERE id = $1`

	tag, err := r.exec(ctx, stmt, orderID)
	if err != nil {
		return fmt.Errorf("mark shared: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func (r *OrderRepository) shareEvents(ctx context.Context, orderID string) ([]domain.ShareEvent, error) {
	const query = `
SELECT platform, created_at
FROM order_share_events
WHERE order_id = $1
ORDER BY id`

	rows, err := r.query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list share events: %w", err)
	}
	defer rows.Close()

	var events []domain.ShareEvent
	for rows.Next() {
		var ev domain.ShareEvent
		var platform string
		if err := rows.Scan(&platform, &ev.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan share event: %w", err)
		}
		ev.Platform = domain.Platform(platform)
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate share events: %w", err)
	}
	return events, nil
}

func (r *OrderRepository) exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.Exec(ctx, sql, args...)
	}
	return r.pool.Exec(ctx, sql, args...)
}

func (r *OrderRepository) queryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if tx := txFromContext(ctx); tx != nil {
		return tx.QueryRow(ctx, sql, args...)
	}
	return r.pool.QueryRow(ctx, sql, args...)
}

func (r *OrderRepository) query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.Query(ctx, sql, args...)
	}
	return r.pool.Query(ctx, sql, args...)
}
