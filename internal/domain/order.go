package domain

import "time"

type OrderStatus string

const (
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// Order is keyed by the gateway-assigned order id. One is never created
// without a matching gateway order, so the two are 1:1 by construction.
type Order struct {
	ID              string
	ProductID       string
	ProductName     string
	ProductCategory string
	CustomerEmail   string
	CustomerName    string
	Amount          int64
	Status          OrderStatus
	PaymentStatus   PaymentStatus
	Shared          bool
	ShareEvents     []ShareEvent
	CreatedAt       time.Time
}

// ShareEvent records one social share of an order.
type ShareEvent struct {
	Platform  Platform
	CreatedAt time.Time
}

// GatewayOrder is the payment provider's order descriptor returned at
// checkout. Its ID becomes the local Order's identity; Receipt is the
// locally generated token handed to the gateway for its audit trail.
type GatewayOrder struct {
	ID       string
	Amount   int64
	Currency string
	Receipt  string
}
