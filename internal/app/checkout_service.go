package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"time"

	"github.com/SinhaGautam/nothing-server-app/internal/clock"
	"github.com/SinhaGautam/nothing-server-app/internal/domain"
	"github.com/SinhaGautam/nothing-server-app/internal/mail"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"
)

type OrderRepository interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	CreateOrder(ctx context.Context, order domain.Order) error
	GetByID(ctx context.Context, id string) (domain.Order, error)
	UpdatePaymentStatus(ctx context.Context, id string, status domain.PaymentStatus) error
}

type ProductCatalog interface {
	GetByID(ctx context.Context, id string) (domain.Product, error)
}

type PaymentGateway interface {
	CreateOrder(ctx context.Context, amount int64, currency, receipt string, notes map[string]string) (domain.GatewayOrder, error)
	VerifySignature(orderID, paymentID, signature string) error
}

// Notifier starts a detached delivery; it never reports failure to the caller.
type Notifier interface {
	Dispatch(msg mail.Message)
}

const currencyINR = "INR"
const defaultGatewayTimeout = 15 * time.Second

var (
	productIDRX = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)
	emailRX     = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

type CheckoutService struct {
	orders         OrderRepository
	catalog        ProductCatalog
	gateway        PaymentGateway
	notifier       Notifier
	clock          clock.Clock
	logger         *log.Logger
	gatewayTimeout time.Duration
	ordersCreated  prometheus.Counter
}

func NewCheckoutService(orders OrderRepository, catalog ProductCatalog, gateway PaymentGateway, notifier Notifier, clk clock.Clock, logger *log.Logger, opts ...CheckoutServiceOption) *CheckoutService {
	if logger == nil {
		logger = log.Default()
	}
	svc := &CheckoutService{
		orders:         orders,
		catalog:        catalog,
		gateway:        gateway,
		notifier:       notifier,
		clock:          clk,
		logger:         logger,
		gatewayTimeout: defaultGatewayTimeout,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

type CheckoutServiceOption func(*CheckoutService)

// WithGatewayTimeout bounds a single checkout attempt so a hung payment
// provider cannot hold the transaction open.
func WithGatewayTimeout(d time.Duration) CheckoutServiceOption {
	return func(s *CheckoutService) {
		if d > 0 {
			s.gatewayTimeout = d
		}
	}
}

// WithOrdersCounter wires a metric incremented once per successful checkout.
func WithOrdersCounter(c prometheus.Counter) CheckoutServiceOption {
	return func(s *CheckoutService) {
		s.ordersCreated = c
	}
}

type CheckoutInput struct {
	ProductID     string
	CustomerEmail string
	CustomerName  string
}

func (in CheckoutInput) validate() error {
	if !productIDRX.MatchString(in.ProductID) {
		return domain.ErrInvalidProductID
	}
	if !emailRX.MatchString(in.CustomerEmail) {
		return domain.ErrEmailRequired
	}
	if in.CustomerName == "" {
		return domain.ErrNameRequired
	}
	return nil
}

// Checkout runs the full purchase sequence: fetch the product, create the
// remote payment order, persist the local order, all inside one transaction.
// Any failure aborts the transaction; no local order survives a gateway
// failure. A gateway-side order may survive without a local record, which is
// acceptable: its receipt token remains discoverable for reconciliation.
func (s *CheckoutService) Checkout(ctx context.Context, in CheckoutInput) (domain.GatewayOrder, error) {
	if err := in.validate(); err != nil {
		return domain.GatewayOrder{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.gatewayTimeout)
	defer cancel()

	var created domain.GatewayOrder
	err := s.orders.WithTx(ctx, func(txCtx context.Context) error {
		product, err := s.catalog.GetByID(txCtx, in.ProductID)
		if err != nil {
			return err
		}

		// Product.Active and Product.Inventory are deliberately not checked
		// here; see the Product type.
		receipt := newReceipt()
		gw, err := s.gateway.CreateOrder(txCtx, product.Price, currencyINR, receipt, map[string]string{
			"product_id":     product.ID,
			"customer_email": in.CustomerEmail,
		})
		if err != nil {
			if errors.Is(err, domain.ErrGateway) {
				return err
			}
			return fmt.Errorf("%w: %v", domain.ErrGateway, err)
		}
		if gw.ID == "" {
			return fmt.Errorf("%w: gateway returned no order id", domain.ErrGateway)
		}

		order := domain.Order{
			ID:              gw.ID,
			ProductID:       product.ID,
			ProductName:     product.Name,
			ProductCategory: product.Category,
			CustomerEmail:   in.CustomerEmail,
			CustomerName:    in.CustomerName,
			Amount:          gw.Amount,
			Status:          domain.OrderStatusConfirmed,
			PaymentStatus:   domain.PaymentStatusPending,
			CreatedAt:       s.clock.Now(),
		}
		if err := s.orders.CreateOrder(txCtx, order); err != nil {
			return err
		}

		created = gw
		return nil
	})
	if err != nil {
		return domain.GatewayOrder{}, err
	}

	if s.ordersCreated != nil {
		s.ordersCreated.Inc()
	}
	s.logger.Printf("checkout complete order_id=%s product_id=%s amount=%d", created.ID, in.ProductID, created.Amount)
	return created, nil
}

type PaymentValidationInput struct {
	OrderID   string
	PaymentID string
	Signature string
}

// ValidatePayment is the sole authenticity check that a payment completed.
// On success the local payment status is brought up to date; a failure to
// record it is logged but does not invalidate the verified payment.
func (s *CheckoutService) ValidatePayment(ctx context.Context, in PaymentValidationInput) error {
	if in.OrderID == "" || in.PaymentID == "" || in.Signature == "" {
		return domain.ErrInvalidSignature
	}
	if err := s.gateway.VerifySignature(in.OrderID, in.PaymentID, in.Signature); err != nil {
		s.logger.Printf("payment signature rejected order_id=%s payment_id=%s", in.OrderID, in.PaymentID)
		return err
	}

	if err := s.orders.UpdatePaymentStatus(ctx, in.OrderID, domain.PaymentStatusPaid); err != nil {
		s.logger.Printf("payment status update failed order_id=%s err=%v", in.OrderID, err)
	}
	return nil
}

type ConfirmInput struct {
	ProductID     string
	OrderID       string
	CustomerEmail string
	CustomerName  string
}

type ConfirmResult struct {
	Product     string
	Amount      int64
	OrderNumber string
}

// Confirm re-reads the product and order and queues the confirmation email.
// The email is fire-and-forget: its outcome never changes the response, and
// re-confirming returns the same summary (another email may go out; the
// order record, not the email, is authoritative).
func (s *CheckoutService) Confirm(ctx context.Context, in ConfirmInput) (ConfirmResult, error) {
	if in.ProductID == "" {
		return ConfirmResult{}, domain.ErrProductNotFound
	}
	if in.OrderID == "" {
		return ConfirmResult{}, domain.ErrOrderNotFound
	}

	var (
		product domain.Product
		order   domain.Order
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		product, err = s.catalog.GetByID(gctx, in.ProductID)
		return err
	})
	g.Go(func() error {
		var err error
		order, err = s.orders.GetByID(gctx, in.OrderID)
		return err
	})
	if err := g.Wait(); err != nil {
		return ConfirmResult{}, err
	}

	s.notifier.Dispatch(confirmationEmail(order, product))
	s.logger.Printf("order confirmed order_id=%s product_id=%s", order.ID, product.ID)

	return ConfirmResult{
		Product:     product.Name,
		Amount:      order.Amount,
		OrderNumber: order.ID,
	}, nil
}

func confirmationEmail(order domain.Order, product domain.Product) mail.Message {
	body := fmt.Sprintf(
		"Hi %s,\n\nYour order %s for %s is confirmed.\nAmount: %d (minor units, %s)\n\nThank you for buying absolutely nothing.\n",
		order.CustomerName, order.ID, product.Name, order.Amount, currencyINR,
	)
	return mail.Message{
		To:      []string{order.CustomerEmail},
		Subject: fmt.Sprintf("Order confirmed: %s", order.ID),
		Body:    body,
	}
}
