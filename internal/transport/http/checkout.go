package http

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/SinhaGautam/nothing-server-app/internal/app"
	"github.com/SinhaGautam/nothing-server-app/internal/domain"
)

// CheckoutStarter is the minimal interface needed to initiate a checkout.
type CheckoutStarter interface {
	Checkout(ctx context.Context, in app.CheckoutInput) (domain.GatewayOrder, error)
}

// HandleCheckout returns an HTTP handler for initiating a checkout.
func HandleCheckout(svc CheckoutStarter, logger *log.Logger) http.HandlerFunc {
	if logger == nil {
		logger = log.Default()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		var req checkoutRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		gw, err := svc.Checkout(r.Context(), app.CheckoutInput{
			ProductID:     req.ProductID,
			CustomerEmail: req.CustomerEmail,
			CustomerName:  req.CustomerName,
		})
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrInvalidProductID),
				errors.Is(err, domain.ErrEmailRequired),
				errors.Is(err, domain.ErrNameRequired):
				writeError(w, http.StatusBadRequest, codeValidation, err.Error())
			case errors.Is(err, domain.ErrProductNotFound):
				writeError(w, http.StatusNotFound, codeNotFound, "product not found")
			case errors.Is(err, domain.ErrGateway):
				logger.Printf("checkout gateway failure err=%v", err)
				writeError(w, http.StatusBadGateway, codeGatewayError, "payment gateway unavailable")
			default:
				logger.Printf("checkout failed err=%v", err)
				writeError(w, http.StatusInternalServerError, codeInternalError, "could not create order")
			}
			return
		}

		writeSuccess(w, http.StatusCreated, "order created", checkoutResponse{
			OrderID:  gw.ID,
			Amount:   gw.Amount,
			Currency: gw.Currency,
			Receipt:  gw.Receipt,
		})
	}
}

type checkoutRequest struct {
	ProductID     string `json:"productId"`
	CustomerEmail string `json:"customerEmail"`
	CustomerName  string `json:"customerName"`
}

type checkoutResponse struct {
	OrderID  string `json:"orderId"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

// PaymentValidator is the minimal interface needed to verify a payment.
type PaymentValidator interface {
	ValidatePayment(ctx context.Context, in app.PaymentValidationInput) error
}

// HandleValidatePayment returns an HTTP handler for the gateway's payment
// completion callback.
func HandleValidatePayment(svc PaymentValidator, logger *log.Logger) http.HandlerFunc {
	if logger == nil {
		logger = log.Default()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		var req validatePaymentRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		err := svc.ValidatePayment(r.Context(), app.PaymentValidationInput{
			OrderID:   req.OrderID,
			PaymentID: req.PaymentID,
			Signature: req.Signature,
		})
		if err != nil {
			if errors.Is(err, domain.ErrInvalidSignature) {
				writeError(w, http.StatusBadRequest, codeSignatureMismatch, "payment verification failed")
				return
			}
			logger.Printf("payment validation failed err=%v", err)
			writeError(w, http.StatusInternalServerError, codeInternalError, "payment verification failed")
			return
		}

		writeSuccess(w, http.StatusOK, "payment verified", nil)
	}
}

type validatePaymentRequest struct {
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
}

// OrderConfirmer is the minimal interface needed to confirm an order.
type OrderConfirmer interface {
	Confirm(ctx context.Context, in app.ConfirmInput) (app.ConfirmResult, error)
}

// HandleConfirmOrder returns an HTTP handler for confirming a paid order.
func HandleConfirmOrder(svc OrderConfirmer, logger *log.Logger) http.HandlerFunc {
	if logger == nil {
		logger = log.Default()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		var req confirmOrderRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		res, err := svc.Confirm(r.Context(), app.ConfirmInput{
			ProductID:     req.ProductID,
			OrderID:       req.PaymentDetails.OrderID,
			CustomerEmail: req.CustomerEmail,
			CustomerName:  req.CustomerName,
		})
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrProductNotFound),
				errors.Is(err, domain.ErrOrderNotFound):
				writeError(w, http.StatusNotFound, codeNotFound, "order or product not found")
			default:
				logger.Printf("order confirmation failed err=%v", err)
				writeError(w, http.StatusInternalServerError, codeInternalError, "could not confirm order")
			}
			return
		}

		writeSuccess(w, http.StatusOK, "order confirmed", confirmOrderResponse{
			Product:     res.Product,
			Amount:      res.Amount,
			OrderNumber: res.OrderNumber,
		})
	}
}

type confirmOrderRequest struct {
	CustomerName   string         `json:"customerName"`
	CustomerEmail  string         `json:"customerEmail"`
	ProductID      string         `json:"productId"`
	PaymentDetails paymentDetails `json:"paymentDetails"`
}

type paymentDetails struct {
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
}

type confirmOrderResponse struct {
	Product     string `json:"product"`
	Amount      int64  `json:"amount"`
	OrderNumber string `json:"orderNumber"`
}
