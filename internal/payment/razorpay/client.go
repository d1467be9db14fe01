package razorpay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/SinhaGautam/nothing-server-app/internal/domain"
)

const defaultBaseURL = "https://api.razorpay.com"
const defaultTimeout = 10 * time.Second

// Client creates orders against the Razorpay REST API. Any transport error,
// non-2xx status, or unusable response body is normalized to
// domain.ErrGateway so callers treat the provider as one failure mode.
type Client struct {
	baseURL    string
	keyID      string
	keySecret  string
	httpClient *http.Client
}

func NewClient(keyID, keySecret string, opts ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		keyID:      keyID,
		keySecret:  keySecret,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type Option func(*Client)

// WithBaseURL overrides the API base URL (used in tests).
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = u
		}
	}
}

// WithHTTPClient overrides the HTTP client, including its timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

type createOrderRequest struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes,omitempty"`
}

type createOrderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

// CreateOrder creates a remote payment order for the given amount in minor
// currency units. The receipt token is recorded gateway-side for audit and
// reconciliation; the returned id is the order's canonical identity.
func (c *Client) CreateOrder(ctx context.Context, amount int64, currency, receipt string, notes map[string]string) (domain.GatewayOrder, error) {
	body, err := json.Marshal(createOrderRequest{
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
		Notes:    notes,
	})
	if err != nil {
		return domain.GatewayOrder{}, fmt.Errorf("%w: encode order request: %v", domain.ErrGateway, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return domain.GatewayOrder{}, fmt.Errorf("%w: build order request: %v", domain.ErrGateway, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.keyID, c.keySecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.GatewayOrder{}, fmt.Errorf("%w: create order: %v", domain.ErrGateway, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.GatewayOrder{}, fmt.Errorf("%w: create order: status %d", domain.ErrGateway, resp.StatusCode)
	}

	var created createOrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return domain.GatewayOrder{}, fmt.Errorf("%w: decode order response: %v", domain.ErrGateway, err)
	}
	if created.ID == "" {
		return domain.GatewayOrder{}, fmt.Errorf("%w: order response missing id", domain.ErrGateway)
	}

	return domain.GatewayOrder{
		ID:       created.ID,
		Amount:   created.Amount,
		Currency: created.Currency,
		Receipt:  created.Receipt,
	}, nil
}
