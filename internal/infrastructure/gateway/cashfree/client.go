// Package cashfree implements the checkout.Gateway contract against the
// Cashfree PG orders API.
package cashfree

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rcarvalho-pb/admission_payments-go/internal/application/checkout"
	"github.com/rcarvalho-pb/admission_payments-go/internal/domain/order"
	"github.com/rcarvalho-pb/admission_payments-go/internal/infra/logging"
)

const (
	SandboxBaseURL    = "https://sandbox.cashfree.com/pg"
	ProductionBaseURL = "https://api.cashfree.com/pg"

	DefaultAPIVersion = "2023-08-01"

	defaultTimeout = 15 * time.Second
)

type Client struct {
	baseURL    string
	appID      string
	secretKey  string
	apiVersion string
	httpClient *http.Client
	logger     logging.Logger
}

type Config struct {
	BaseURL    string
	AppID      string
	SecretKey  string
	APIVersion string

	// HTTPClient overrides the default client, mainly for tests.
	HTTPClient *http.Client
}

func NewClient(cfg Config, logger logging.Logger) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	apiVersion := cfg.APIVersion
	if apiVersion == "" {
		apiVersion = DefaultAPIVersion
	}

	return &Client{
		baseURL:    cfg.BaseURL,
		appID:      cfg.AppID,
		secretKey:  cfg.SecretKey,
		apiVersion: apiVersion,
		httpClient: httpClient,
		logger:     logger,
	}
}

type customerDetails struct {
	CustomerID    string `json:"customer_id"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
}

type orderMeta struct {
	ReturnURL string `json:"return_url,omitempty"`
}

type createOrderRequest struct {
	OrderID         string          `json:"order_id"`
	OrderAmount     float64         `json:"order_amount"`
	OrderCurrency   string          `json:"order_currency"`
	CustomerDetails customerDetails `json:"customer_details"`
	OrderNote       string          `json:"order_note,omitempty"`
	OrderMeta       *orderMeta      `json:"order_meta,omitempty"`
}

type orderResponse struct {
	OrderID          string `json:"order_id"`
	OrderStatus      string `json:"order_status"`
	PaymentSessionID string `json:"payment_session_id"`
}

func (c *Client) CreateOrder(ctx context.Context, o *order.Order) (*checkout.GatewayOrder, error) {
	payload := createOrderRequest{
		OrderID:       o.ID,
		OrderAmount:   o.Amount,
		OrderCurrency: o.Currency,
		OrderNote:     o.Note,
		CustomerDetails: customerDetails{
			CustomerID:    o.Customer.ID,
			CustomerName:  o.Customer.Name,
			CustomerEmail: o.Customer.Email,
			CustomerPhone: o.Customer.Phone,
		},
	}

	if o.ReturnURL != "" {
		payload.OrderMeta = &orderMeta{ReturnURL: o.ReturnURL}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: encoding order: %v", checkout.ErrGatewayUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", checkout.ErrGatewayUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.setAuthHeaders(req)

	return c.do(req)
}

func (c *Client) OrderStatus(ctx context.Context, orderID string) (*checkout.GatewayOrder, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/orders/"+orderID, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", checkout.ErrGatewayUnavailable, err)
	}
	c.setAuthHeaders(req)

	return c.do(req)
}

func (c *Client) setAuthHeaders(req *http.Request) {
	req.Header.Set("x-client-id", c.appID)
	req.Header.Set("x-client-secret", c.secretKey)
	req.Header.Set("x-api-version", c.apiVersion)
}

func (c *Client) do(req *http.Request) (*checkout.GatewayOrder, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", checkout.ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", checkout.ErrGatewayUnavailable, err)
	}

	c.logger.Debug("gateway response", map[string]any{
		"method": req.Method,
		"url":    req.URL.String(),
		"status": resp.StatusCode,
		"body":   string(raw),
	})

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &checkout.RejectedError{
			StatusCode: resp.StatusCode,
			Body:       json.RawMessage(raw),
		}
	}

	var parsed orderResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", checkout.ErrGatewayUnavailable, err)
	}

	return &checkout.GatewayOrder{
		OrderID:          parsed.OrderID,
		Status:           order.Status(parsed.OrderStatus),
		PaymentSessionID: parsed.PaymentSessionID,
		Raw:              json.RawMessage(raw),
	}, nil
}
