package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rcarvalho-pb/admission_payments-go/internal/domain/accesscode"
	"github.com/rcarvalho-pb/admission_payments-go/internal/domain/order"
	"github.com/rcarvalho-pb/admission_payments-go/internal/infra/logging"
	"github.com/rcarvalho-pb/admission_payments-go/internal/infra/metrics"
)

// CustomerIDMode selects how the gateway customer_id is derived. The
// deployed variants disagreed on this, so it is configuration now.
type CustomerIDMode string

const (
	CustomerIDSynthetic CustomerIDMode = "synthetic"
	CustomerIDPhone     CustomerIDMode = "phone"
)

type Service struct {
	Gateway        Gateway
	Logger         logging.Logger
	Metrics        *metrics.Counters
	CustomerIDMode CustomerIDMode

	// ReturnBaseURL, when set, becomes the order's return_url target.
	ReturnBaseURL string
}

type OrderCreated struct {
	OrderID          string
	PaymentSessionID string
}

type Verification struct {
	Paid       bool
	Status     order.Status
	AccessCode string
}

// CreateOrder validates the applicant, builds an order and registers it
// with the gateway. Exactly one gateway call is made; there are no
// retries. The order itself is not kept after the call returns — the
// gateway is the system of record.
func (s *Service) CreateOrder(ctx context.Context, a order.Applicant) (*OrderCreated, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}

	o := &order.Order{
		ID:       order.NewOrderID(),
		Amount:   a.Amount,
		Currency: order.Currency,
		Note:     order.Note,
		Customer: order.CustomerDetails{
			ID:    s.customerID(a),
			Name:  a.Name,
			Email: a.Email,
			Phone: a.Phone,
		},
	}

	if s.ReturnBaseURL != "" {
		o.ReturnURL = fmt.Sprintf("%s/payment-status?order_id=%s",
			strings.TrimRight(s.ReturnBaseURL, "/"), o.ID)
	}

	res, err := s.Gateway.CreateOrder(ctx, o)
	if err != nil {
		var rejected *RejectedError
		if errors.As(err, &rejected) {
			s.Metrics.IncOrdersRejected()
			s.Logger.Error("gateway rejected order", map[string]any{
				"order-id": o.ID,
				"status":   rejected.StatusCode,
				"body":     string(rejected.Body),
			})
		} else {
			s.Metrics.IncGatewayErrors()
			s.Logger.Error("order creation failed", map[string]any{
				"order-id": o.ID,
				"error":    err.Error(),
			})
		}
		return nil, err
	}

	if res.Status != order.StatusActive {
		s.Metrics.IncOrdersRejected()
		s.Logger.Error("gateway returned non-active order", map[string]any{
			"order-id": o.ID,
			"status":   string(res.Status),
		})
		return nil, &RejectedError{Body: res.Raw}
	}

	s.Metrics.IncOrdersCreated()
	s.Logger.Info("order created", map[string]any{
		"order-id": res.OrderID,
		"amount":   o.Amount,
	})

	return &OrderCreated{
		OrderID:          res.OrderID,
		PaymentSessionID: res.PaymentSessionID,
	}, nil
}

// VerifyPayment re-derives the payment state from the gateway. A
// non-PAID status is a legitimate polling outcome, not an error;
// clients call this endpoint before payment finishes. On PAID an access
// code is issued. Nothing is cached, so every call answers from current
// gateway state.
func (s *Service) VerifyPayment(ctx context.Context, orderID string) (*Verification, error) {
	if orderID == "" {
		return nil, &order.ValidationError{Field: "orderId", Reason: "required"}
	}

	res, err := s.Gateway.OrderStatus(ctx, orderID)
	if err != nil {
		s.Metrics.IncGatewayErrors()
		s.Logger.Error("payment verification failed", map[string]any{
			"order-id": orderID,
			"error":    err.Error(),
		})
		return nil, err
	}

	if res.Status != order.StatusPaid {
		s.Metrics.IncVerificationsPending()
		s.Logger.Info("payment not completed", map[string]any{
			"order-id": orderID,
			"status":   string(res.Status),
		})
		return &Verification{Paid: false, Status: res.Status}, nil
	}

	code := accesscode.New()
	s.Metrics.IncVerificationsPaid()
	s.Metrics.IncAccessCodesIssued()
	s.Logger.Info("payment verified", map[string]any{
		"order-id": orderID,
	})

	return &Verification{Paid: true, Status: res.Status, AccessCode: code}, nil
}

func (s *Service) customerID(a order.Applicant) string {
	if s.CustomerIDMode == CustomerIDPhone {
		return a.Phone
	}
	return order.NewCustomerID()
}
