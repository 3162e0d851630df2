package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rcarvalho-pb/admission_payments-go/internal/domain/order"
)

// ErrGatewayUnavailable covers transport failures and responses the
// gateway client could not decode. Callers see a generic message; the
// detail stays in the logs.
var ErrGatewayUnavailable = errors.New("payment gateway unavailable")

// RejectedError means the gateway explicitly declined the request. The
// raw gateway payload is kept so handlers can surface it for diagnostics.
type RejectedError struct {
	StatusCode int
	Body       json.RawMessage
}

func (e *RejectedError) Error() string {
	if e.StatusCode == 0 {
		return "gateway rejected request"
	}
	return fmt.Sprintf("gateway rejected request (status %d)", e.StatusCode)
}

// GatewayOrder is the gateway's view of an order, as returned by both
// the create and the status-lookup calls.
type GatewayOrder struct {
	OrderID          string
	Status           order.Status
	PaymentSessionID string
	Raw              json.RawMessage
}

type Gateway interface {
	CreateOrder(ctx context.Context, o *order.Order) (*GatewayOrder, error)
	OrderStatus(ctx context.Context, orderID string) (*GatewayOrder, error)
}
