package metrics

import "sync/atomic"

type Counters struct {
	OrdersCreated        uint64
	OrdersRejected       uint64
	VerificationsPaid    uint64
	VerificationsPending uint64
	GatewayErrors        uint64
	AccessCodesIssued    uint64
}

func (c *Counters) IncOrdersCreated() {
	atomic.AddUint64(&c.OrdersCreated, 1)
}

func (c *Counters) IncOrdersRejected() {
	atomic.AddUint64(&c.OrdersRejected, 1)
}

func (c *Counters) IncVerificationsPaid() {
	atomic.AddUint64(&c.VerificationsPaid, 1)
}

func (c *Counters) IncVerificationsPending() {
	atomic.AddUint64(&c.VerificationsPending, 1)
}

func (c *Counters) IncGatewayErrors() {
	atomic.AddUint64(&c.GatewayErrors, 1)
}

func (c *Counters) IncAccessCodesIssued() {
	atomic.AddUint64(&c.AccessCodesIssued, 1)
}

// Snapshot copies the counters for the /metrics endpoint.
func (c *Counters) Snapshot() map[string]uint64 {
	return map[string]uint64{
		"orders_created":        atomic.LoadUint64(&c.OrdersCreated),
		"orders_rejected":       atomic.LoadUint64(&c.OrdersRejected),
		"verifications_paid":    atomic.LoadUint64(&c.VerificationsPaid),
		"verifications_pending": atomic.LoadUint64(&c.VerificationsPending),
		"gateway_errors":        atomic.LoadUint64(&c.GatewayErrors),
		"access_codes_issued":   atomic.LoadUint64(&c.AccessCodesIssued),
	}
}
