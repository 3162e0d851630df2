package order

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NewOrderID keeps the ORDER_<millis> shape the checkout UI expects but
// appends a random suffix so two orders created in the same millisecond
// cannot collide.
func NewOrderID() string {
	return fmt.Sprintf("ORDER_%d_%s", time.Now().UnixMilli(), randSuffix())
}

func NewCustomerID() string {
	return fmt.Sprintf("CUST_%d_%s", time.Now().UnixMilli(), randSuffix())
}

func randSuffix() string {
	id := uuid.New()
	return fmt.Sprintf("%x", id[:4])
}
