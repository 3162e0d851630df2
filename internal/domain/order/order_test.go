package order_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rcarvalho-pb/admission_payments-go/internal/domain/order"
)

func validApplicant() order.Applicant {
	return order.Applicant{
		Name:   "Asha Rao",
		Email:  "asha@example.com",
		Phone:  "9876543210",
		Amount: 1500,
	}
}

func TestApplicantValidate_ShouldAcceptValidInput(t *testing.T) {
	a := validApplicant()

	require.NoError(t, a.Validate())
}

func TestApplicantValidate_ShouldRejectMissingFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*order.Applicant)
		field  string
	}{
		{"empty name", func(a *order.Applicant) { a.Name = "" }, "name"},
		{"empty email", func(a *order.Applicant) { a.Email = "" }, "email"},
		{"empty phone", func(a *order.Applicant) { a.Phone = "" }, "phone"},
		{"zero amount", func(a *order.Applicant) { a.Amount = 0 }, "amount"},
		{"negative amount", func(a *order.Applicant) { a.Amount = -10 }, "amount"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := validApplicant()
			tc.mutate(&a)

			err := a.Validate()

			var validation *order.ValidationError
			require.ErrorAs(t, err, &validation)
			require.Equal(t, tc.field, validation.Field)
		})
	}
}

func TestNewOrderID_ShouldHaveOrderPrefix(t *testing.T) {
	require.True(t, strings.HasPrefix(order.NewOrderID(), "ORDER_"))
}

func TestNewOrderID_ShouldNotCollideAcrossMilliseconds(t *testing.T) {
	first := order.NewOrderID()
	time.Sleep(2 * time.Millisecond)
	second := order.NewOrderID()

	require.NotEqual(t, first, second)
}

func TestNewOrderID_ShouldNotCollideWithinSameMillisecond(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		id := order.NewOrderID()

		_, dup := seen[id]
		require.False(t, dup, "duplicate order id %q", id)
		seen[id] = struct{}{}
	}
}

func TestNewCustomerID_ShouldHaveCustPrefix(t *testing.T) {
	require.True(t, strings.HasPrefix(order.NewCustomerID(), "CUST_"))
}
