package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rcarvalho-pb/admission_payments-go/internal/application/checkout"
	"github.com/rcarvalho-pb/admission_payments-go/internal/domain/order"
)

type CheckoutHandler struct {
	Service *checkout.Service
}

type CreateOrderRequest struct {
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Phone  string  `json:"phone"`
	Amount float64 `json:"amount"`
}

type VerifyPaymentRequest struct {
	OrderID string `json:"orderId"`
}

func (h *CheckoutHandler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	created, err := h.Service.CreateOrder(c.Request.Context(), order.Applicant{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Amount: req.Amount,
	})
	if err != nil {
		var validation *order.ValidationError
		if errors.As(err, &validation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": validation.Error()})
			return
		}

		var rejected *checkout.RejectedError
		if errors.As(err, &rejected) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Failed to create order",
				"data":  rawOrNull(rejected.Body),
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orderId":          created.OrderID,
		"paymentSessionId": created.PaymentSessionID,
	})
}

func (h *CheckoutHandler) VerifyPayment(c *gin.Context) {
	var req VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.Service.VerifyPayment(c.Request.Context(), req.OrderID)
	if err != nil {
		var validation *order.ValidationError
		if errors.As(err, &validation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": validation.Error()})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{"error": "Verification failed"})
		return
	}

	if !result.Paid {
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"message": "Payment not completed yet",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Payment successful",
		"accessCode": result.AccessCode,
	})
}

// rawOrNull keeps gateway payloads embeddable even when the gateway
// returned a non-JSON body.
func rawOrNull(raw json.RawMessage) any {
	if len(raw) == 0 || !json.Valid(raw) {
		return nil
	}
	return raw
}
