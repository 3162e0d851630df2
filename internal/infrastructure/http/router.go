package httpapi

import (
	"net/http"
	"path/filepath"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/rcarvalho-pb/admission_payments-go/internal/infra/metrics"
)

func NewRouter(handler *CheckoutHandler, counters *metrics.Counters, staticDir string) *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())

	router.POST("/create-order", handler.CreateOrder)
	router.POST("/verify-payment", handler.VerifyPayment)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/metrics", func(c *gin.Context) {
		c.JSON(http.StatusOK, counters.Snapshot())
	})

	if staticDir != "" {
		router.StaticFile("/", filepath.Join(staticDir, "index.html"))
		// Gateway return_urls point here after checkout.
		router.StaticFile("/payment-status", filepath.Join(staticDir, "payment-status.html"))
		router.Static("/static", staticDir)
	}

	return router
}
