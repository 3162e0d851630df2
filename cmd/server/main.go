package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/rcarvalho-pb/admission_payments-go/internal/application/checkout"
	"github.com/rcarvalho-pb/admission_payments-go/internal/config"
	"github.com/rcarvalho-pb/admission_payments-go/internal/infra/logging"
	"github.com/rcarvalho-pb/admission_payments-go/internal/infra/metrics"
	"github.com/rcarvalho-pb/admission_payments-go/internal/infrastructure/gateway/cashfree"
	httpapi "github.com/rcarvalho-pb/admission_payments-go/internal/infrastructure/http"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	minLevel := logging.LevelInfo
	if cfg.LogLevel == "debug" {
		minLevel = logging.LevelDebug
	}
	logger := &logging.StdoutLogger{MinLevel: minLevel}

	counters := &metrics.Counters{}

	gateway := cashfree.NewClient(cashfree.Config{
		BaseURL:    cfg.Cashfree.BaseURL,
		AppID:      cfg.Cashfree.AppID,
		SecretKey:  cfg.Cashfree.SecretKey,
		APIVersion: cfg.Cashfree.APIVersion,
	}, logger)

	service := &checkout.Service{
		Gateway:        gateway,
		Logger:         logger,
		Metrics:        counters,
		CustomerIDMode: checkout.CustomerIDMode(cfg.CustomerIDMode),
		ReturnBaseURL:  cfg.PublicBaseURL,
	}

	handler := &httpapi.CheckoutHandler{
		Service: service,
	}

	router := httpapi.NewRouter(handler, counters, cfg.StaticDir)

	log.Println("HTTP server running on port :" + cfg.Port)
	log.Fatal(router.Run(":" + cfg.Port))
}
