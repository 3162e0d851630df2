// Package config reads the process configuration once at startup.
// Handlers never touch the environment; everything is injected from
// here.
package config

import (
	"fmt"
	"os"
)

const (
	EnvSandbox    = "sandbox"
	EnvProduction = "production"
)

type Cashfree struct {
	AppID      string
	SecretKey  string
	BaseURL    string
	APIVersion string
}

type Config struct {
	Port           string
	StaticDir      string
	PublicBaseURL  string
	CustomerIDMode string
	LogLevel       string
	Cashfree       Cashfree
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:           getenv("PORT", "5000"),
		StaticDir:      getenv("STATIC_DIR", "public"),
		PublicBaseURL:  os.Getenv("PUBLIC_BASE_URL"),
		CustomerIDMode: getenv("CUSTOMER_ID_MODE", "synthetic"),
		LogLevel:       getenv("LOG_LEVEL", "info"),
	}

	if cfg.CustomerIDMode != "synthetic" && cfg.CustomerIDMode != "phone" {
		return nil, fmt.Errorf("CUSTOMER_ID_MODE must be synthetic or phone, got %q", cfg.CustomerIDMode)
	}

	env := getenv("CASHFREE_ENV", EnvSandbox)
	switch env {
	case EnvSandbox:
		cfg.Cashfree.BaseURL = "https://sandbox.cashfree.com/pg"
	case EnvProduction:
		cfg.Cashfree.BaseURL = "https://api.cashfree.com/pg"
	default:
		return nil, fmt.Errorf("CASHFREE_ENV must be sandbox or production, got %q", env)
	}

	cfg.Cashfree.AppID = os.Getenv("CASHFREE_APP_ID")
	if cfg.Cashfree.AppID == "" {
		return nil, fmt.Errorf("CASHFREE_APP_ID is required")
	}

	cfg.Cashfree.SecretKey = os.Getenv("CASHFREE_SECRET_KEY")
	if cfg.Cashfree.SecretKey == "" {
		return nil, fmt.Errorf("CASHFREE_SECRET_KEY is required")
	}

	cfg.Cashfree.APIVersion = getenv("CASHFREE_API_VERSION", "2023-08-01")

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
