package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rcarvalho-pb/admission_payments-go/internal/config"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("CASHFREE_APP_ID", "app-id")
	t.Setenv("CASHFREE_SECRET_KEY", "secret-key")
}

func TestLoad_ShouldApplyDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, "5000", cfg.Port)
	require.Equal(t, "public", cfg.StaticDir)
	require.Equal(t, "synthetic", cfg.CustomerIDMode)
	require.Equal(t, "https://sandbox.cashfree.com/pg", cfg.Cashfree.BaseURL)
	require.Equal(t, "2023-08-01", cfg.Cashfree.APIVersion)
}

func TestLoad_ShouldSelectProductionBaseURL(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CASHFREE_ENV", "production")

	cfg, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, "https://api.cashfree.com/pg", cfg.Cashfree.BaseURL)
}

func TestLoad_ShouldFailWithoutCredentials(t *testing.T) {
	t.Setenv("CASHFREE_APP_ID", "")
	t.Setenv("CASHFREE_SECRET_KEY", "secret-key")

	_, err := config.Load()
	require.ErrorContains(t, err, "CASHFREE_APP_ID")

	t.Setenv("CASHFREE_APP_ID", "app-id")
	t.Setenv("CASHFREE_SECRET_KEY", "")

	_, err = config.Load()
	require.ErrorContains(t, err, "CASHFREE_SECRET_KEY")
}

func TestLoad_ShouldRejectUnknownEnvironment(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CASHFREE_ENV", "staging")

	_, err := config.Load()
	require.ErrorContains(t, err, "CASHFREE_ENV")
}

func TestLoad_ShouldRejectUnknownCustomerIDMode(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CUSTOMER_ID_MODE", "uuid")

	_, err := config.Load()
	require.ErrorContains(t, err, "CUSTOMER_ID_MODE")
}
