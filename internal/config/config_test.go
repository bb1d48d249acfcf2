package config_test

import (
	"testing"
	"time"

	"github.com/DanielPopoola/ficmart-checkout/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("loads defaults without environment", func(t *testing.T) {
		cfg, err := config.LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
		assert.Equal(t, 30.0, cfg.Checkout.ShippingFeePerKg)
		assert.Equal(t, time.Minute, cfg.Worker.Interval)
		assert.Equal(t, 5, cfg.Worker.LowStockThreshold)
		assert.Equal(t, "info", cfg.Logger.Level)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("FICMART_SERVER__PORT", "9090")
		t.Setenv("FICMART_CHECKOUT__SHIPPING_FEE_PER_KG", "12.5")

		cfg, err := config.LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, 12.5, cfg.Checkout.ShippingFeePerKg)
	})

	t.Run("rejects a negative shipping fee", func(t *testing.T) {
		t.Setenv("FICMART_CHECKOUT__SHIPPING_FEE_PER_KG", "-1")

		_, err := config.LoadConfig()

		assert.Error(t, err)
	})
}
