package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
)

type Config struct {
	Primary  Primary        `koanf:"primary"`
	Server   ServerConfig   `koanf:"server"`
	Checkout CheckoutConfig `koanf:"checkout"`
	Worker   WorkerConfig   `koanf:"worker"`
	Logger   LoggerConfig   `koanf:"logger"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

type ServerConfig struct {
	Port         string        `koanf:"port" validate:"required"`
	ReadTimeout  time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"required"`
	IdleTimeout  time.Duration `koanf:"idle_timeout" validate:"required"`
}

// CheckoutConfig carries the shipping rate applied to non-digital items,
// in currency units per kilogram.
type CheckoutConfig struct {
	ShippingFeePerKg float64 `koanf:"shipping_fee_per_kg" validate:"gte=0"`
}

type WorkerConfig struct {
	Interval          time.Duration `koanf:"interval" validate:"required"`
	LowStockThreshold int           `koanf:"low_stock_threshold" validate:"gte=0"`
}

type LoggerConfig struct {
	Level string `koanf:"level"`
}

func (c LoggerConfig) NewLogger() *slog.Logger {
	var level slog.Level
	switch strings.ToLower(c.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
}

func LoadConfig() (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	err := k.Load(confmap.Provider(map[string]interface{}{
		"primary.env":                  "development",
		"server.port":                  "8080",
		"server.read_timeout":          "10s",
		"server.write_timeout":         "15s",
		"server.idle_timeout":          "60s",
		"checkout.shipping_fee_per_kg": 30.0,
		"worker.interval":              "1m",
		"worker.low_stock_threshold":   5,
		"logger.level":                 "info",
	}, "."), nil)
	if err != nil {
		logger.Error("failed to load default configuration", "error", err)
		return nil, err
	}

	err = k.Load(env.Provider("FICMART_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "FICMART_")),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	mainConfig := &Config{}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	validate := validator.New()

	err = validate.Struct(mainConfig)
	if err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	return mainConfig, nil
}
