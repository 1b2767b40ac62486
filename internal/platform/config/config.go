package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/avkarpov/currency_exchange_app/internal/core/validation"
)

// Config holds application configuration. Domain limits travel inside it as an
// explicit struct handed to the validation component, not as package globals.
type Config struct {
	DatabaseURL           string
	Port                  string
	IsProduction          bool
	RateLimit             string // ulule/limiter format, e.g. "100-M"
	ReferenceCurrencyCode string
	Limits                validation.Limits
}

// LoadConfig loads configuration from environment variables and a .env file if
// present. Real environment variables override .env values.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("REFERENCE_CURRENCY", "USD")
	viper.SetDefault("MAX_EXCHANGE_RATE", "1000000")

	viper.AutomaticEnv()

	limits := validation.DefaultLimits()
	maxRateStr := viper.GetString("MAX_EXCHANGE_RATE")
	maxRate, err := decimal.NewFromString(maxRateStr)
	if err != nil || maxRate.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("invalid MAX_EXCHANGE_RATE %q", maxRateStr)
	}
	limits.MaxRate = maxRate

	cfg := &Config{
		DatabaseURL:           viper.GetString("PGSQL_URL"),
		Port:                  viper.GetString("PORT"),
		IsProduction:          viper.GetBool("IS_PRODUCTION"),
		RateLimit:             viper.GetString("RATE_LIMIT"),
		ReferenceCurrencyCode: viper.GetString("REFERENCE_CURRENCY"),
		Limits:                limits,
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("PGSQL_URL environment variable is not set")
	}

	return cfg, nil
}
