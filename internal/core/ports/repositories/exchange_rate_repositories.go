package repositories

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/avkarpov/currency_exchange_app/internal/core/domain"
)

// ExchangeRateReader defines read operations for exchange rate data.
type ExchangeRateReader interface {
	// FindExchangeRate retrieves the stored rate for the exact ordered pair
	// (base, target), denormalized with full currency details for both sides.
	// Returns (nil, nil) when no rate is stored for that pair.
	FindExchangeRate(ctx context.Context, baseCode, targetCode string) (*domain.ExchangeRate, error)

	// ListExchangeRates retrieves all stored rates, denormalized the same way.
	ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriter defines write operations for exchange rate data.
type ExchangeRateWriter interface {
	// InsertExchangeRate persists a new rate for the ordered pair. Fails with a
	// not-found error when either code does not resolve to a currency, and with
	// a conflict error when the pair already has a stored rate.
	InsertExchangeRate(ctx context.Context, baseCode, targetCode string, rate decimal.Decimal) (*domain.ExchangeRate, error)

	// UpdateExchangeRate overwrites the rate for an existing ordered pair,
	// leaving id and currencies unchanged. Returns (nil, nil) when no rate
	// exists for that pair.
	UpdateExchangeRate(ctx context.Context, baseCode, targetCode string, rate decimal.Decimal) (*domain.ExchangeRate, error)
}

// ExchangeRateRepositoryFacade combines all exchange rate repository interfaces.
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}
