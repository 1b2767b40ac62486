package repositories

import (
	"context"

	"github.com/avkarpov/currency_exchange_app/internal/core/domain"
)

// CurrencyReader defines read operations for currency data.
type CurrencyReader interface {
	// FindCurrencyByCode retrieves a currency by its normalized code.
	// Returns (nil, nil) when the currency does not exist; the caller decides
	// whether absence is an error.
	FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error)

	// ListCurrencies retrieves all currencies. An empty store yields an empty
	// slice, never an error.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyWriter defines write operations for currency data.
type CurrencyWriter interface {
	// InsertCurrency persists a new currency and returns the stored record
	// including its assigned id. Fails with a conflict error when the code is
	// already present.
	InsertCurrency(ctx context.Context, currency domain.Currency) (*domain.Currency, error)
}

// CurrencyRepositoryFacade combines all currency repository interfaces.
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}
