package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/avkarpov/currency_exchange_app/internal/core/domain"
)

// ExchangeSvcFacade is the conversion service: rate resolution plus the actual
// amount calculation.
type ExchangeSvcFacade interface {
	// CalculateExchange converts amount from one currency to another using the
	// best available rate. All inputs are raw strings and validated first.
	CalculateExchange(ctx context.Context, fromCode, toCode, amount string) (*domain.Conversion, error)

	// FindBestRate resolves a rate for the (already normalized) pair: direct
	// lookup, then inverse reciprocal, then cross-rate through the reference
	// currency. First satisfied rule wins.
	FindBestRate(ctx context.Context, fromCode, toCode string) (decimal.Decimal, error)
}
