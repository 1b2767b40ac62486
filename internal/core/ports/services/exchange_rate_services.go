package services

import (
	"context"

	"github.com/avkarpov/currency_exchange_app/internal/core/domain"
	"github.com/avkarpov/currency_exchange_app/internal/dto"
)

// ExchangeRateReaderSvc defines read operations for exchange rate data.
type ExchangeRateReaderSvc interface {
	// GetExchangeRate retrieves the rate stored for a 6-letter code pair
	// ("USDEUR"). The lookup is literal: an identical base/target pair returns
	// whatever is stored for that ordered pair.
	GetExchangeRate(ctx context.Context, codePair string) (*domain.ExchangeRate, error)

	// ListExchangeRates retrieves all stored rates.
	ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriterSvc defines write operations for exchange rate data.
type ExchangeRateWriterSvc interface {
	// CreateExchangeRate validates and persists a new rate.
	CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest) (*domain.ExchangeRate, error)

	// UpdateExchangeRate overwrites the rate for an existing code pair.
	UpdateExchangeRate(ctx context.Context, codePair, rate string) (*domain.ExchangeRate, error)
}

// ExchangeRateSvcFacade combines all exchange rate service interfaces.
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateWriterSvc
}
