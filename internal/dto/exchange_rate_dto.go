package dto

import (
	"github.com/shopspring/decimal"

	"github.com/avkarpov/currency_exchange_app/internal/core/domain"
)

// CreateExchangeRateRequest defines the data needed to create a new rate.
type CreateExchangeRateRequest struct {
	BaseCurrencyCode   string `form:"baseCurrencyCode" json:"baseCurrencyCode" binding:"required"`
	TargetCurrencyCode string `form:"targetCurrencyCode" json:"targetCurrencyCode" binding:"required"`
	Rate               string `form:"rate" json:"rate" binding:"required"`
}

// UpdateExchangeRateRequest defines the body of a rate patch; the pair itself
// comes from the URL and cannot be changed.
type UpdateExchangeRateRequest struct {
	Rate string `form:"rate" json:"rate" binding:"required"`
}

// ExchangeRateResponse defines the denormalized rate returned by the API.
// Rate serializes as a JSON number (decimal.MarshalJSONWithoutQuotes is set at
// bootstrap).
type ExchangeRateResponse struct {
	ID             int64            `json:"id"`
	BaseCurrency   CurrencyResponse `json:"baseCurrency"`
	TargetCurrency CurrencyResponse `json:"targetCurrency"`
	Rate           decimal.Decimal  `json:"rate"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to its response DTO.
func ToExchangeRateResponse(rate *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		ID:             rate.ExchangeRateID,
		BaseCurrency:   ToCurrencyResponse(&rate.BaseCurrency),
		TargetCurrency: ToCurrencyResponse(&rate.TargetCurrency),
		Rate:           rate.Rate,
	}
}

// ToListExchangeRateResponse converts a slice of domain rates to DTOs.
func ToListExchangeRateResponse(rates []domain.ExchangeRate) []ExchangeRateResponse {
	responses := make([]ExchangeRateResponse, len(rates))
	for i, rate := range rates {
		responses[i] = ToExchangeRateResponse(&rate)
	}
	return responses
}
