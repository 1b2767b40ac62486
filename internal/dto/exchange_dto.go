package dto

import (
	"github.com/shopspring/decimal"

	"github.com/avkarpov/currency_exchange_app/internal/core/domain"
)

// ExchangeResponse is the result of a conversion request. Rate and amount are
// exact; convertedAmount is rounded to 2 decimal places, half-up.
type ExchangeResponse struct {
	BaseCurrency    CurrencyResponse `json:"baseCurrency"`
	TargetCurrency  CurrencyResponse `json:"targetCurrency"`
	Rate            decimal.Decimal  `json:"rate"`
	Amount          decimal.Decimal  `json:"amount"`
	ConvertedAmount decimal.Decimal  `json:"convertedAmount"`
}

// ToExchangeResponse converts a domain.Conversion to its response DTO.
func ToExchangeResponse(conv *domain.Conversion) ExchangeResponse {
	return ExchangeResponse{
		BaseCurrency:    ToCurrencyResponse(&conv.BaseCurrency),
		TargetCurrency:  ToCurrencyResponse(&conv.TargetCurrency),
		Rate:            conv.Rate,
		Amount:          conv.Amount,
		ConvertedAmount: conv.ConvertedAmount,
	}
}
