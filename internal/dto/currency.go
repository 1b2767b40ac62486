package dto

import (
	"github.com/avkarpov/currency_exchange_app/internal/core/domain"
)

// CreateCurrencyRequest defines the data needed to create a new currency.
// Fields arrive as raw strings; normalization and the detailed rules live in
// the validation package, binding only rejects absent fields.
type CreateCurrencyRequest struct {
	Name string `form:"name" json:"name" binding:"required"`
	Code string `form:"code" json:"code" binding:"required"`
	Sign string `form:"sign" json:"sign" binding:"required"`
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
	Sign string `json:"sign"`
}

// ToCurrencyResponse converts a domain.Currency to a CurrencyResponse DTO.
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		ID:   curr.CurrencyID,
		Name: curr.Name,
		Code: curr.Code,
		Sign: curr.Sign,
	}
}

// ToListCurrencyResponse converts a slice of domain Currencies to DTOs.
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, curr := range currencies {
		res[i] = ToCurrencyResponse(&curr)
	}
	return res
}
