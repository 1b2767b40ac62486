package mapping

import (
	"github.com/avkarpov/currency_exchange_app/internal/core/domain"
	"github.com/avkarpov/currency_exchange_app/internal/models"
)

// ToDomainCurrency converts a currencies row to a domain Currency.
func ToDomainCurrency(m models.Currency) domain.Currency {
	return domain.Currency{
		CurrencyID: m.CurrencyID,
		Code:       m.Code,
		Name:       m.Name,
		Sign:       m.Sign,
	}
}

// ToModelCurrency converts a domain Currency to its row shape.
func ToModelCurrency(d domain.Currency) models.Currency {
	return models.Currency{
		CurrencyID: d.CurrencyID,
		Code:       d.Code,
		Name:       d.Name,
		Sign:       d.Sign,
	}
}

// ToDomainCurrencySlice converts a slice of currency rows to domain Currencies.
func ToDomainCurrencySlice(ms []models.Currency) []domain.Currency {
	ds := make([]domain.Currency, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCurrency(m)
	}
	return ds
}
