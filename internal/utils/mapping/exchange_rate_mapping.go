package mapping

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/avkarpov/currency_exchange_app/internal/core/domain"
	"github.com/avkarpov/currency_exchange_app/internal/models"
)

// ToDomainExchangeRate converts a joined exchange-rate view row to the domain
// entity, parsing the stored rate text into an exact decimal.
func ToDomainExchangeRate(v models.ExchangeRateView) (domain.ExchangeRate, error) {
	rate, err := decimal.NewFromString(v.Rate)
	if err != nil {
		return domain.ExchangeRate{}, fmt.Errorf("stored rate %q is not a valid decimal: %w", v.Rate, err)
	}
	return domain.ExchangeRate{
		ExchangeRateID: v.ExchangeRateID,
		BaseCurrency: domain.Currency{
			CurrencyID: v.BaseCurrencyID,
			Code:       v.BaseCurrencyCode,
			Name:       v.BaseCurrencyName,
			Sign:       v.BaseCurrencySign,
		},
		TargetCurrency: domain.Currency{
			CurrencyID: v.TargetCurrencyID,
			Code:       v.TargetCurrencyCode,
			Name:       v.TargetCurrencyName,
			Sign:       v.TargetCurrencySign,
		},
		Rate: rate,
	}, nil
}

// ToDomainExchangeRateSlice converts a slice of view rows to domain entities.
func ToDomainExchangeRateSlice(vs []models.ExchangeRateView) ([]domain.ExchangeRate, error) {
	ds := make([]domain.ExchangeRate, len(vs))
	for i, v := range vs {
		d, err := ToDomainExchangeRate(v)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return ds, nil
}
