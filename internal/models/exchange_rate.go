package models

// ExchangeRate is the database row shape for the exchange_rates table. The
// rate is carried as exact decimal text, never a binary float.
type ExchangeRate struct {
	ExchangeRateID   int64
	BaseCurrencyID   int64
	TargetCurrencyID int64
	Rate             string
}

// ExchangeRateView is the joined read model: an exchange_rates row with full
// currency details for both sides, so callers never need a second lookup.
type ExchangeRateView struct {
	ExchangeRateID     int64
	BaseCurrencyID     int64
	BaseCurrencyCode   string
	BaseCurrencyName   string
	BaseCurrencySign   string
	TargetCurrencyID   int64
	TargetCurrencyCode string
	TargetCurrencyName string
	TargetCurrencySign string
	Rate               string
}
