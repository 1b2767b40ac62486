package domain

import "github.com/shopspring/decimal"

// ExchangeRate is the denormalized view of a stored directional rate: both
// currencies in full plus the exact decimal rate. The reverse pair is a
// distinct record; only the conversion resolver derives it implicitly.
type ExchangeRate struct {
	ExchangeRateID int64
	BaseCurrency   Currency
	TargetCurrency Currency
	Rate           decimal.Decimal
}
