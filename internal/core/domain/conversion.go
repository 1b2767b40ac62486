package domain

import "github.com/shopspring/decimal"

// Conversion is the ephemeral result of a conversion request. Rate and Amount
// stay exact; only ConvertedAmount is rounded (2 decimal places, half-up).
// Never persisted.
type Conversion struct {
	BaseCurrency    Currency
	TargetCurrency  Currency
	Rate            decimal.Decimal
	Amount          decimal.Decimal
	ConvertedAmount decimal.Decimal
}
