package validation

import "github.com/shopspring/decimal"

// Limits holds the domain constraints the validators enforce. It is built once
// at startup (see platform/config) and passed to the validators explicitly
// instead of living as package-level globals.
type Limits struct {
	CodeLength       int
	CodePairLength   int
	NameMinLength    int
	NameMaxLength    int
	SignMaxLength    int
	MaxRate          decimal.Decimal
	MaxDecimalPlaces int
}

// DefaultLimits returns the stock constraints: 3-letter codes, 6-letter pairs,
// names of 2-64 letters, signs up to 5 characters, rates up to 1,000,000 with
// at most 6 fractional digits.
func DefaultLimits() Limits {
	return Limits{
		CodeLength:       3,
		CodePairLength:   6,
		NameMinLength:    2,
		NameMaxLength:    64,
		SignMaxLength:    5,
		MaxRate:          decimal.NewFromInt(1_000_000),
		MaxDecimalPlaces: 6,
	}
}
