package validation

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/avkarpov/currency_exchange_app/internal/apperrors"
)

// ExchangeRateValidator checks and normalizes raw exchange-rate input:
// currency code pairs, rates and conversion amounts.
type ExchangeRateValidator struct {
	limits            Limits
	currencyValidator *CurrencyValidator
}

// NewExchangeRateValidator creates an ExchangeRateValidator enforcing the given
// limits, delegating single-code checks to the currency validator.
func NewExchangeRateValidator(limits Limits, currencyValidator *CurrencyValidator) *ExchangeRateValidator {
	return &ExchangeRateValidator{limits: limits, currencyValidator: currencyValidator}
}

// ValidatedExchangeRate is the result of validating a full exchange-rate payload.
type ValidatedExchangeRate struct {
	BaseCurrencyCode   string
	TargetCurrencyCode string
	Rate               decimal.Decimal
}

// ValidateCurrencyCodePair trims and upper-cases a concatenated code pair
// ("USDEUR") and splits it into base and target codes. The fixed-width 3+3
// format is what keeps the separatorless pair unambiguous; it must not be
// relaxed while codes are exactly 3 letters.
func (v *ExchangeRateValidator) ValidateCurrencyCodePair(raw string) (string, string, error) {
	pair := strings.ToUpper(strings.TrimSpace(raw))

	if pair == "" {
		return "", "", apperrors.NewValidationError("currency pair cannot be empty")
	}
	if len(pair) != v.limits.CodePairLength || !isUpperASCII(pair) {
		return "", "", apperrors.NewValidationError(fmt.Sprintf(
			"currency pair must be %d letters (A-Z only), first %d base currency, last %d target currency",
			v.limits.CodePairLength, v.limits.CodeLength, v.limits.CodeLength))
	}
	return pair[:v.limits.CodeLength], pair[v.limits.CodeLength:], nil
}

// ValidateRate parses a rate string into an exact decimal, enforcing
// 0 < rate <= MaxRate and at most MaxDecimalPlaces fractional digits. The
// fractional-digit check runs on the raw text so "1.200000" is legal while
// "0.1234567" is not, regardless of trailing zeros. The returned decimal has
// trailing zeros stripped.
func (v *ExchangeRateValidator) ValidateRate(raw string) (decimal.Decimal, error) {
	return v.validateDecimal(raw, "exchange rate")
}

// ValidateAmount parses the amount being converted with the same numeric rules
// as rates: a positive decimal within the textual precision limit. Zero and
// negative amounts are rejected.
func (v *ExchangeRateValidator) ValidateAmount(raw string) (decimal.Decimal, error) {
	return v.validateDecimal(raw, "amount")
}

// ValidateExchangeRateData validates a full create-exchange-rate payload at once.
func (v *ExchangeRateValidator) ValidateExchangeRateData(baseCode, targetCode, rate string) (*ValidatedExchangeRate, error) {
	validatedBase, err := v.currencyValidator.ValidateCurrencyCode(baseCode)
	if err != nil {
		return nil, err
	}
	validatedTarget, err := v.currencyValidator.ValidateCurrencyCode(targetCode)
	if err != nil {
		return nil, err
	}
	validatedRate, err := v.ValidateRate(rate)
	if err != nil {
		return nil, err
	}
	return &ValidatedExchangeRate{
		BaseCurrencyCode:   validatedBase,
		TargetCurrencyCode: validatedTarget,
		Rate:               validatedRate,
	}, nil
}

func (v *ExchangeRateValidator) validateDecimal(raw, subject string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(raw)

	if cleaned == "" {
		return decimal.Decimal{}, apperrors.NewValidationError(subject + " cannot be empty")
	}

	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, apperrors.NewValidationError(subject + " must be a valid number")
	}

	if value.LessThanOrEqual(decimal.Zero) {
		return decimal.Decimal{}, apperrors.NewValidationError(subject + " must be greater than zero")
	}
	if value.GreaterThan(v.limits.MaxRate) {
		return decimal.Decimal{}, apperrors.NewValidationError(
			fmt.Sprintf("%s must not exceed %s", subject, v.limits.MaxRate.String()))
	}
	if fractionalDigits(cleaned) > v.limits.MaxDecimalPlaces {
		return decimal.Decimal{}, apperrors.NewValidationError(
			fmt.Sprintf("%s cannot have more than %d decimal places", subject, v.limits.MaxDecimalPlaces))
	}

	return stripTrailingZeros(value), nil
}

// fractionalDigits counts digits after the decimal point in the textual
// representation, stopping at an exponent marker if present.
func fractionalDigits(s string) int {
	_, frac, found := strings.Cut(s, ".")
	if !found {
		return 0
	}
	if i := strings.IndexAny(frac, "eE"); i >= 0 {
		frac = frac[:i]
	}
	return len(frac)
}

// stripTrailingZeros normalizes "1.200" to "1.2" without changing the numeric
// value. shopspring decimals preserve the textual exponent, so this is a
// render-and-reparse of the canonical form.
func stripTrailingZeros(d decimal.Decimal) decimal.Decimal {
	if d.Exponent() >= 0 {
		return d
	}
	s := d.String()
	if !strings.Contains(s, ".") {
		return d
	}
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	normalized, err := decimal.NewFromString(s)
	if err != nil {
		return d
	}
	return normalized
}
