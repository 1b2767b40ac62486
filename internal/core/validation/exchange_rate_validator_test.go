package validation_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avkarpov/currency_exchange_app/internal/apperrors"
	"github.com/avkarpov/currency_exchange_app/internal/core/validation"
)

func newRateValidator() *validation.ExchangeRateValidator {
	limits := validation.DefaultLimits()
	return validation.NewExchangeRateValidator(limits, validation.NewCurrencyValidator(limits))
}

func TestValidateCurrencyCodePair(t *testing.T) {
	v := newRateValidator()

	tests := []struct {
		name       string
		input      string
		wantBase   string
		wantTarget string
		wantErr    bool
	}{
		{name: "upper case", input: "USDEUR", wantBase: "USD", wantTarget: "EUR"},
		{name: "lower case is normalized", input: "usdeur", wantBase: "USD", wantTarget: "EUR"},
		{name: "trimmed", input: " usdjpy ", wantBase: "USD", wantTarget: "JPY"},
		{name: "identical codes are structurally fine", input: "USDUSD", wantBase: "USD", wantTarget: "USD"},
		{name: "empty", input: "", wantErr: true},
		{name: "single code", input: "USD", wantErr: true},
		{name: "too long", input: "USDEURX", wantErr: true},
		{name: "separator", input: "USD-EU", wantErr: true},
		{name: "digits", input: "USD123", wantErr: true},
		{name: "inner whitespace", input: "US DEU", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, target, err := v.ValidateCurrencyCodePair(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantBase, base)
			assert.Equal(t, tt.wantTarget, target)
		})
	}
}

func TestValidateRate(t *testing.T) {
	v := newRateValidator()

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "plain decimal", input: "0.92", want: "0.92"},
		{name: "integer", input: "42", want: "42"},
		{name: "trimmed", input: " 1.5 ", want: "1.5"},
		{name: "six decimal places", input: "0.123456", want: "0.123456"},
		{name: "trailing zeros are stripped", input: "1.200000", want: "1.2"},
		{name: "integer with fraction zeros", input: "3.000", want: "3"},
		{name: "at the cap", input: "1000000", want: "1000000"},
		{name: "empty", input: "", wantErr: true},
		{name: "not a number", input: "abc", wantErr: true},
		{name: "zero", input: "0", wantErr: true},
		{name: "zero with places", input: "0.000", wantErr: true},
		{name: "negative", input: "-0.5", wantErr: true},
		{name: "above the cap", input: "1000000.01", wantErr: true},
		{name: "seven decimal places", input: "0.1234567", wantErr: true},
		{name: "seven places all zeros", input: "1.0000000", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.ValidateRate(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			require.NoError(t, err)
			want := decimal.RequireFromString(tt.want)
			assert.True(t, got.Equal(want), "got %s, want %s", got.String(), tt.want)
			// The canonical rendering has no trailing zeros.
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestValidateAmount(t *testing.T) {
	v := newRateValidator()

	amount, err := v.ValidateAmount("2.345")
	require.NoError(t, err)
	assert.Equal(t, "2.345", amount.String())

	for _, raw := range []string{"", "0", "-1", "xyz", "0.1234567"} {
		_, err := v.ValidateAmount(raw)
		assert.ErrorIs(t, err, apperrors.ErrValidation, "amount %q", raw)
	}
}

func TestValidateExchangeRateData(t *testing.T) {
	v := newRateValidator()

	validated, err := v.ValidateExchangeRateData("usd", " eur", "0.9200")
	require.NoError(t, err)
	assert.Equal(t, "USD", validated.BaseCurrencyCode)
	assert.Equal(t, "EUR", validated.TargetCurrencyCode)
	assert.Equal(t, "0.92", validated.Rate.String())

	_, err = v.ValidateExchangeRateData("usd", "eur", "0")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = v.ValidateExchangeRateData("usd", "e", "1")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
