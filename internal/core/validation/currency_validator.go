package validation

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/avkarpov/currency_exchange_app/internal/apperrors"
)

// CurrencyValidator checks and normalizes raw currency input. All methods are
// pure: each input string maps to either a normalized value or one specific
// validation error.
type CurrencyValidator struct {
	limits Limits
}

// NewCurrencyValidator creates a CurrencyValidator enforcing the given limits.
func NewCurrencyValidator(limits Limits) *CurrencyValidator {
	return &CurrencyValidator{limits: limits}
}

// ValidatedCurrency is the result of validating a full currency payload.
type ValidatedCurrency struct {
	Name string
	Code string
	Sign string
}

// ValidateCurrencyCode trims and upper-cases a currency code and checks it is
// exactly CodeLength A-Z letters.
func (v *CurrencyValidator) ValidateCurrencyCode(raw string) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(raw))

	if code == "" {
		return "", apperrors.NewValidationError("currency code cannot be empty")
	}
	if len(code) != v.limits.CodeLength || !isUpperASCII(code) {
		return "", apperrors.NewValidationError(
			fmt.Sprintf("currency code must be %d letters (A-Z only)", v.limits.CodeLength))
	}
	return code, nil
}

// ValidateCurrencyName trims a currency name and checks it contains only
// letters and spaces within the configured length bounds.
func (v *CurrencyValidator) ValidateCurrencyName(raw string) (string, error) {
	name := strings.TrimSpace(raw)

	if name == "" {
		return "", apperrors.NewValidationError("currency name cannot be empty")
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsSpace(r) {
			return "", apperrors.NewValidationError("currency name must contain letters and spaces only")
		}
	}
	if n := utf8.RuneCountInString(name); n < v.limits.NameMinLength {
		return "", apperrors.NewValidationError(
			fmt.Sprintf("currency name must be at least %d letters long", v.limits.NameMinLength))
	} else if n > v.limits.NameMaxLength {
		return "", apperrors.NewValidationError(
			fmt.Sprintf("currency name cannot exceed %d letters", v.limits.NameMaxLength))
	}
	return name, nil
}

// ValidateCurrencySign trims a currency sign and checks its length.
func (v *CurrencyValidator) ValidateCurrencySign(raw string) (string, error) {
	sign := strings.TrimSpace(raw)

	if sign == "" {
		return "", apperrors.NewValidationError("currency sign cannot be empty")
	}
	if utf8.RuneCountInString(sign) > v.limits.SignMaxLength {
		return "", apperrors.NewValidationError(
			fmt.Sprintf("currency sign cannot exceed %d characters", v.limits.SignMaxLength))
	}
	return sign, nil
}

// ValidateCurrencyData validates a full create-currency payload at once.
func (v *CurrencyValidator) ValidateCurrencyData(name, code, sign string) (*ValidatedCurrency, error) {
	validatedName, err := v.ValidateCurrencyName(name)
	if err != nil {
		return nil, err
	}
	validatedCode, err := v.ValidateCurrencyCode(code)
	if err != nil {
		return nil, err
	}
	validatedSign, err := v.ValidateCurrencySign(sign)
	if err != nil {
		return nil, err
	}
	return &ValidatedCurrency{Name: validatedName, Code: validatedCode, Sign: validatedSign}, nil
}

func isUpperASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
