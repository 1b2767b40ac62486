package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/avkarpov/currency_exchange_app/internal/apperrors"
	"github.com/avkarpov/currency_exchange_app/internal/core/domain"
	portsrepo "github.com/avkarpov/currency_exchange_app/internal/core/ports/repositories"
	"github.com/avkarpov/currency_exchange_app/internal/core/validation"
)

// rateDivisionPrecision is the number of fractional digits kept when deriving
// reciprocal and cross rates. 16 digits is enough for the final 2-decimal
// half-up rounding to come out correct.
const rateDivisionPrecision = 16

// convertedAmountPlaces is the fixed scale of a converted amount.
const convertedAmountPlaces = 2

// ExchangeService resolves rates and computes conversions. Resolution order is
// strict: direct rate, then inverse reciprocal, then cross-rate through the
// reference currency. The first satisfied rule wins.
type ExchangeService struct {
	currencyRepo      portsrepo.CurrencyReader
	rateRepo          portsrepo.ExchangeRateReader
	currencyValidator *validation.CurrencyValidator
	rateValidator     *validation.ExchangeRateValidator
	referenceCode     string
}

// NewExchangeService creates a new ExchangeService. referenceCode is the hub
// currency for cross-rate derivation, "USD" by convention.
func NewExchangeService(
	currencyRepo portsrepo.CurrencyReader,
	rateRepo portsrepo.ExchangeRateReader,
	currencyValidator *validation.CurrencyValidator,
	rateValidator *validation.ExchangeRateValidator,
	referenceCode string,
) *ExchangeService {
	return &ExchangeService{
		currencyRepo:      currencyRepo,
		rateRepo:          rateRepo,
		currencyValidator: currencyValidator,
		rateValidator:     rateValidator,
		referenceCode:     referenceCode,
	}
}

// CalculateExchange converts amount from one currency to another. Rate and
// amount stay exact in the result; only the converted amount is rounded, to 2
// decimal places half-up.
func (s *ExchangeService) CalculateExchange(ctx context.Context, fromCode, toCode, amount string) (*domain.Conversion, error) {
	validatedFrom, err := s.currencyValidator.ValidateCurrencyCode(fromCode)
	if err != nil {
		return nil, err
	}
	validatedTo, err := s.currencyValidator.ValidateCurrencyCode(toCode)
	if err != nil {
		return nil, err
	}
	validatedAmount, err := s.rateValidator.ValidateAmount(amount)
	if err != nil {
		return nil, err
	}

	fromCurrency, err := s.lookupCurrency(ctx, validatedFrom)
	if err != nil {
		return nil, err
	}
	toCurrency, err := s.lookupCurrency(ctx, validatedTo)
	if err != nil {
		return nil, err
	}

	rate, err := s.FindBestRate(ctx, validatedFrom, validatedTo)
	if err != nil {
		return nil, err
	}

	// Round half-up; amounts are strictly positive so Round's half-away-from-
	// zero tie-break is exactly half-up here.
	converted := validatedAmount.Mul(rate).Round(convertedAmountPlaces)

	return &domain.Conversion{
		BaseCurrency:    *fromCurrency,
		TargetCurrency:  *toCurrency,
		Rate:            rate,
		Amount:          validatedAmount,
		ConvertedAmount: converted,
	}, nil
}

// FindBestRate resolves a rate for a normalized code pair:
//
//  1. identical codes are rejected outright, whatever the store holds;
//  2. a stored (from, to) rate is returned verbatim;
//  3. a stored (to, from) rate is returned as its exact reciprocal;
//  4. with both (REF, from) and (REF, to) stored, the cross rate is
//     rate(REF,to) / rate(REF,from) — skipped when either side is REF itself.
//
// No multi-hop search beyond the single reference hop is attempted.
func (s *ExchangeService) FindBestRate(ctx context.Context, fromCode, toCode string) (decimal.Decimal, error) {
	if fromCode == toCode {
		return decimal.Decimal{}, apperrors.NewSameCurrencyError(
			fmt.Sprintf("cannot convert currency %s to itself", fromCode))
	}

	direct, err := s.rateRepo.FindExchangeRate(ctx, fromCode, toCode)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("failed to look up direct rate: %w", err)
	}
	if direct != nil {
		return direct.Rate, nil
	}

	inverse, err := s.rateRepo.FindExchangeRate(ctx, toCode, fromCode)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("failed to look up inverse rate: %w", err)
	}
	if inverse != nil {
		return decimal.NewFromInt(1).DivRound(inverse.Rate, rateDivisionPrecision), nil
	}

	if fromCode != s.referenceCode && toCode != s.referenceCode {
		refFrom, err := s.rateRepo.FindExchangeRate(ctx, s.referenceCode, fromCode)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("failed to look up reference rate: %w", err)
		}
		refTo, err := s.rateRepo.FindExchangeRate(ctx, s.referenceCode, toCode)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("failed to look up reference rate: %w", err)
		}
		if refFrom != nil && refTo != nil {
			// A stored (REF, X) rate means "1 REF = rate X", so
			// X -> Y = rate(REF,Y) / rate(REF,X).
			return refTo.Rate.DivRound(refFrom.Rate, rateDivisionPrecision), nil
		}
	}

	return decimal.Decimal{}, apperrors.NewNotFoundError(
		fmt.Sprintf("exchange rate for currency pair %s%s not found", fromCode, toCode))
}

// lookupCurrency fetches a currency that is expected to exist at this point;
// a miss means the store went inconsistent underneath us.
func (s *ExchangeService) lookupCurrency(ctx context.Context, code string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to look up currency %s: %w", code, err)
	}
	if currency == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("currency %s not found", code))
	}
	return currency, nil
}
