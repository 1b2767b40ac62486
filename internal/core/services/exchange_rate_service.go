package services

import (
	"context"
	"fmt"

	"github.com/avkarpov/currency_exchange_app/internal/apperrors"
	"github.com/avkarpov/currency_exchange_app/internal/core/domain"
	portsrepo "github.com/avkarpov/currency_exchange_app/internal/core/ports/repositories"
	"github.com/avkarpov/currency_exchange_app/internal/core/validation"
	"github.com/avkarpov/currency_exchange_app/internal/dto"
)

// ExchangeRateService provides business logic for stored exchange rates.
type ExchangeRateService struct {
	rateRepo      portsrepo.ExchangeRateRepositoryFacade
	rateValidator *validation.ExchangeRateValidator
}

// NewExchangeRateService creates a new ExchangeRateService.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateRepositoryFacade, rateValidator *validation.ExchangeRateValidator) *ExchangeRateService {
	return &ExchangeRateService{rateRepo: rateRepo, rateValidator: rateValidator}
}

// ListExchangeRates retrieves all stored rates.
func (s *ExchangeRateService) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	rates, err := s.rateRepo.ListExchangeRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list exchange rates: %w", err)
	}
	if rates == nil {
		return []domain.ExchangeRate{}, nil
	}
	return rates, nil
}

// GetExchangeRate retrieves the rate stored for a 6-letter code pair. The
// lookup is strictly literal: "USDUSD" returns whatever is stored for that
// ordered pair, the same-currency rule belongs to the conversion path only.
func (s *ExchangeRateService) GetExchangeRate(ctx context.Context, codePair string) (*domain.ExchangeRate, error) {
	baseCode, targetCode, err := s.rateValidator.ValidateCurrencyCodePair(codePair)
	if err != nil {
		return nil, err
	}

	rate, err := s.rateRepo.FindExchangeRate(ctx, baseCode, targetCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get exchange rate: %w", err)
	}
	if rate == nil {
		return nil, apperrors.NewNotFoundError(
			fmt.Sprintf("exchange rate for currency pair %s%s not found", baseCode, targetCode))
	}
	return rate, nil
}

// CreateExchangeRate validates and persists a new rate for an ordered pair.
// The repository rejects unknown currencies and duplicate pairs.
func (s *ExchangeRateService) CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest) (*domain.ExchangeRate, error) {
	validated, err := s.rateValidator.ValidateExchangeRateData(req.BaseCurrencyCode, req.TargetCurrencyCode, req.Rate)
	if err != nil {
		return nil, err
	}

	// Repository errors are already classified: unknown currencies surface as
	// not-found, duplicate pairs as conflicts.
	return s.rateRepo.InsertExchangeRate(ctx, validated.BaseCurrencyCode, validated.TargetCurrencyCode, validated.Rate)
}

// UpdateExchangeRate overwrites the rate for an existing code pair. The pair
// itself is immutable; only the rate changes.
func (s *ExchangeRateService) UpdateExchangeRate(ctx context.Context, codePair, rate string) (*domain.ExchangeRate, error) {
	baseCode, targetCode, err := s.rateValidator.ValidateCurrencyCodePair(codePair)
	if err != nil {
		return nil, err
	}
	validatedRate, err := s.rateValidator.ValidateRate(rate)
	if err != nil {
		return nil, err
	}

	updated, err := s.rateRepo.UpdateExchangeRate(ctx, baseCode, targetCode, validatedRate)
	if err != nil {
		return nil, fmt.Errorf("failed to update exchange rate: %w", err)
	}
	if updated == nil {
		return nil, apperrors.NewNotFoundError(
			fmt.Sprintf("exchange rate for currency pair %s%s not found", baseCode, targetCode))
	}
	return updated, nil
}
