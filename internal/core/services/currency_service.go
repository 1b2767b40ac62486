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

// CurrencyService provides business logic for currencies. Input is validated
// before any store access.
type CurrencyService struct {
	currencyRepo portsrepo.CurrencyRepositoryFacade
	validator    *validation.CurrencyValidator
}

// NewCurrencyService creates a new CurrencyService.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade, validator *validation.CurrencyValidator) *CurrencyService {
	return &CurrencyService{currencyRepo: currencyRepo, validator: validator}
}

// CreateCurrency validates and persists a new currency.
func (s *CurrencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*domain.Currency, error) {
	validated, err := s.validator.ValidateCurrencyData(req.Name, req.Code, req.Sign)
	if err != nil {
		return nil, err
	}

	currency := domain.Currency{
		Name: validated.Name,
		Code: validated.Code,
		Sign: validated.Sign,
	}

	// Repository errors are already classified and carry the user-facing
	// message, the conflict one included.
	return s.currencyRepo.InsertCurrency(ctx, currency)
}

// GetCurrencyByCode retrieves a specific currency by its code.
func (s *CurrencyService) GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	validatedCode, err := s.validator.ValidateCurrencyCode(code)
	if err != nil {
		return nil, err
	}

	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, validatedCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency by code: %w", err)
	}
	if currency == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("currency %s not found", validatedCode))
	}
	return currency, nil
}

// ListCurrencies retrieves all available currencies.
func (s *CurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	// Return empty slice if no currencies found, not nil
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}
