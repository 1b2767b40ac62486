package services

import (
	portsrepo "github.com/avkarpov/currency_exchange_app/internal/core/ports/repositories"
	portssvc "github.com/avkarpov/currency_exchange_app/internal/core/ports/services"
	"github.com/avkarpov/currency_exchange_app/internal/core/validation"
)

// NewServiceContainer wires validators and services on top of the repository
// provider. limits and referenceCode come from configuration.
func NewServiceContainer(repos portsrepo.RepositoryProvider, limits validation.Limits, referenceCode string) *portssvc.ServiceContainer {
	currencyValidator := validation.NewCurrencyValidator(limits)
	rateValidator := validation.NewExchangeRateValidator(limits, currencyValidator)

	return &portssvc.ServiceContainer{
		Currency:     NewCurrencyService(repos.CurrencyRepo, currencyValidator),
		ExchangeRate: NewExchangeRateService(repos.ExchangeRateRepo, rateValidator),
		Exchange: NewExchangeService(
			repos.CurrencyRepo,
			repos.ExchangeRateRepo,
			currencyValidator,
			rateValidator,
			referenceCode,
		),
	}
}
