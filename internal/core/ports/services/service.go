package services

// ServiceContainer bundles the service facades handed to the HTTP handlers.
type ServiceContainer struct {
	Currency     CurrencySvcFacade
	ExchangeRate ExchangeRateSvcFacade
	Exchange     ExchangeSvcFacade
}
