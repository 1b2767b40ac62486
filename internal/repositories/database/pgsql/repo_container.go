package pgsql

import (
	portsrepo "github.com/avkarpov/currency_exchange_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires the concrete pgx repositories for the service
// container.
func NewRepositoryProvider(pool PgxPoolIface) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CurrencyRepo:     NewPgxCurrencyRepository(pool),
		ExchangeRateRepo: NewPgxExchangeRateRepository(pool),
	}
}
