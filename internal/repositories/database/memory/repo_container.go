package memory

import (
	portsrepo "github.com/SscSPs/fx_service/internal/core/ports/repositories"
)

// NewRepositoryProvider wires the in-memory repositories used when no database is configured.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	rateRepo := NewExchangeRateRepository()
	return portsrepo.RepositoryProvider{
		CurrencyRepo:     NewCurrencyRepository().CascadeTo(rateRepo),
		ExchangeRateRepo: rateRepo,
		TransactionRepo:  NewTransactionRepository(),
	}
}
