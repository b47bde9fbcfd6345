package services

import (
	portsrepo "github.com/SscSPs/fx_service/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fx_service/internal/core/ports/services"
	"github.com/SscSPs/fx_service/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The registry reads usage through the transaction repository so that it
	// does not depend on the recorder, which itself depends on the engine.
	currencySvc := NewCurrencyService(repos.CurrencyRepo, repos.TransactionRepo)
	container.Currency = currencySvc

	rateOpts := []ExchangeRateServiceOption{WithMaxCrossLegs(cfg.CrossRateMaxLegs)}
	if cfg.RateConsistencyTolerance.IsPositive() {
		rateOpts = append(rateOpts, WithConsistencyTolerance(cfg.RateConsistencyTolerance))
	}
	container.ExchangeRate = NewExchangeRateService(repos.ExchangeRateRepo, currencySvc, rateOpts...)

	container.Conversion = NewConversionService(currencySvc, container.ExchangeRate)
	container.BulkConversion = NewBulkConversionService(container.Conversion, cfg.BulkConversionWorkers)
	container.Transaction = NewTransactionService(repos.TransactionRepo, currencySvc, container.Conversion)
	container.Reporting = NewReportingService(repos.TransactionRepo, repos.ExchangeRateRepo)

	return container
}
