package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/fx_service/internal/core/domain"
)

// ExchangeRateReader defines read operations for exchange rate data
type ExchangeRateReader interface {
	// FindExchangeRateByID retrieves an exchange rate by its ID.
	FindExchangeRateByID(ctx context.Context, rateID string) (*domain.ExchangeRate, error)

	// FindLatestRate retrieves the most recent active rate matching the lookup,
	// or apperrors.ErrNotFound.
	FindLatestRate(ctx context.Context, lookup domain.RateLookup) (*domain.ExchangeRate, error)

	// ListActiveRates retrieves every active rate of the given type dated on or before asOf.
	ListActiveRates(ctx context.Context, rateType domain.RateType, asOf time.Time) ([]domain.ExchangeRate, error)

	// ListRateHistory retrieves the rates of a pair dated within [start, end], oldest first.
	ListRateHistory(ctx context.Context, fromCurrencyCode, toCurrencyCode string, rateType domain.RateType, start, end time.Time) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriter defines write operations for exchange rate data
type ExchangeRateWriter interface {
	// SaveExchangeRates persists new exchange rates atomically.
	SaveExchangeRates(ctx context.Context, rates ...domain.ExchangeRate) error

	// UpdateExchangeRate replaces a stored exchange rate identified by its ID.
	UpdateExchangeRate(ctx context.Context, rate domain.ExchangeRate) error
}

// ExchangeRateRepositoryFacade combines all exchange rate-related repository interfaces
// This is a facade for clients that need access to all operations
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}
