package services

import (
	"context"
	"time"

	"github.com/SscSPs/fx_service/internal/core/domain"
	"github.com/SscSPs/fx_service/internal/dto"
)

// CurrencyReaderSvc defines read operations for currency data
type CurrencyReaderSvc interface {
	// GetCurrencyByCode retrieves a specific currency by its code.
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// GetBaseCurrency retrieves the single base currency.
	GetBaseCurrency(ctx context.Context) (*domain.Currency, error)

	// ListCurrencies retrieves currencies matching the filter.
	ListCurrencies(ctx context.Context, filter domain.CurrencyFilter) ([]domain.CurrencyWithUsage, error)
}

// CurrencyWriterSvc defines write operations for currency data
type CurrencyWriterSvc interface {
	// CreateCurrency registers a new currency.
	CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*domain.Currency, error)

	// UpdateCurrency applies a partial update to a currency.
	UpdateCurrency(ctx context.Context, currencyCode string, req dto.UpdateCurrencyRequest, userID string) (*domain.Currency, error)

	// DeleteCurrency deactivates a currency, or removes it when hardDelete is set.
	DeleteCurrency(ctx context.Context, currencyCode string, hardDelete bool, userID string) error
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
}

// ExchangeRateReaderSvc defines read operations for exchange rate data
type ExchangeRateReaderSvc interface {
	// GetExchangeRate returns the most recent active, unexpired direct rate as of asOf.
	GetExchangeRate(ctx context.Context, fromCode, toCode string, asOf time.Time, rateType domain.RateType) (*domain.ExchangeRate, error)

	// GetLatestRate returns the most recent active direct rate as of asOf, even if expired.
	GetLatestRate(ctx context.Context, fromCode, toCode string, asOf time.Time, rateType domain.RateType) (*domain.ExchangeRate, error)

	// GetCrossRate composes a rate through one or more bridge currencies.
	GetCrossRate(ctx context.Context, fromCode, toCode string, asOf time.Time, rateType domain.RateType) (*domain.RateQuote, error)
}

// ExchangeRateWriterSvc defines write operations for exchange rate data
type ExchangeRateWriterSvc interface {
	// CreateExchangeRate persists a new exchange rate and optionally its reciprocal.
	CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, creatorUserID string) (*domain.AddRateResult, error)

	// UpdateExchangeRate applies a partial update to an unexpired rate.
	UpdateExchangeRate(ctx context.Context, rateID string, req dto.UpdateExchangeRateRequest, userID string) (*domain.ExchangeRate, error)

	// BulkUpdateExchangeRates stores each entry independently and reports failures per entry.
	BulkUpdateExchangeRates(ctx context.Context, entries []domain.RateEntry, userID string) (*domain.BulkRateUpdateResult, error)
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateWriterSvc
}
