package repositories

import (
	"context"

	"github.com/SscSPs/fx_service/internal/core/domain"
)

// CurrencyReader defines read operations for currency data
type CurrencyReader interface {
	// FindCurrencyByCode retrieves a specific currency by its code.
	FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// FindBaseCurrency retrieves the currency flagged as base, or apperrors.ErrNotFound.
	FindBaseCurrency(ctx context.Context) (*domain.Currency, error)

	// ListCurrencies retrieves all currencies ordered by code.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyWriter defines write operations for currency data
type CurrencyWriter interface {
	// SaveCurrency persists a new currency. It returns apperrors.ErrDuplicate when the
	// code is taken and apperrors.ErrConflict when a second base currency would be stored.
	SaveCurrency(ctx context.Context, currency domain.Currency) error

	// UpdateCurrency replaces a stored currency identified by its code.
	UpdateCurrency(ctx context.Context, currency domain.Currency) error

	// DeleteCurrency physically removes a currency.
	DeleteCurrency(ctx context.Context, currencyCode string) error
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces
// This is a facade for clients that need access to all operations
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}
