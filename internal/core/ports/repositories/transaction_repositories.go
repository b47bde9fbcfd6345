package repositories

import (
	"context"

	"github.com/SscSPs/fx_service/internal/core/domain"
)

// TransactionReader defines read operations for booked currency transactions
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction by its ID.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.CurrencyTransaction, error)

	// ListTransactions retrieves a page of transactions, newest first, using token-based pagination.
	// It returns the transactions, a token for the next page, and an error.
	ListTransactions(ctx context.Context, filter domain.TransactionFilter, limit int, nextToken *string) ([]domain.CurrencyTransaction, *string, error)
}

// TransactionWriter defines write operations for booked currency transactions
type TransactionWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, tx domain.CurrencyTransaction) error

	// UpdateTransaction replaces a stored transaction identified by its ID.
	UpdateTransaction(ctx context.Context, tx domain.CurrencyTransaction) error
}

// TransactionUsageReader exposes aggregate usage of currencies by transactions.
type TransactionUsageReader interface {
	// CountTransactionsByCurrency counts the transactions booked in a currency.
	CountTransactionsByCurrency(ctx context.Context, currencyCode string) (int64, error)

	// SummarizeByCurrency aggregates transactions per source currency, ordered by code.
	SummarizeByCurrency(ctx context.Context) ([]domain.CurrencyUsage, error)
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
	TransactionUsageReader
}
