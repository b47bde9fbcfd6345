package services

import (
	"context"

	"github.com/SscSPs/fx_service/internal/core/domain"
	"github.com/SscSPs/fx_service/internal/dto"
)

// TransactionReaderSvc defines read operations for booked transactions
type TransactionReaderSvc interface {
	GetTransaction(ctx context.Context, transactionID string) (*domain.CurrencyTransaction, error)
	ListTransactions(ctx context.Context, filter domain.TransactionFilter, limit int, nextToken *string) ([]domain.CurrencyTransaction, *string, error)
}

// TransactionWriterSvc defines write operations for booked transactions
type TransactionWriterSvc interface {
	// RecordTransaction books an amount, converting it to the base currency.
	RecordTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.CurrencyTransaction, error)

	// UpdateTransaction changes non-identity fields of a booked transaction.
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, userID string) (*domain.CurrencyTransaction, error)
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
