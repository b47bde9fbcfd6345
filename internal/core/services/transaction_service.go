package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/fx_service/internal/apperrors"
	"github.com/SscSPs/fx_service/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_service/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fx_service/internal/core/ports/services"
	"github.com/SscSPs/fx_service/internal/dto"
	"github.com/SscSPs/fx_service/internal/utils"
	"github.com/SscSPs/fx_service/internal/utils/pagination"
)

const (
	defaultTransactionPageSize = 20
	maxTransactionPageSize     = 100
)

// TransactionService books amounts in any currency together with their base currency value.
type TransactionService struct {
	BaseService
	txRepo          portsrepo.TransactionRepositoryFacade
	currencyService portssvc.CurrencyReaderSvc
	converter       portssvc.ConversionSvc
	sanitizer       *utils.TextSanitizer
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(txRepo portsrepo.TransactionRepositoryFacade, currencyService portssvc.CurrencyReaderSvc, converter portssvc.ConversionSvc, opts ...ServiceOption) *TransactionService {
	svc := &TransactionService{
		BaseService:     newBaseService(),
		txRepo:          txRepo,
		currencyService: currencyService,
		converter:       converter,
		sanitizer:       utils.NewTextSanitizer(),
	}
	svc.apply(opts)
	return svc
}

var _ portssvc.TransactionSvcFacade = (*TransactionService)(nil)

// RecordTransaction books a transaction. A supplied exchange rate is used verbatim,
// otherwise the rate to the base currency is resolved as of the transaction date.
func (s *TransactionService) RecordTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.CurrencyTransaction, error) {
	now := s.Now()
	if !req.Amount.IsPositive() {
		return nil, apperrors.NewValidationError("transaction amount must be positive")
	}
	if req.TransactionDate.IsZero() {
		return nil, apperrors.NewValidationError("transaction date is required")
	}
	if req.TransactionDate.After(now) {
		return nil, apperrors.NewValidationError("transaction date cannot be in the future")
	}

	currency, err := s.currencyService.GetCurrencyByCode(ctx, req.CurrencyCode)
	if err != nil {
		return nil, err
	}
	if currency.ExceedsPrecision(req.Amount) {
		return nil, apperrors.NewValidationError("amount %s exceeds decimal precision of %s (%d places)",
			req.Amount.String(), currency.CurrencyCode, currency.DecimalPlaces)
	}
	base, err := s.baseCurrency(ctx)
	if err != nil {
		return nil, err
	}

	tx := domain.CurrencyTransaction{
		TransactionID:   s.NewID(),
		Description:     s.sanitizer.Sanitize(req.Description),
		Amount:          req.Amount,
		CurrencyCode:    currency.CurrencyCode,
		BaseCurrency:    base.CurrencyCode,
		TransactionDate: req.TransactionDate,
		Category:        s.sanitizer.Sanitize(req.Category),
		Department:      s.sanitizer.Sanitize(req.Department),
		AuditTrail: []domain.AuditEntry{
			{Action: domain.AuditCreated, Actor: userID, Timestamp: now},
		},
		AuditFields: domain.NewAuditFields(userID, now),
	}
	if tx.Description == "" {
		return nil, apperrors.NewValidationError("transaction description is required")
	}

	if req.ExchangeRate != nil {
		if !req.ExchangeRate.IsPositive() {
			return nil, apperrors.NewValidationError("exchange rate must be positive")
		}
		tx.ExchangeRate = *req.ExchangeRate
		tx.RateMethod = domain.MethodManual
		tx.AmountInBase = base.RoundAmount(req.Amount.Mul(*req.ExchangeRate))
	} else {
		conv, err := s.converter.Convert(ctx, domain.ConversionRequest{
			Amount:   req.Amount,
			From:     currency.CurrencyCode,
			To:       base.CurrencyCode,
			AsOf:     req.TransactionDate,
			RateType: domain.RateTypeSpot,
		})
		if err != nil {
			return nil, err
		}
		tx.ExchangeRate = conv.Rate
		tx.RateMethod = conv.Method
		tx.ExchangeRateID = conv.ExchangeRateID
		tx.AmountInBase = conv.ConvertedAmount
	}

	if err := s.txRepo.SaveTransaction(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("transaction_id", tx.TransactionID))
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction recorded",
		slog.String("transaction_id", tx.TransactionID),
		slog.String("currency", tx.CurrencyCode),
		slog.String("rate_method", string(tx.RateMethod)))
	return &tx, nil
}

// UpdateTransaction corrects a booked transaction. The currency is immutable;
// a corrected rate recomputes the base amount.
func (s *TransactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, userID string) (*domain.CurrencyTransaction, error) {
	current, err := s.GetTransaction(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if req.CurrencyCode != nil && normalizeCode(*req.CurrencyCode) != current.CurrencyCode {
		return nil, apperrors.NewValidationError("transaction currency cannot be changed")
	}

	updated := current.Clone()
	var changes []string
	if req.Description != nil {
		desc := s.sanitizer.Sanitize(*req.Description)
		if desc == "" {
			return nil, apperrors.NewValidationError("transaction description is required")
		}
		if desc != updated.Description {
			updated.Description = desc
			changes = append(changes, "description")
		}
	}
	if req.Category != nil {
		if c := s.sanitizer.Sanitize(*req.Category); c != updated.Category {
			updated.Category = c
			changes = append(changes, "category")
		}
	}
	if req.Department != nil {
		if d := s.sanitizer.Sanitize(*req.Department); d != updated.Department {
			updated.Department = d
			changes = append(changes, "department")
		}
	}
	if req.ExchangeRate != nil {
		if !req.ExchangeRate.IsPositive() {
			return nil, apperrors.NewValidationError("exchange rate must be positive")
		}
		if !req.ExchangeRate.Equal(updated.ExchangeRate) {
			base, err := s.currencyService.GetCurrencyByCode(ctx, updated.BaseCurrency)
			if err != nil {
				return nil, err
			}
			updated.ExchangeRate = *req.ExchangeRate
			updated.RateMethod = domain.MethodManual
			updated.ExchangeRateID = nil
			updated.AmountInBase = base.RoundAmount(updated.Amount.Mul(*req.ExchangeRate))
			changes = append(changes, "exchangeRate", "amountInBase")
		}
	}

	if len(changes) == 0 {
		return current, nil
	}

	now := s.Now()
	updated.AuditTrail = append(updated.AuditTrail, domain.AuditEntry{
		Action:    domain.AuditUpdated,
		Actor:     userID,
		Timestamp: now,
		Changes:   changes,
	})
	updated.Touch(userID, now)

	if err := s.txRepo.UpdateTransaction(ctx, updated); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction updated",
		slog.String("transaction_id", transactionID),
		slog.Any("changes", changes))
	return &updated, nil
}

// GetTransaction retrieves a transaction by its ID.
func (s *TransactionService) GetTransaction(ctx context.Context, transactionID string) (*domain.CurrencyTransaction, error) {
	tx, err := s.txRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("transaction %s not found", transactionID)
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return tx, nil
}

// ListTransactions retrieves a page of transactions, newest first.
func (s *TransactionService) ListTransactions(ctx context.Context, filter domain.TransactionFilter, limit int, nextToken *string) ([]domain.CurrencyTransaction, *string, error) {
	if limit <= 0 {
		limit = defaultTransactionPageSize
	}
	if limit > maxTransactionPageSize {
		limit = maxTransactionPageSize
	}
	if nextToken != nil && *nextToken != "" {
		if _, err := pagination.DecodeToken(*nextToken); err != nil {
			return nil, nil, apperrors.NewValidationError("invalid nextToken: %v", err)
		}
	}
	filter.CurrencyCode = normalizeCode(filter.CurrencyCode)

	txs, next, err := s.txRepo.ListTransactions(ctx, filter, limit, nextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txs, next, nil
}

func (s *TransactionService) baseCurrency(ctx context.Context) (*domain.Currency, error) {
	base, err := s.currencyService.GetBaseCurrency(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationError("no base currency configured")
		}
		return nil, err
	}
	return base, nil
}
