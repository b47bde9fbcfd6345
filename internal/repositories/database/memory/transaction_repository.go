package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/SscSPs/fx_service/internal/apperrors"
	"github.com/SscSPs/fx_service/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_service/internal/core/ports/repositories"
	"github.com/SscSPs/fx_service/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

// TransactionRepository keeps booked transactions in memory.
type TransactionRepository struct {
	mu           sync.RWMutex
	transactions map[string]domain.CurrencyTransaction
}

// NewTransactionRepository creates an empty in-memory transaction repository.
func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{transactions: make(map[string]domain.CurrencyTransaction)}
}

var _ portsrepo.TransactionRepositoryFacade = (*TransactionRepository)(nil)

func (r *TransactionRepository) FindTransactionByID(_ context.Context, transactionID string) (*domain.CurrencyTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tx, ok := r.transactions[transactionID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	tx = tx.Clone()
	return &tx, nil
}

// ListTransactions returns transactions newest first, ordered by
// (transactionDate, createdAt, id) descending.
func (r *TransactionRepository) ListTransactions(_ context.Context, filter domain.TransactionFilter, limit int, nextToken *string) ([]domain.CurrencyTransaction, *string, error) {
	var cursor *pagination.Cursor
	if nextToken != nil && *nextToken != "" {
		c, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		cursor = &c
	}

	r.mu.RLock()
	matched := make([]domain.CurrencyTransaction, 0)
	for _, tx := range r.transactions {
		if !filter.Matches(tx) {
			continue
		}
		if cursor != nil && !cursor.After(tx.TransactionDate, tx.CreatedAt, tx.TransactionID) {
			continue
		}
		matched = append(matched, tx.Clone())
	}
	r.mu.RUnlock()

	slices.SortFunc(matched, func(a, b domain.CurrencyTransaction) int {
		if c := b.TransactionDate.Compare(a.TransactionDate); c != 0 {
			return c
		}
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(b.TransactionID, a.TransactionID)
	})

	if limit <= 0 || len(matched) <= limit {
		return matched, nil, nil
	}
	page := matched[:limit]
	last := page[len(page)-1]
	token := pagination.EncodeToken(pagination.Cursor{Date: last.TransactionDate, CreatedAt: last.CreatedAt, ID: last.TransactionID})
	return page, &token, nil
}

func (r *TransactionRepository) SaveTransaction(_ context.Context, tx domain.CurrencyTransaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.transactions[tx.TransactionID]; exists {
		return fmt.Errorf("%w: transaction %s", apperrors.ErrDuplicate, tx.TransactionID)
	}
	r.transactions[tx.TransactionID] = tx.Clone()
	return nil
}

func (r *TransactionRepository) UpdateTransaction(_ context.Context, tx domain.CurrencyTransaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.transactions[tx.TransactionID]; !exists {
		return fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, tx.TransactionID)
	}
	r.transactions[tx.TransactionID] = tx.Clone()
	return nil
}

func (r *TransactionRepository) CountTransactionsByCurrency(_ context.Context, currencyCode string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, tx := range r.transactions {
		if tx.CurrencyCode == currencyCode {
			count++
		}
	}
	return count, nil
}

func (r *TransactionRepository) SummarizeByCurrency(_ context.Context) ([]domain.CurrencyUsage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byCode := make(map[string]*domain.CurrencyUsage)
	for _, tx := range r.transactions {
		u, ok := byCode[tx.CurrencyCode]
		if !ok {
			u = &domain.CurrencyUsage{CurrencyCode: tx.CurrencyCode, TotalVolume: decimal.Zero, TotalInBase: decimal.Zero}
			byCode[tx.CurrencyCode] = u
		}
		u.TransactionCount++
		u.TotalVolume = u.TotalVolume.Add(tx.Amount)
		u.TotalInBase = u.TotalInBase.Add(tx.AmountInBase)
		if u.LastUsedAt == nil || tx.TransactionDate.After(*u.LastUsedAt) {
			last := tx.TransactionDate
			u.LastUsedAt = &last
		}
	}

	out := make([]domain.CurrencyUsage, 0, len(byCode))
	for _, u := range byCode {
		out = append(out, *u)
	}
	slices.SortFunc(out, func(a, b domain.CurrencyUsage) int { return strings.Compare(a.CurrencyCode, b.CurrencyCode) })
	return out, nil
}
