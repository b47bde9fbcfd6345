package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/SscSPs/fx_service/internal/apperrors"
	"github.com/SscSPs/fx_service/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_service/internal/core/ports/repositories"
)

// ExchangeRateRepository keeps exchange rates in memory, indexed by ID.
type ExchangeRateRepository struct {
	mu    sync.RWMutex
	rates map[string]domain.ExchangeRate
}

// NewExchangeRateRepository creates an empty in-memory exchange rate repository.
func NewExchangeRateRepository() *ExchangeRateRepository {
	return &ExchangeRateRepository{rates: make(map[string]domain.ExchangeRate)}
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*ExchangeRateRepository)(nil)

func (r *ExchangeRateRepository) FindExchangeRateByID(_ context.Context, rateID string) (*domain.ExchangeRate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rate, ok := r.rates[rateID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	rate = rate.Clone()
	return &rate, nil
}

func (r *ExchangeRateRepository) FindLatestRate(_ context.Context, lookup domain.RateLookup) (*domain.ExchangeRate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var latest *domain.ExchangeRate
	for _, rate := range r.rates {
		if !lookup.Matches(rate) {
			continue
		}
		if latest == nil || rate.IsNewerThan(*latest) {
			c := rate.Clone()
			latest = &c
		}
	}
	if latest == nil {
		return nil, apperrors.ErrNotFound
	}
	return latest, nil
}

func (r *ExchangeRateRepository) ListActiveRates(_ context.Context, rateType domain.RateType, asOf time.Time) ([]domain.ExchangeRate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []domain.ExchangeRate{}
	for _, rate := range r.rates {
		if rate.IsActive && rate.RateType == rateType && !rate.RateDate.After(asOf) {
			out = append(out, rate.Clone())
		}
	}
	sortOldestFirst(out)
	return out, nil
}

func (r *ExchangeRateRepository) ListRateHistory(_ context.Context, fromCurrencyCode, toCurrencyCode string, rateType domain.RateType, start, end time.Time) ([]domain.ExchangeRate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []domain.ExchangeRate{}
	for _, rate := range r.rates {
		if rate.FromCurrencyCode != fromCurrencyCode || rate.ToCurrencyCode != toCurrencyCode || rate.RateType != rateType {
			continue
		}
		if rate.RateDate.Before(start) || rate.RateDate.After(end) {
			continue
		}
		out = append(out, rate.Clone())
	}
	sortOldestFirst(out)
	return out, nil
}

func (r *ExchangeRateRepository) SaveExchangeRates(_ context.Context, rates ...domain.ExchangeRate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rate := range rates {
		if _, exists := r.rates[rate.ExchangeRateID]; exists {
			return fmt.Errorf("%w: exchange rate %s", apperrors.ErrDuplicate, rate.ExchangeRateID)
		}
	}
	for _, rate := range rates {
		r.rates[rate.ExchangeRateID] = rate.Clone()
	}
	return nil
}

func (r *ExchangeRateRepository) UpdateExchangeRate(_ context.Context, rate domain.ExchangeRate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.rates[rate.ExchangeRateID]; !exists {
		return fmt.Errorf("%w: exchange rate %s", apperrors.ErrNotFound, rate.ExchangeRateID)
	}
	r.rates[rate.ExchangeRateID] = rate.Clone()
	return nil
}

func sortOldestFirst(rates []domain.ExchangeRate) {
	slices.SortFunc(rates, func(a, b domain.ExchangeRate) int {
		switch {
		case a.IsNewerThan(b):
			return 1
		case b.IsNewerThan(a):
			return -1
		default:
			return 0
		}
	})
}

// deleteRatesForCurrency removes every rate quoting code on either side.
func (r *ExchangeRateRepository) deleteRatesForCurrency(code string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, rate := range r.rates {
		if rate.FromCurrencyCode == code || rate.ToCurrencyCode == code {
			delete(r.rates, id)
			removed++
		}
	}
	return removed
}
