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
)

// CurrencyRepository keeps currencies in a map guarded by a RWMutex.
// Values are copied on the way in and out, so readers never observe a partial write.
type CurrencyRepository struct {
	mu         sync.RWMutex
	currencies map[string]domain.Currency
	rates      *ExchangeRateRepository // hard deletes cascade here when set
}

// NewCurrencyRepository creates an empty in-memory currency repository.
func NewCurrencyRepository() *CurrencyRepository {
	return &CurrencyRepository{currencies: make(map[string]domain.Currency)}
}

var _ portsrepo.CurrencyRepositoryFacade = (*CurrencyRepository)(nil)

// CascadeTo makes a hard delete also remove the currency's rates from rates,
// the way the foreign keys of the SQL schema do.
func (r *CurrencyRepository) CascadeTo(rates *ExchangeRateRepository) *CurrencyRepository {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rates = rates
	return r
}

func (r *CurrencyRepository) FindCurrencyByCode(_ context.Context, currencyCode string) (*domain.Currency, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.currencies[strings.ToUpper(currencyCode)]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	c = c.Clone()
	return &c, nil
}

func (r *CurrencyRepository) FindBaseCurrency(_ context.Context) (*domain.Currency, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if code, ok := r.baseCode(); ok {
		c := r.currencies[code].Clone()
		return &c, nil
	}
	return nil, apperrors.ErrNotFound
}

func (r *CurrencyRepository) ListCurrencies(_ context.Context) ([]domain.Currency, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Currency, 0, len(r.currencies))
	for _, c := range r.currencies {
		out = append(out, c.Clone())
	}
	slices.SortFunc(out, func(a, b domain.Currency) int { return strings.Compare(a.CurrencyCode, b.CurrencyCode) })
	return out, nil
}

func (r *CurrencyRepository) SaveCurrency(_ context.Context, currency domain.Currency) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.currencies[currency.CurrencyCode]; exists {
		return fmt.Errorf("%w: currency %s", apperrors.ErrDuplicate, currency.CurrencyCode)
	}
	if currency.IsBaseCurrency {
		if code, ok := r.baseCode(); ok {
			return fmt.Errorf("%w: base currency already set to %s", apperrors.ErrConflict, code)
		}
	}
	r.currencies[currency.CurrencyCode] = currency.Clone()
	return nil
}

func (r *CurrencyRepository) UpdateCurrency(_ context.Context, currency domain.Currency) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.currencies[currency.CurrencyCode]; !exists {
		return fmt.Errorf("%w: currency %s", apperrors.ErrNotFound, currency.CurrencyCode)
	}
	if currency.IsBaseCurrency {
		if code, ok := r.baseCode(); ok && code != currency.CurrencyCode {
			return fmt.Errorf("%w: base currency already set to %s", apperrors.ErrConflict, code)
		}
	}
	r.currencies[currency.CurrencyCode] = currency.Clone()
	return nil
}

func (r *CurrencyRepository) DeleteCurrency(_ context.Context, currencyCode string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	code := strings.ToUpper(currencyCode)
	if _, exists := r.currencies[code]; !exists {
		return fmt.Errorf("%w: currency %s", apperrors.ErrNotFound, code)
	}
	delete(r.currencies, code)
	if r.rates != nil {
		r.rates.deleteRatesForCurrency(code)
	}
	return nil
}

// baseCode must be called with the lock held.
func (r *CurrencyRepository) baseCode() (string, bool) {
	for code, c := range r.currencies {
		if c.IsBaseCurrency {
			return code, true
		}
	}
	return "", false
}
