package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/fx_service/internal/apperrors"
	"github.com/SscSPs/fx_service/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_service/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fx_service/internal/core/ports/services"
	"github.com/SscSPs/fx_service/internal/dto"
	"github.com/SscSPs/fx_service/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const defaultDecimalPlaces = 2

// CurrencyService owns the registry of known currencies.
type CurrencyService struct {
	BaseService
	currencyRepo portsrepo.CurrencyRepositoryFacade
	usageReader  portsrepo.TransactionUsageReader
	sanitizer    *utils.TextSanitizer
	validate     *validator.Validate
}

// NewCurrencyService creates a new CurrencyService. usageReader supplies transaction
// statistics and reference counts; it may be nil when no transactions are recorded.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade, usageReader portsrepo.TransactionUsageReader, opts ...ServiceOption) *CurrencyService {
	svc := &CurrencyService{
		BaseService:  newBaseService(),
		currencyRepo: currencyRepo,
		usageReader:  usageReader,
		sanitizer:    utils.NewTextSanitizer(),
		validate:     validator.New(),
	}
	svc.apply(opts)
	return svc
}

var _ portssvc.CurrencySvcFacade = (*CurrencyService)(nil)

// CreateCurrency registers a new currency.
func (s *CurrencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*domain.Currency, error) {
	decimalPlaces := defaultDecimalPlaces
	if req.DecimalPlaces != nil {
		decimalPlaces = *req.DecimalPlaces
	}

	currency, err := domain.NewCurrency(
		s.sanitizer.Sanitize(req.CurrencyCode),
		s.sanitizer.Sanitize(req.Name),
		s.sanitizer.Sanitize(req.Symbol),
		decimalPlaces,
		req.IsBaseCurrency,
		s.sanitizer.SanitizeAll(req.Countries),
	)
	if err != nil {
		return nil, err
	}
	if err := s.validateCountries(currency.Countries); err != nil {
		return nil, err
	}

	existing, err := s.currencyRepo.FindCurrencyByCode(ctx, currency.CurrencyCode)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check for existing currency", slog.String("currency_code", currency.CurrencyCode))
		return nil, fmt.Errorf("failed to check currency %s: %w", currency.CurrencyCode, err)
	}
	if existing != nil {
		return nil, apperrors.NewValidationError("currency %s already exists", currency.CurrencyCode)
	}

	if currency.IsBaseCurrency {
		if err := s.ensureNoBaseCurrency(ctx, currency.CurrencyCode); err != nil {
			return nil, err
		}
	}

	currency.AuditFields = domain.NewAuditFields(creatorUserID, s.Now())

	if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewValidationError("currency %s already exists", currency.CurrencyCode)
		}
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to save currency", slog.String("currency_code", currency.CurrencyCode))
		return nil, fmt.Errorf("failed to create currency in service: %w", err)
	}

	s.LogInfo(ctx, "Currency registered",
		slog.String("currency_code", currency.CurrencyCode),
		slog.Bool("is_base", currency.IsBaseCurrency))
	return &currency, nil
}

// UpdateCurrency applies a partial update to a currency.
func (s *CurrencyService) UpdateCurrency(ctx context.Context, currencyCode string, req dto.UpdateCurrencyRequest, userID string) (*domain.Currency, error) {
	code := normalizeCode(currencyCode)
	if req.CurrencyCode != nil && normalizeCode(*req.CurrencyCode) != code {
		return nil, apperrors.NewValidationError("currency code is immutable")
	}

	current, err := s.GetCurrencyByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	updated := current.Clone()
	if req.Name != nil {
		updated.Name = s.sanitizer.Sanitize(*req.Name)
	}
	if req.Symbol != nil {
		updated.Symbol = s.sanitizer.Sanitize(*req.Symbol)
	}
	if req.DecimalPlaces != nil {
		updated.DecimalPlaces = *req.DecimalPlaces
	}
	if req.Countries != nil {
		updated.Countries = domain.NormalizeCountries(s.sanitizer.SanitizeAll(req.Countries))
		if err := s.validateCountries(updated.Countries); err != nil {
			return nil, err
		}
	}
	if req.IsActive != nil {
		if !*req.IsActive && current.IsBaseCurrency {
			return nil, apperrors.NewValidationError("base currency %s cannot be deactivated", code)
		}
		updated.IsActive = *req.IsActive
	}
	if req.IsBaseCurrency != nil && *req.IsBaseCurrency != current.IsBaseCurrency {
		if !*req.IsBaseCurrency {
			return nil, apperrors.NewValidationError("base currency %s cannot be unset", code)
		}
		if err := s.ensureNoBaseCurrency(ctx, code); err != nil {
			return nil, err
		}
		updated.IsBaseCurrency = true
	}

	if err := updated.Validate(); err != nil {
		return nil, err
	}
	updated.Touch(userID, s.Now())

	if err := s.currencyRepo.UpdateCurrency(ctx, updated); err != nil {
		if errors.Is(err, apperrors.ErrConflict) || errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to update currency", slog.String("currency_code", code))
		return nil, fmt.Errorf("failed to update currency in service: %w", err)
	}

	s.LogInfo(ctx, "Currency updated", slog.String("currency_code", code))
	return &updated, nil
}

// DeleteCurrency deactivates a currency, or removes it when hardDelete is set.
// The base currency can be neither deactivated nor deleted.
func (s *CurrencyService) DeleteCurrency(ctx context.Context, currencyCode string, hardDelete bool, userID string) error {
	current, err := s.GetCurrencyByCode(ctx, currencyCode)
	if err != nil {
		return err
	}
	if current.IsBaseCurrency {
		return apperrors.NewValidationError("base currency %s cannot be deleted", current.CurrencyCode)
	}

	if !hardDelete {
		current.IsActive = false
		current.Touch(userID, s.Now())
		if err := s.currencyRepo.UpdateCurrency(ctx, *current); err != nil {
			s.LogError(ctx, err, "Failed to deactivate currency", slog.String("currency_code", current.CurrencyCode))
			return fmt.Errorf("failed to deactivate currency: %w", err)
		}
		s.LogInfo(ctx, "Currency deactivated", slog.String("currency_code", current.CurrencyCode))
		return nil
	}

	count, err := s.countTransactions(ctx, current.CurrencyCode)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperrors.NewConflictError("currency %s is referenced by transactions (%d)", current.CurrencyCode, count)
	}

	if err := s.currencyRepo.DeleteCurrency(ctx, current.CurrencyCode); err != nil {
		s.LogError(ctx, err, "Failed to delete currency", slog.String("currency_code", current.CurrencyCode))
		return fmt.Errorf("failed to delete currency: %w", err)
	}
	s.LogInfo(ctx, "Currency deleted", slog.String("currency_code", current.CurrencyCode))
	return nil
}

// GetCurrencyByCode retrieves a currency by its code.
func (s *CurrencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	code := normalizeCode(currencyCode)
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("currency %s not found", code)
		}
		return nil, fmt.Errorf("failed to get currency by code in service: %w", err)
	}
	return currency, nil
}

// GetBaseCurrency retrieves the single base currency.
func (s *CurrencyService) GetBaseCurrency(ctx context.Context) (*domain.Currency, error) {
	base, err := s.currencyRepo.FindBaseCurrency(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("no base currency configured")
		}
		return nil, fmt.Errorf("failed to get base currency: %w", err)
	}
	return base, nil
}

// ListCurrencies retrieves currencies matching the filter, optionally with usage statistics.
func (s *CurrencyService) ListCurrencies(ctx context.Context, filter domain.CurrencyFilter) ([]domain.CurrencyWithUsage, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list currencies")
		return nil, fmt.Errorf("failed to list currencies in service: %w", err)
	}

	var usage map[string]domain.CurrencyUsage
	if filter.IncludeStats && s.usageReader != nil {
		summaries, err := s.usageReader.SummarizeByCurrency(ctx)
		if err != nil {
			s.LogError(ctx, err, "Failed to load currency usage statistics")
			return nil, fmt.Errorf("failed to load currency usage: %w", err)
		}
		usage = make(map[string]domain.CurrencyUsage, len(summaries))
		for _, u := range summaries {
			usage[u.CurrencyCode] = u
		}
	}

	result := make([]domain.CurrencyWithUsage, 0, len(currencies))
	for _, c := range currencies {
		if filter.ActiveOnly && !c.IsActive {
			continue
		}
		if filter.Symbol != "" && !strings.Contains(c.Symbol, filter.Symbol) {
			continue
		}
		item := domain.CurrencyWithUsage{Currency: c}
		if filter.IncludeStats {
			u, ok := usage[c.CurrencyCode]
			if !ok {
				u = domain.CurrencyUsage{CurrencyCode: c.CurrencyCode, TotalVolume: decimal.Zero, TotalInBase: decimal.Zero}
			}
			item.Usage = &u
		}
		result = append(result, item)
	}
	return result, nil
}

func (s *CurrencyService) ensureNoBaseCurrency(ctx context.Context, candidate string) error {
	base, err := s.currencyRepo.FindBaseCurrency(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check base currency: %w", err)
	}
	return apperrors.NewConflictError("base currency already exists (%s); cannot make %s the base currency", base.CurrencyCode, candidate)
}

func (s *CurrencyService) validateCountries(countries []string) error {
	for _, country := range countries {
		if err := s.validate.Var(country, "iso3166_1_alpha2"); err != nil {
			return apperrors.NewValidationError("unknown country code %q", country)
		}
	}
	return nil
}

func (s *CurrencyService) countTransactions(ctx context.Context, code string) (int64, error) {
	if s.usageReader == nil {
		return 0, nil
	}
	count, err := s.usageReader.CountTransactionsByCurrency(ctx, code)
	if err != nil {
		s.LogError(ctx, err, "Failed to count transactions for currency", slog.String("currency_code", code))
		return 0, fmt.Errorf("failed to count transactions for %s: %w", code, err)
	}
	return count, nil
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
