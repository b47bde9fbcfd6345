package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/fx_service/internal/apperrors"
	"github.com/SscSPs/fx_service/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_service/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fx_service/internal/core/ports/services"
	"github.com/SscSPs/fx_service/internal/dto"
	"github.com/shopspring/decimal"
)

const (
	// DefaultConsistencyTolerance is the relative deviation (0.5%) allowed between
	// a rate and the inverse of the opposite quote before a warning is raised.
	DefaultConsistencyTolerance = "0.005"
	// DefaultMaxCrossLegs bounds the bridge search to one intermediate currency.
	DefaultMaxCrossLegs = 2

	defaultRateSource = "manual"
)

// ExchangeRateService provides business logic for exchange rates.
type ExchangeRateService struct {
	BaseService
	rateRepo        portsrepo.ExchangeRateRepositoryFacade
	currencyService portssvc.CurrencyReaderSvc
	tolerance       decimal.Decimal
	maxLegs         int
}

// ExchangeRateServiceOption is a functional option for configuring the exchange rate service
type ExchangeRateServiceOption func(*ExchangeRateService)

// WithConsistencyTolerance sets the relative tolerance of the reciprocal consistency check.
func WithConsistencyTolerance(tolerance decimal.Decimal) ExchangeRateServiceOption {
	return func(s *ExchangeRateService) {
		if tolerance.IsPositive() {
			s.tolerance = tolerance
		}
	}
}

// WithMaxCrossLegs sets the longest chain of legs a cross rate may use.
func WithMaxCrossLegs(legs int) ExchangeRateServiceOption {
	return func(s *ExchangeRateService) {
		if legs >= 2 {
			s.maxLegs = legs
		}
	}
}

// WithRateServiceBase applies shared service options.
func WithRateServiceBase(opts ...ServiceOption) ExchangeRateServiceOption {
	return func(s *ExchangeRateService) {
		s.apply(opts)
	}
}

// NewExchangeRateService creates a new ExchangeRateService.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateRepositoryFacade, currencyService portssvc.CurrencyReaderSvc, opts ...ExchangeRateServiceOption) *ExchangeRateService {
	svc := &ExchangeRateService{
		BaseService:     newBaseService(),
		rateRepo:        rateRepo,
		currencyService: currencyService,
		tolerance:       decimal.RequireFromString(DefaultConsistencyTolerance),
		maxLegs:         DefaultMaxCrossLegs,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

var _ portssvc.ExchangeRateSvcFacade = (*ExchangeRateService)(nil)

// CreateExchangeRate handles the creation of a new exchange rate.
func (s *ExchangeRateService) CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, creatorUserID string) (*domain.AddRateResult, error) {
	rateType, err := domain.ParseRateType(req.RateType)
	if err != nil {
		return nil, err
	}
	rateDate := s.Now()
	if req.RateDate != nil {
		rateDate = *req.RateDate
	}
	source := req.Source
	if source == "" {
		source = defaultRateSource
	}

	rate, err := domain.NewExchangeRate(s.NewID(), req.FromCurrencyCode, req.ToCurrencyCode, req.Rate, rateDate, rateType, source, req.ValidUntil)
	if err != nil {
		return nil, err
	}

	if err := s.requireActiveCurrency(ctx, rate.FromCurrencyCode, "from"); err != nil {
		return nil, err
	}
	if err := s.requireActiveCurrency(ctx, rate.ToCurrencyCode, "to"); err != nil {
		return nil, err
	}

	result, err := s.addRate(ctx, rate, req.CalculateReciprocal, creatorUserID)
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Exchange rate created",
		slog.String("rate_id", rate.ExchangeRateID),
		slog.String("pair", domain.PairKey(rate.FromCurrencyCode, rate.ToCurrencyCode)),
		slog.String("rate_type", string(rate.RateType)),
		slog.Bool("reciprocal", result.Reciprocal != nil))
	return result, nil
}

// UpdateExchangeRate applies a partial update. Expired forward rates are immutable.
func (s *ExchangeRateService) UpdateExchangeRate(ctx context.Context, rateID string, req dto.UpdateExchangeRateRequest, userID string) (*domain.ExchangeRate, error) {
	current, err := s.rateRepo.FindExchangeRateByID(ctx, rateID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("exchange rate %s not found", rateID)
		}
		return nil, fmt.Errorf("failed to get exchange rate %s: %w", rateID, err)
	}

	now := s.Now()
	if current.IsExpired(now) {
		return nil, fmt.Errorf("%w: rate %s was valid until %s and can no longer be updated",
			apperrors.ErrRateExpired, rateID, current.ValidUntil.Format(time.RFC3339))
	}

	updated := current.Clone()
	if req.Rate != nil {
		if !req.Rate.IsPositive() {
			return nil, apperrors.NewValidationError("exchange rate must be positive")
		}
		updated.Rate = *req.Rate
	}
	if req.Source != nil {
		updated.Source = *req.Source
	}
	if req.ValidUntil != nil {
		if updated.RateType != domain.RateTypeForward {
			return nil, apperrors.NewValidationError("validUntil only applies to forward rates")
		}
		v := *req.ValidUntil
		updated.ValidUntil = &v
	}
	if req.IsActive != nil {
		updated.IsActive = *req.IsActive
	}
	if err := updated.Validate(); err != nil {
		return nil, err
	}
	updated.Touch(userID, now)

	if err := s.rateRepo.UpdateExchangeRate(ctx, updated); err != nil {
		s.LogError(ctx, err, "Failed to update exchange rate", slog.String("rate_id", rateID))
		return nil, fmt.Errorf("failed to update exchange rate: %w", err)
	}

	s.LogInfo(ctx, "Exchange rate updated", slog.String("rate_id", rateID))
	return &updated, nil
}

// BulkUpdateExchangeRates stores each entry independently. Entries that fail
// validation are reported in the result instead of aborting the batch; only a
// failure to load the currency registry fails the whole call.
func (s *ExchangeRateService) BulkUpdateExchangeRates(ctx context.Context, entries []domain.RateEntry, userID string) (*domain.BulkRateUpdateResult, error) {
	currencies, err := s.currencyService.ListCurrencies(ctx, domain.CurrencyFilter{ActiveOnly: true})
	if err != nil {
		return nil, fmt.Errorf("failed to load currencies for bulk update: %w", err)
	}
	active := make(map[string]bool, len(currencies))
	for _, c := range currencies {
		active[c.CurrencyCode] = true
	}

	result := &domain.BulkRateUpdateResult{Errors: []domain.BulkRateError{}, Warnings: []domain.BulkRateWarning{}}
	for i, entry := range entries {
		warning, err := s.applyEntry(ctx, entry, active, userID)
		if err != nil {
			result.Errors = append(result.Errors, domain.BulkRateError{
				Index:            i,
				FromCurrencyCode: entry.FromCurrencyCode,
				ToCurrencyCode:   entry.ToCurrencyCode,
				Error:            err.Error(),
			})
			continue
		}
		result.Updated++
		if warning != "" {
			result.Warnings = append(result.Warnings, domain.BulkRateWarning{
				Index:            i,
				FromCurrencyCode: entry.FromCurrencyCode,
				ToCurrencyCode:   entry.ToCurrencyCode,
				Warning:          warning,
			})
		}
	}

	s.LogInfo(ctx, "Bulk exchange rate update finished",
		slog.Int("received", len(entries)),
		slog.Int("updated", result.Updated),
		slog.Int("failed", len(result.Errors)),
		slog.Int("warnings", len(result.Warnings)))
	return result, nil
}

func (s *ExchangeRateService) applyEntry(ctx context.Context, entry domain.RateEntry, active map[string]bool, userID string) (string, error) {
	rateType, err := domain.ParseRateType(string(entry.RateType))
	if err != nil {
		return "", err
	}
	source := entry.Source
	if source == "" {
		source = defaultRateSource
	}
	rateDate := entry.RateDate
	if rateDate.IsZero() {
		rateDate = s.Now()
	}
	rate, err := domain.NewExchangeRate(s.NewID(), entry.FromCurrencyCode, entry.ToCurrencyCode, entry.Rate, rateDate, rateType, source, entry.ValidUntil)
	if err != nil {
		return "", err
	}
	for _, code := range []string{rate.FromCurrencyCode, rate.ToCurrencyCode} {
		if !active[code] {
			return "", apperrors.NewValidationError("unknown or inactive currency %s", code)
		}
	}
	res, err := s.addRate(ctx, rate, false, userID)
	if err != nil {
		return "", err
	}
	return res.ConsistencyWarning, nil
}

// addRate runs the consistency check and persists the rate with its optional reciprocal.
func (s *ExchangeRateService) addRate(ctx context.Context, rate domain.ExchangeRate, withReciprocal bool, userID string) (*domain.AddRateResult, error) {
	result := &domain.AddRateResult{ConsistencyWarning: s.consistencyWarning(ctx, rate)}

	rate.AuditFields = domain.NewAuditFields(userID, s.Now())
	toSave := []domain.ExchangeRate{rate}
	if withReciprocal {
		inv := rate.Reciprocal(s.NewID())
		toSave = append(toSave, inv)
		result.Reciprocal = &inv
	}

	if err := s.rateRepo.SaveExchangeRates(ctx, toSave...); err != nil {
		s.LogError(ctx, err, "Failed to save exchange rate",
			slog.String("pair", domain.PairKey(rate.FromCurrencyCode, rate.ToCurrencyCode)))
		return nil, fmt.Errorf("failed to create exchange rate in service: %w", err)
	}
	result.Rate = rate

	if result.ConsistencyWarning != "" {
		s.LogWarn(ctx, "Exchange rate inconsistent with reverse quote",
			slog.String("rate_id", rate.ExchangeRateID),
			slog.String("warning", result.ConsistencyWarning))
	}
	return result, nil
}

// consistencyWarning compares rate with the inverse of the latest live reverse
// quote, including reverse quotes dated after a back-dated rate.
// The check is advisory: lookup failures are logged and produce no warning.
func (s *ExchangeRateService) consistencyWarning(ctx context.Context, rate domain.ExchangeRate) string {
	asOf := s.Now()
	if rate.RateDate.After(asOf) {
		asOf = rate.RateDate
	}
	reverse, err := s.rateRepo.FindLatestRate(ctx, domain.RateLookup{
		FromCurrencyCode: rate.ToCurrencyCode,
		ToCurrencyCode:   rate.FromCurrencyCode,
		RateType:         rate.RateType,
		AsOf:             asOf,
		ExcludeExpired:   true,
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Consistency check lookup failed",
				slog.String("pair", domain.PairKey(rate.ToCurrencyCode, rate.FromCurrencyCode)))
		}
		return ""
	}

	expected := decimal.NewFromInt(1).Div(reverse.Rate)
	deviation := rate.Rate.Sub(expected).Abs().Div(expected)
	if deviation.LessThanOrEqual(s.tolerance) {
		return ""
	}
	hundred := decimal.NewFromInt(100)
	return fmt.Sprintf("rate %s->%s of %s deviates %s%% from the inverse of the existing %s->%s rate %s (tolerance %s%%)",
		rate.FromCurrencyCode, rate.ToCurrencyCode, rate.Rate.String(),
		deviation.Mul(hundred).StringFixed(2),
		reverse.FromCurrencyCode, reverse.ToCurrencyCode, reverse.Rate.String(),
		s.tolerance.Mul(hundred).StringFixed(2))
}

// GetExchangeRate returns the most recent active direct rate that has not expired as of asOf.
func (s *ExchangeRateService) GetExchangeRate(ctx context.Context, fromCode, toCode string, asOf time.Time, rateType domain.RateType) (*domain.ExchangeRate, error) {
	return s.findRate(ctx, fromCode, toCode, asOf, rateType, true)
}

// GetLatestRate returns the most recent active direct rate as of asOf, expired or not.
func (s *ExchangeRateService) GetLatestRate(ctx context.Context, fromCode, toCode string, asOf time.Time, rateType domain.RateType) (*domain.ExchangeRate, error) {
	return s.findRate(ctx, fromCode, toCode, asOf, rateType, false)
}

func (s *ExchangeRateService) findRate(ctx context.Context, fromCode, toCode string, asOf time.Time, rateType domain.RateType, excludeExpired bool) (*domain.ExchangeRate, error) {
	lookup, err := s.lookup(fromCode, toCode, asOf, rateType)
	if err != nil {
		return nil, err
	}
	lookup.ExcludeExpired = excludeExpired

	rate, err := s.rateRepo.FindLatestRate(ctx, lookup)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("no %s exchange rate found for %s to %s",
				lookup.RateType, lookup.FromCurrencyCode, lookup.ToCurrencyCode)
		}
		return nil, fmt.Errorf("failed to get exchange rate in service: %w", err)
	}
	return rate, nil
}

// GetCrossRate composes a rate through bridge currencies when no direct quote
// is used. The base currency is tried first as a bridge, then the remaining
// active currencies alphabetically.
func (s *ExchangeRateService) GetCrossRate(ctx context.Context, fromCode, toCode string, asOf time.Time, rateType domain.RateType) (*domain.RateQuote, error) {
	lookup, err := s.lookup(fromCode, toCode, asOf, rateType)
	if err != nil {
		return nil, err
	}

	currencies, err := s.currencyService.ListCurrencies(ctx, domain.CurrencyFilter{ActiveOnly: true})
	if err != nil {
		return nil, fmt.Errorf("failed to load currencies for cross rate: %w", err)
	}
	active := make(map[string]bool, len(currencies))
	preferred := ""
	for _, c := range currencies {
		active[c.CurrencyCode] = true
		if c.IsBaseCurrency {
			preferred = c.CurrencyCode
		}
	}

	rates, err := s.rateRepo.ListActiveRates(ctx, lookup.RateType, lookup.AsOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to list rates for cross rate")
		return nil, fmt.Errorf("failed to list exchange rates: %w", err)
	}

	graph := newRateGraph(rates, lookup.AsOf)
	legs := graph.bridgePath(lookup.FromCurrencyCode, lookup.ToCurrencyCode, s.maxLegs, preferred,
		func(code string) bool { return active[code] })
	if legs == nil {
		return nil, apperrors.NewNotFoundError("no cross rate path found for %s to %s",
			lookup.FromCurrencyCode, lookup.ToCurrencyCode)
	}

	quote := &domain.RateQuote{
		From:     lookup.FromCurrencyCode,
		To:       lookup.ToCurrencyCode,
		Rate:     composeRate(legs),
		RateType: lookup.RateType,
		Method:   domain.MethodCalculated,
		Path:     legPath(legs),
		Legs:     legs,
		AsOf:     lookup.AsOf,
	}
	s.LogDebug(ctx, "Cross rate calculated",
		slog.Any("path", quote.Path),
		slog.String("rate", quote.Rate.String()))
	return quote, nil
}

func (s *ExchangeRateService) lookup(fromCode, toCode string, asOf time.Time, rateType domain.RateType) (domain.RateLookup, error) {
	from, to := normalizeCode(fromCode), normalizeCode(toCode)
	if len(from) != domain.CurrencyCodeLength || len(to) != domain.CurrencyCodeLength {
		return domain.RateLookup{}, apperrors.NewValidationError("currency codes must be 3 letters")
	}
	rt, err := domain.ParseRateType(string(rateType))
	if err != nil {
		return domain.RateLookup{}, err
	}
	if asOf.IsZero() {
		asOf = s.Now()
	}
	return domain.RateLookup{FromCurrencyCode: from, ToCurrencyCode: to, RateType: rt, AsOf: asOf}, nil
}

func (s *ExchangeRateService) requireActiveCurrency(ctx context.Context, code, side string) error {
	currency, err := s.currencyService.GetCurrencyByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewValidationError("'%s' currency code '%s' not found", side, code)
		}
		return fmt.Errorf("failed to validate '%s' currency '%s': %w", side, code, err)
	}
	if !currency.IsActive {
		return apperrors.NewValidationError("'%s' currency '%s' is inactive", side, code)
	}
	return nil
}
