package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/fx_service/internal/apperrors"
	"github.com/SscSPs/fx_service/internal/core/domain"
	portssvc "github.com/SscSPs/fx_service/internal/core/ports/services"
	"github.com/SscSPs/fx_service/internal/utils"
	"github.com/shopspring/decimal"
)

// ConversionService resolves a rate for a currency pair and applies it to an amount.
// Rates are resolved in order: direct quote, reciprocal of the reverse quote,
// then a cross rate through a bridge currency.
type ConversionService struct {
	BaseService
	currencyService portssvc.CurrencyReaderSvc
	rateService     portssvc.ExchangeRateReaderSvc
}

// NewConversionService creates a new ConversionService.
func NewConversionService(currencyService portssvc.CurrencyReaderSvc, rateService portssvc.ExchangeRateReaderSvc, opts ...ServiceOption) *ConversionService {
	svc := &ConversionService{
		BaseService:     newBaseService(),
		currencyService: currencyService,
		rateService:     rateService,
	}
	svc.apply(opts)
	return svc
}

var _ portssvc.ConversionSvc = (*ConversionService)(nil)

// Convert converts req.Amount from req.From to req.To as of req.AsOf.
func (s *ConversionService) Convert(ctx context.Context, req domain.ConversionRequest) (*domain.ConversionResult, error) {
	if !req.Amount.IsPositive() {
		return nil, apperrors.NewValidationError("amount must be positive")
	}
	rateType, err := domain.ParseRateType(string(req.RateType))
	if err != nil {
		return nil, err
	}
	asOf := req.AsOf
	if asOf.IsZero() {
		asOf = s.Now()
	}

	from, err := s.currencyService.GetCurrencyByCode(ctx, req.From)
	if err != nil {
		return nil, err
	}
	to, err := s.currencyService.GetCurrencyByCode(ctx, req.To)
	if err != nil {
		return nil, err
	}
	for _, c := range []*domain.Currency{from, to} {
		if !c.IsActive {
			return nil, apperrors.NewValidationError("currency %s is inactive", c.CurrencyCode)
		}
	}
	if from.ExceedsPrecision(req.Amount) {
		return nil, apperrors.NewValidationError("amount %s exceeds decimal precision of %s (%d places)",
			req.Amount.String(), from.CurrencyCode, from.DecimalPlaces)
	}

	result := &domain.ConversionResult{
		OriginalAmount: req.Amount,
		From:           from.CurrencyCode,
		To:             to.CurrencyCode,
		RateType:       rateType,
		AsOf:           asOf,
	}

	if from.CurrencyCode == to.CurrencyCode {
		result.Rate = decimal.NewFromInt(1)
		result.Method = domain.MethodIdentity
		result.ConvertedAmount = to.RoundAmount(req.Amount)
		result.FormattedAmount = utils.FormatWithCurrencyPrecision(result.ConvertedAmount, *to)
		return result, nil
	}

	if err := s.resolveRate(ctx, result); err != nil {
		return nil, err
	}
	result.ConvertedAmount = to.RoundAmount(req.Amount.Mul(result.Rate))
	result.FormattedAmount = utils.FormatWithCurrencyPrecision(result.ConvertedAmount, *to)

	s.LogDebug(ctx, "Amount converted",
		slog.String("from", result.From),
		slog.String("to", result.To),
		slog.String("method", string(result.Method)),
		slog.String("rate", result.Rate.String()))
	return result, nil
}

// resolveRate fills Rate, Method, ExchangeRateID and Path on result.
func (s *ConversionService) resolveRate(ctx context.Context, result *domain.ConversionResult) error {
	direct, err := s.stored(ctx, result.From, result.To, result.AsOf, result.RateType)
	if err != nil {
		return err
	}
	if direct != nil {
		result.Rate = direct.Rate
		result.Method = domain.MethodDirect
		result.ExchangeRateID = &direct.ExchangeRateID
		return nil
	}

	reverse, err := s.stored(ctx, result.To, result.From, result.AsOf, result.RateType)
	if err != nil {
		return err
	}
	if reverse != nil {
		result.Rate = decimal.NewFromInt(1).Div(reverse.Rate)
		result.Method = domain.MethodReciprocal
		result.ExchangeRateID = &reverse.ExchangeRateID
		return nil
	}

	quote, err := s.rateService.GetCrossRate(ctx, result.From, result.To, result.AsOf, result.RateType)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("exchange rate not found for %s to %s", result.From, result.To)
		}
		return err
	}
	result.Rate = quote.Rate
	result.Method = domain.MethodCrossRate
	result.Path = quote.Path
	return nil
}

// stored returns the usable stored rate for a pair, nil when there is none, or
// ErrRateExpired when the most recent forward quote has lapsed as of asOf.
func (s *ConversionService) stored(ctx context.Context, from, to string, asOf time.Time, rateType domain.RateType) (*domain.ExchangeRate, error) {
	rate, err := s.rateService.GetExchangeRate(ctx, from, to, asOf, rateType)
	if err == nil {
		return rate, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up %s to %s rate: %w", from, to, err)
	}
	if rateType != domain.RateTypeForward {
		return nil, nil
	}

	latest, err := s.rateService.GetLatestRate(ctx, from, to, asOf, rateType)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up %s to %s rate: %w", from, to, err)
	}
	if latest.IsExpired(asOf) {
		return nil, fmt.Errorf("%w: forward rate %s to %s was valid until %s",
			apperrors.ErrRateExpired, from, to, latest.ValidUntil.Format(time.RFC3339))
	}
	return nil, nil
}
