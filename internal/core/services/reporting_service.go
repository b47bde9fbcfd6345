package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/fx_service/internal/apperrors"
	"github.com/SscSPs/fx_service/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_service/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fx_service/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	usageReader portsrepo.TransactionUsageReader
	rateReader  portsrepo.ExchangeRateReader
}

// NewReportingService creates a new reporting service
func NewReportingService(usageReader portsrepo.TransactionUsageReader, rateReader portsrepo.ExchangeRateReader, opts ...ServiceOption) portssvc.ReportingService {
	svc := &reportingService{
		BaseService: newBaseService(),
		usageReader: usageReader,
		rateReader:  rateReader,
	}
	svc.apply(opts)
	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// SummaryByCurrency aggregates booked transactions per source currency.
func (s *reportingService) SummaryByCurrency(ctx context.Context) ([]domain.CurrencyUsage, error) {
	summary, err := s.usageReader.SummarizeByCurrency(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve currency summary")
		return nil, fmt.Errorf("failed to retrieve currency summary: %w", err)
	}
	if summary == nil {
		summary = []domain.CurrencyUsage{}
	}

	s.LogInfo(ctx, "Currency summary generated", slog.Int("currency_count", len(summary)))
	return summary, nil
}

// RateHistory buckets the spot quotes of a pair by period. Points are ordered
// by period start; empty periods are omitted.
func (s *reportingService) RateHistory(ctx context.Context, fromCode, toCode string, period domain.HistoryPeriod, start, end time.Time) ([]domain.RateHistoryPoint, error) {
	if period == "" {
		period = domain.PeriodDay
	}
	if !period.Valid() {
		return nil, apperrors.NewValidationError("unknown history period %q", period)
	}
	if end.IsZero() {
		end = s.Now()
	}
	if start.IsZero() {
		start = end.AddDate(0, -1, 0)
	}
	if start.After(end) {
		return nil, apperrors.NewValidationError("history start must not be after end")
	}
	from, to := normalizeCode(fromCode), normalizeCode(toCode)

	rates, err := s.rateReader.ListRateHistory(ctx, from, to, domain.RateTypeSpot, start, end)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve rate history",
			slog.String("pair", domain.PairKey(from, to)),
			slog.String("start", start.Format(time.RFC3339)),
			slog.String("end", end.Format(time.RFC3339)))
		return nil, fmt.Errorf("failed to retrieve rate history: %w", err)
	}

	points := bucketRates(rates, period)
	s.LogInfo(ctx, "Rate history generated",
		slog.String("pair", domain.PairKey(from, to)),
		slog.String("period", string(period)),
		slog.Int("points", len(points)))
	return points, nil
}

// bucketRates aggregates rates, which must be ordered oldest first.
func bucketRates(rates []domain.ExchangeRate, period domain.HistoryPeriod) []domain.RateHistoryPoint {
	points := []domain.RateHistoryPoint{}
	var sum decimal.Decimal
	for _, r := range rates {
		bucket := period.BucketStart(r.RateDate)
		n := len(points)
		if n == 0 || !points[n-1].PeriodStart.Equal(bucket) {
			if n > 0 {
				finishPoint(&points[n-1], sum)
			}
			points = append(points, domain.RateHistoryPoint{
				PeriodStart: bucket,
				Open:        r.Rate,
				High:        r.Rate,
				Low:         r.Rate,
			})
			sum = decimal.Zero
			n++
		}
		p := &points[n-1]
		p.Close = r.Rate
		p.High = decimal.Max(p.High, r.Rate)
		p.Low = decimal.Min(p.Low, r.Rate)
		p.Count++
		sum = sum.Add(r.Rate)
	}
	if n := len(points); n > 0 {
		finishPoint(&points[n-1], sum)
	}
	return points
}

func finishPoint(p *domain.RateHistoryPoint, sum decimal.Decimal) {
	p.Average = sum.Div(decimal.NewFromInt(int64(p.Count)))
}
