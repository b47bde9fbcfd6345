package services

import (
	"context"
	"time"

	"github.com/SscSPs/fx_service/internal/core/domain"
)

// ReportingService exposes read-only aggregations for reporting collaborators.
type ReportingService interface {
	// SummaryByCurrency aggregates booked transactions per source currency.
	SummaryByCurrency(ctx context.Context) ([]domain.CurrencyUsage, error)

	// RateHistory buckets the quotes of a pair by period.
	RateHistory(ctx context.Context, fromCode, toCode string, period domain.HistoryPeriod, start, end time.Time) ([]domain.RateHistoryPoint, error)
}
