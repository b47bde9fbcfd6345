package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyUsage summarises how a currency is used by booked transactions.
type CurrencyUsage struct {
	CurrencyCode     string          `json:"currencyCode"`
	TransactionCount int64           `json:"transactionCount"`
	TotalVolume      decimal.Decimal `json:"totalVolume"`
	TotalInBase      decimal.Decimal `json:"totalInBase"`
	LastUsedAt       *time.Time      `json:"lastUsedAt,omitempty"`
}

// CurrencyWithUsage pairs a currency with its usage statistics.
type CurrencyWithUsage struct {
	Currency
	Usage *CurrencyUsage `json:"usage,omitempty"`
}

// CurrencyFilter narrows currency listings.
type CurrencyFilter struct {
	ActiveOnly   bool
	Symbol       string // substring match
	IncludeStats bool
}

// HistoryPeriod is the bucket width of a rate history query.
type HistoryPeriod string

const (
	PeriodDay   HistoryPeriod = "day"
	PeriodWeek  HistoryPeriod = "week"
	PeriodMonth HistoryPeriod = "month"
)

// Valid reports whether the period is one of the known values.
func (p HistoryPeriod) Valid() bool {
	return p == PeriodDay || p == PeriodWeek || p == PeriodMonth
}

// BucketStart truncates t (in UTC) to the start of the period containing it.
// Weeks start on Monday.
func (p HistoryPeriod) BucketStart(t time.Time) time.Time {
	t = t.UTC()
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	switch p {
	case PeriodWeek:
		offset := (int(day.Weekday()) + 6) % 7
		return day.AddDate(0, 0, -offset)
	case PeriodMonth:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	default:
		return day
	}
}

// RateHistoryPoint aggregates the quotes of one pair within one period.
type RateHistoryPoint struct {
	PeriodStart time.Time       `json:"periodStart"`
	Open        decimal.Decimal `json:"open"`
	Close       decimal.Decimal `json:"close"`
	High        decimal.Decimal `json:"high"`
	Low         decimal.Decimal `json:"low"`
	Average     decimal.Decimal `json:"average"`
	Count       int             `json:"count"`
}
