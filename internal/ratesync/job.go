package ratesync

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/SscSPs/fx_service/internal/core/domain"
	"github.com/SscSPs/fx_service/internal/middleware"
)

// SystemUserID is recorded as the author of synced rates.
const SystemUserID = "system:ratesync"

const defaultRunTimeout = 2 * time.Minute

// RateWriter stores a batch of rates, reporting failures per entry.
type RateWriter interface {
	BulkUpdateExchangeRates(ctx context.Context, entries []domain.RateEntry, userID string) (*domain.BulkRateUpdateResult, error)
}

// Job pulls a snapshot from a Provider and stores it as spot rates.
type Job struct {
	provider Provider
	store    RateWriter
	logger   *slog.Logger
	timeout  time.Duration
}

// NewJob creates a sync job. A nil logger falls back to slog.Default.
func NewJob(provider Provider, store RateWriter, logger *slog.Logger) *Job {
	if logger == nil {
		logger = slog.Default()
	}
	return &Job{
		provider: provider,
		store:    store,
		logger:   logger.With(slog.String("component", "ratesync"), slog.String("provider", provider.Name())),
		timeout:  defaultRunTimeout,
	}
}

// Name identifies the job in scheduler logs.
func (j *Job) Name() string { return "ratesync:" + j.provider.Name() }

// Run performs one sync. Entries the store rejects are logged and do not fail the run.
func (j *Job) Run(ctx context.Context) (*domain.BulkRateUpdateResult, error) {
	ctx, cancel := context.WithTimeout(middleware.WithLogger(ctx, j.logger), j.timeout)
	defer cancel()

	snapshot, err := j.provider.Fetch(ctx)
	if err != nil {
		j.logger.Error("Failed to fetch rate snapshot", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to fetch rates from %s: %w", j.provider.Name(), err)
	}

	entries := SnapshotEntries(snapshot, j.provider.Name())
	if len(entries) == 0 {
		j.logger.Warn("Rate snapshot contained no usable quotes", slog.String("base", snapshot.Base))
		return &domain.BulkRateUpdateResult{Errors: []domain.BulkRateError{}, Warnings: []domain.BulkRateWarning{}}, nil
	}

	result, err := j.store.BulkUpdateExchangeRates(ctx, entries, SystemUserID)
	if err != nil {
		j.logger.Error("Failed to store synced rates", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to store synced rates: %w", err)
	}

	for _, e := range result.Errors {
		j.logger.Warn("Synced rate rejected",
			slog.String("pair", domain.PairKey(e.FromCurrencyCode, e.ToCurrencyCode)),
			slog.String("error", e.Error))
	}
	for _, w := range result.Warnings {
		j.logger.Warn("Synced rate disagrees with reverse quote",
			slog.String("pair", domain.PairKey(w.FromCurrencyCode, w.ToCurrencyCode)),
			slog.String("warning", w.Warning))
	}
	j.logger.Info("Rate sync finished",
		slog.String("base", snapshot.Base),
		slog.String("date", snapshot.Date.Format(time.DateOnly)),
		slog.Int("received", len(entries)),
		slog.Int("updated", result.Updated),
		slog.Int("rejected", len(result.Errors)))
	return result, nil
}

// SnapshotEntries maps a snapshot onto spot rate entries from the snapshot base,
// ordered by target code. Quotes for the base itself are skipped.
func SnapshotEntries(s *Snapshot, source string) []domain.RateEntry {
	codes := make([]string, 0, len(s.Rates))
	for code := range s.Rates {
		if code == s.Base {
			continue
		}
		codes = append(codes, code)
	}
	sort.Strings(codes)

	entries := make([]domain.RateEntry, 0, len(codes))
	for _, code := range codes {
		entries = append(entries, domain.RateEntry{
			FromCurrencyCode: s.Base,
			ToCurrencyCode:   code,
			Rate:             s.Rates[code],
			RateDate:         s.Date,
			RateType:         domain.RateTypeSpot,
			Source:           source,
		})
	}
	return entries
}
