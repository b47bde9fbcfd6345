package ratesync_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/fx_service/internal/core/domain"
	"github.com/SscSPs/fx_service/internal/core/services"
	"github.com/SscSPs/fx_service/internal/dto"
	"github.com/SscSPs/fx_service/internal/platform/config"
	"github.com/SscSPs/fx_service/internal/ratesync"
	"github.com/SscSPs/fx_service/internal/repositories/database/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	snapshot *ratesync.Snapshot
	err      error
}

func (p stubProvider) Name() string { return "stub" }

func (p stubProvider) Fetch(context.Context) (*ratesync.Snapshot, error) {
	return p.snapshot, p.err
}

type recordingWriter struct {
	entries []domain.RateEntry
	userID  string
	err     error
}

func (w *recordingWriter) BulkUpdateExchangeRates(_ context.Context, entries []domain.RateEntry, userID string) (*domain.BulkRateUpdateResult, error) {
	w.entries = entries
	w.userID = userID
	if w.err != nil {
		return nil, w.err
	}
	return &domain.BulkRateUpdateResult{Updated: len(entries), Errors: []domain.BulkRateError{}, Warnings: []domain.BulkRateWarning{}}, nil
}

func snapshot(date time.Time) *ratesync.Snapshot {
	return &ratesync.Snapshot{
		Base: "USD",
		Date: date,
		Rates: map[string]decimal.Decimal{
			"JPY": decimal.RequireFromString("148.25"),
			"EUR": decimal.RequireFromString("0.91"),
			"USD": decimal.NewFromInt(1),
		},
	}
}

func TestSnapshotEntries(t *testing.T) {
	date := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	entries := ratesync.SnapshotEntries(snapshot(date), "ecb")

	require.Len(t, entries, 2)
	assert.Equal(t, "EUR", entries[0].ToCurrencyCode)
	assert.Equal(t, "JPY", entries[1].ToCurrencyCode)
	for _, e := range entries {
		assert.Equal(t, "USD", e.FromCurrencyCode)
		assert.Equal(t, domain.RateTypeSpot, e.RateType)
		assert.Equal(t, "ecb", e.Source)
		assert.True(t, e.RateDate.Equal(date))
	}
}

func TestJob_Run(t *testing.T) {
	writer := &recordingWriter{}
	job := ratesync.NewJob(stubProvider{snapshot: snapshot(time.Now().UTC())}, writer, nil)

	res, err := job.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, res.Updated)
	assert.Equal(t, ratesync.SystemUserID, writer.userID)
	assert.Len(t, writer.entries, 2)
	assert.Equal(t, "ratesync:stub", job.Name())
}

func TestJob_RunErrors(t *testing.T) {
	t.Run("fetch failure", func(t *testing.T) {
		writer := &recordingWriter{}
		job := ratesync.NewJob(stubProvider{err: errors.New("timeout")}, writer, nil)
		_, err := job.Run(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "timeout")
		assert.Nil(t, writer.entries)
	})

	t.Run("store failure", func(t *testing.T) {
		writer := &recordingWriter{err: errors.New("db down")}
		job := ratesync.NewJob(stubProvider{snapshot: snapshot(time.Now().UTC())}, writer, nil)
		_, err := job.Run(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "db down")
	})

	t.Run("empty snapshot", func(t *testing.T) {
		writer := &recordingWriter{}
		job := ratesync.NewJob(stubProvider{snapshot: &ratesync.Snapshot{Base: "USD", Rates: nil}}, writer, nil)
		res, err := job.Run(context.Background())
		require.NoError(t, err)
		assert.Zero(t, res.Updated)
		assert.Nil(t, writer.entries)
	})
}

func TestJob_RunAgainstExchangeRateService(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{RateConsistencyTolerance: decimal.RequireFromString("0.005"), CrossRateMaxLegs: 2}
	container := services.NewServiceContainer(cfg, memory.NewRepositoryProvider())

	places := 2
	for _, req := range []dto.CreateCurrencyRequest{
		{CurrencyCode: "USD", Name: "US Dollar", DecimalPlaces: &places, IsBaseCurrency: true},
		{CurrencyCode: "EUR", Name: "Euro", DecimalPlaces: &places},
	} {
		_, err := container.Currency.CreateCurrency(ctx, req, "admin")
		require.NoError(t, err)
	}

	date := time.Now().UTC().Add(-time.Hour)
	job := ratesync.NewJob(stubProvider{snapshot: snapshot(date)}, container.ExchangeRate, nil)

	res, err := job.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Updated)
	require.Len(t, res.Errors, 1, "JPY is not registered")
	assert.Equal(t, "JPY", res.Errors[0].ToCurrencyCode)

	rate, err := container.ExchangeRate.GetExchangeRate(ctx, "USD", "EUR", time.Now().UTC(), domain.RateTypeSpot)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("0.91").Equal(rate.Rate))
	assert.Equal(t, "stub", rate.Source)
	assert.Equal(t, ratesync.SystemUserID, rate.CreatedBy)
}
