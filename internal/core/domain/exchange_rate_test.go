package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/fx_service/internal/apperrors"
	"github.com/SscSPs/fx_service/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExchangeRate(t *testing.T) {
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	later := day.Add(30 * 24 * time.Hour)
	earlier := day.Add(-time.Hour)

	tests := []struct {
		name       string
		from, to   string
		rate       decimal.Decimal
		rateType   domain.RateType
		validUntil *time.Time
		errMsg     string
	}{
		{name: "valid spot", from: "EUR", to: "USD", rate: decimal.RequireFromString("1.085"), rateType: domain.RateTypeSpot},
		{name: "valid forward", from: "EUR", to: "USD", rate: decimal.RequireFromString("1.09"), rateType: domain.RateTypeForward, validUntil: &later},
		{name: "same currency", from: "USD", to: "USD", rate: decimal.NewFromInt(1), rateType: domain.RateTypeSpot, errMsg: "cannot be the same"},
		{name: "zero rate", from: "EUR", to: "USD", rate: decimal.Zero, rateType: domain.RateTypeSpot, errMsg: "must be positive"},
		{name: "negative rate", from: "EUR", to: "USD", rate: decimal.NewFromInt(-2), rateType: domain.RateTypeSpot, errMsg: "must be positive"},
		{name: "forward without validUntil", from: "EUR", to: "USD", rate: decimal.NewFromInt(1), rateType: domain.RateTypeForward, errMsg: "validUntil is required"},
		{name: "forward validUntil before rateDate", from: "EUR", to: "USD", rate: decimal.NewFromInt(1), rateType: domain.RateTypeForward, validUntil: &earlier, errMsg: "must be after"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := domain.NewExchangeRate("id", tt.from, tt.to, tt.rate, day, tt.rateType, "test", tt.validUntil)
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.True(t, r.IsActive)
		})
	}
}

func TestExchangeRate_IsExpired(t *testing.T) {
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	until := day.AddDate(0, 1, 0)

	forward, err := domain.NewExchangeRate("f", "EUR", "USD", decimal.NewFromInt(1), day, domain.RateTypeForward, "bank", &until)
	require.NoError(t, err)
	spot, err := domain.NewExchangeRate("s", "EUR", "USD", decimal.NewFromInt(1), day, domain.RateTypeSpot, "bank", &until)
	require.NoError(t, err)

	assert.False(t, forward.IsExpired(until))
	assert.True(t, forward.IsExpired(until.Add(time.Second)))
	assert.Nil(t, spot.ValidUntil, "spot rates drop validUntil")
	assert.False(t, spot.IsExpired(until.AddDate(10, 0, 0)))
}

func TestExchangeRate_Reciprocal(t *testing.T) {
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	r, err := domain.NewExchangeRate("r", "USD", "EUR", decimal.RequireFromString("0.8"), day, domain.RateTypeSpot, "ecb", nil)
	require.NoError(t, err)

	inv := r.Reciprocal("inv")

	assert.Equal(t, "EUR", inv.FromCurrencyCode)
	assert.Equal(t, "USD", inv.ToCurrencyCode)
	assert.True(t, decimal.RequireFromString("1.25").Equal(inv.Rate))
	assert.True(t, inv.IsCalculated)
	assert.Equal(t, domain.SourceCalculated, inv.Source)
}

func TestExchangeRate_ReciprocalRoundsToRateScale(t *testing.T) {
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	r, err := domain.NewExchangeRate("r", "USD", "XAU", decimal.NewFromInt(3), day, domain.RateTypeSpot, "ecb", nil)
	require.NoError(t, err)

	inv := r.Reciprocal("inv")

	assert.Equal(t, "0.333333333333", inv.Rate.String())
	assert.Equal(t, int32(-domain.RateScale), inv.Rate.Exponent())
}

func TestHistoryPeriod_BucketStart(t *testing.T) {
	// Thursday
	ts := time.Date(2024, 3, 14, 15, 4, 5, 0, time.UTC)

	assert.Equal(t, time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC), domain.PeriodDay.BucketStart(ts))
	assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), domain.PeriodWeek.BucketStart(ts))
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), domain.PeriodMonth.BucketStart(ts))
}

func TestUserRole_Satisfies(t *testing.T) {
	assert.True(t, domain.RoleAdmin.Satisfies(domain.RoleAccountant))
	assert.True(t, domain.RoleAccountant.Satisfies(domain.RoleAccountant))
	assert.False(t, domain.RoleViewer.Satisfies(domain.RoleAccountant))
	assert.False(t, domain.ParseUserRole("root").Satisfies(domain.RoleViewer))
	assert.Equal(t, domain.RoleAdmin, domain.ParseUserRole(" ADMIN "))
}
