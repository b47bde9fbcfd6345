package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/fx_service/internal/apperrors"
	"github.com/SscSPs/fx_service/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

func currency(t *testing.T, code string, isBase bool) domain.Currency {
	t.Helper()
	c, err := domain.NewCurrency(code, code+" name", "", 2, isBase, nil)
	require.NoError(t, err)
	return c
}

func spot(t *testing.T, id, from, to, rate string, date time.Time) domain.ExchangeRate {
	t.Helper()
	r, err := domain.NewExchangeRate(id, from, to, decimal.RequireFromString(rate), date, domain.RateTypeSpot, "test", nil)
	require.NoError(t, err)
	return r
}

func TestCurrencyRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewCurrencyRepository()

	require.NoError(t, repo.SaveCurrency(ctx, currency(t, "USD", true)))
	require.NoError(t, repo.SaveCurrency(ctx, currency(t, "EUR", false)))

	err := repo.SaveCurrency(ctx, currency(t, "USD", false))
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	err = repo.SaveCurrency(ctx, currency(t, "GBP", true))
	assert.ErrorIs(t, err, apperrors.ErrConflict, "only one base currency may be stored")

	base, err := repo.FindBaseCurrency(ctx)
	require.NoError(t, err)
	assert.Equal(t, "USD", base.CurrencyCode)

	eur, err := repo.FindCurrencyByCode(ctx, "eur")
	require.NoError(t, err)
	eur.IsBaseCurrency = true
	assert.ErrorIs(t, repo.UpdateCurrency(ctx, *eur), apperrors.ErrConflict)

	list, err := repo.ListCurrencies(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "EUR", list[0].CurrencyCode)
	assert.False(t, list[0].IsBaseCurrency, "a rejected update must not leak into the store")

	require.NoError(t, repo.DeleteCurrency(ctx, "EUR"))
	_, err = repo.FindCurrencyByCode(ctx, "EUR")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.ErrorIs(t, repo.DeleteCurrency(ctx, "EUR"), apperrors.ErrNotFound)
}

func TestCurrencyRepositoryCopiesValues(t *testing.T) {
	ctx := context.Background()
	repo := NewCurrencyRepository()
	c, err := domain.NewCurrency("EUR", "Euro", "€", 2, false, []string{"DE"})
	require.NoError(t, err)
	require.NoError(t, repo.SaveCurrency(ctx, c))

	got, err := repo.FindCurrencyByCode(ctx, "EUR")
	require.NoError(t, err)
	got.Countries[0] = "XX"

	again, err := repo.FindCurrencyByCode(ctx, "EUR")
	require.NoError(t, err)
	assert.Equal(t, []string{"DE"}, again.Countries)
}

func TestCurrencyRepositoryDeleteCascadesToRates(t *testing.T) {
	ctx := context.Background()
	rates := NewExchangeRateRepository()
	repo := NewCurrencyRepository().CascadeTo(rates)

	for _, code := range []string{"USD", "GBP", "EUR"} {
		require.NoError(t, repo.SaveCurrency(ctx, currency(t, code, code == "USD")))
	}
	require.NoError(t, rates.SaveExchangeRates(ctx,
		spot(t, "gbp-usd", "GBP", "USD", "1.27", day),
		spot(t, "usd-gbp", "USD", "GBP", "0.79", day),
		spot(t, "eur-usd", "EUR", "USD", "1.085", day),
	))

	require.NoError(t, repo.DeleteCurrency(ctx, "gbp"))

	for _, id := range []string{"gbp-usd", "usd-gbp"} {
		_, err := rates.FindExchangeRateByID(ctx, id)
		assert.ErrorIs(t, err, apperrors.ErrNotFound, id)
	}
	_, err := rates.FindExchangeRateByID(ctx, "eur-usd")
	assert.NoError(t, err, "rates of other currencies survive")
}

func TestExchangeRateRepositoryFindLatestRate(t *testing.T) {
	ctx := context.Background()
	repo := NewExchangeRateRepository()

	older := spot(t, "r1", "EUR", "USD", "1.08", day)
	newer := spot(t, "r2", "EUR", "USD", "1.09", day.AddDate(0, 0, 2))
	future := spot(t, "r3", "EUR", "USD", "1.10", day.AddDate(0, 0, 10))
	inactive := spot(t, "r4", "EUR", "USD", "1.50", day.AddDate(0, 0, 3))
	inactive.IsActive = false
	require.NoError(t, repo.SaveExchangeRates(ctx, older, newer, future, inactive))

	lookup := domain.RateLookup{FromCurrencyCode: "EUR", ToCurrencyCode: "USD", RateType: domain.RateTypeSpot, AsOf: day.AddDate(0, 0, 5)}
	got, err := repo.FindLatestRate(ctx, lookup)
	require.NoError(t, err)
	assert.Equal(t, "r2", got.ExchangeRateID)

	lookup.AsOf = day.AddDate(0, 0, 1)
	got, err = repo.FindLatestRate(ctx, lookup)
	require.NoError(t, err)
	assert.Equal(t, "r1", got.ExchangeRateID)

	lookup.AsOf = day.AddDate(0, 0, -1)
	_, err = repo.FindLatestRate(ctx, lookup)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestExchangeRateRepositoryExcludesExpired(t *testing.T) {
	ctx := context.Background()
	repo := NewExchangeRateRepository()
	validUntil := day.AddDate(0, 1, 0)
	fwd, err := domain.NewExchangeRate("f1", "EUR", "USD", decimal.RequireFromString("1.09"), day, domain.RateTypeForward, "test", &validUntil)
	require.NoError(t, err)
	require.NoError(t, repo.SaveExchangeRates(ctx, fwd))

	lookup := domain.RateLookup{FromCurrencyCode: "EUR", ToCurrencyCode: "USD", RateType: domain.RateTypeForward, AsOf: validUntil.AddDate(0, 0, 1), ExcludeExpired: true}
	_, err = repo.FindLatestRate(ctx, lookup)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	lookup.ExcludeExpired = false
	got, err := repo.FindLatestRate(ctx, lookup)
	require.NoError(t, err)
	assert.True(t, got.IsExpired(lookup.AsOf))
}

func TestExchangeRateRepositorySaveIsAtomic(t *testing.T) {
	ctx := context.Background()
	repo := NewExchangeRateRepository()
	require.NoError(t, repo.SaveExchangeRates(ctx, spot(t, "r1", "EUR", "USD", "1.08", day)))

	err := repo.SaveExchangeRates(ctx, spot(t, "r2", "GBP", "USD", "1.27", day), spot(t, "r1", "EUR", "USD", "1.09", day))
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	_, err = repo.FindExchangeRateByID(ctx, "r2")
	assert.ErrorIs(t, err, apperrors.ErrNotFound, "no rate of a failed batch is stored")
}

func TestExchangeRateRepositoryHistoryAndActive(t *testing.T) {
	ctx := context.Background()
	repo := NewExchangeRateRepository()
	require.NoError(t, repo.SaveExchangeRates(ctx,
		spot(t, "r3", "EUR", "USD", "1.10", day.AddDate(0, 0, 2)),
		spot(t, "r1", "EUR", "USD", "1.08", day),
		spot(t, "r2", "EUR", "USD", "1.09", day.AddDate(0, 0, 1)),
		spot(t, "g1", "GBP", "USD", "1.27", day),
	))

	history, err := repo.ListRateHistory(ctx, "EUR", "USD", domain.RateTypeSpot, day, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "r1", history[0].ExchangeRateID)
	assert.Equal(t, "r2", history[1].ExchangeRateID)

	active, err := repo.ListActiveRates(ctx, domain.RateTypeSpot, day)
	require.NoError(t, err)
	assert.Len(t, active, 2)

	stored := history[0]
	stored.Rate = decimal.RequireFromString("2")
	require.NoError(t, repo.UpdateExchangeRate(ctx, stored))
	got, err := repo.FindExchangeRateByID(ctx, "r1")
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("2").Equal(got.Rate))

	stored.ExchangeRateID = "missing"
	assert.ErrorIs(t, repo.UpdateExchangeRate(ctx, stored), apperrors.ErrNotFound)
}

func newTx(id, code string, amount string, date time.Time) domain.CurrencyTransaction {
	return domain.CurrencyTransaction{
		TransactionID:   id,
		Description:     "tx " + id,
		Amount:          decimal.RequireFromString(amount),
		CurrencyCode:    code,
		AmountInBase:    decimal.RequireFromString(amount).Mul(decimal.NewFromInt(2)),
		BaseCurrency:    "USD",
		TransactionDate: date,
		RateMethod:      domain.MethodManual,
		AuditFields:     domain.NewAuditFields("acct", date),
	}
}

func TestTransactionRepositoryPagination(t *testing.T) {
	ctx := context.Background()
	repo := NewTransactionRepository()
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.SaveTransaction(ctx, newTx(fmt.Sprintf("t%d", i), "EUR", "10", day.AddDate(0, 0, i))))
	}

	var seen []string
	var token *string
	for page := 0; page < 5; page++ {
		txs, next, err := repo.ListTransactions(ctx, domain.TransactionFilter{}, 2, token)
		require.NoError(t, err)
		for _, tx := range txs {
			seen = append(seen, tx.TransactionID)
		}
		if next == nil {
			break
		}
		token = next
	}
	assert.Equal(t, []string{"t4", "t3", "t2", "t1", "t0"}, seen)

	bad := "not-a-token"
	_, _, err := repo.ListTransactions(ctx, domain.TransactionFilter{}, 2, &bad)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestTransactionRepositoryUsage(t *testing.T) {
	ctx := context.Background()
	repo := NewTransactionRepository()
	require.NoError(t, repo.SaveTransaction(ctx, newTx("a", "EUR", "10", day)))
	require.NoError(t, repo.SaveTransaction(ctx, newTx("b", "EUR", "5.5", day.AddDate(0, 0, 3))))
	require.NoError(t, repo.SaveTransaction(ctx, newTx("c", "GBP", "1", day.AddDate(0, 0, 1))))
	assert.ErrorIs(t, repo.SaveTransaction(ctx, newTx("a", "EUR", "1", day)), apperrors.ErrDuplicate)

	count, err := repo.CountTransactionsByCurrency(ctx, "EUR")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	summary, err := repo.SummarizeByCurrency(ctx)
	require.NoError(t, err)
	require.Len(t, summary, 2)
	eur := summary[0]
	assert.Equal(t, "EUR", eur.CurrencyCode)
	assert.Equal(t, int64(2), eur.TransactionCount)
	assert.True(t, decimal.RequireFromString("15.5").Equal(eur.TotalVolume))
	assert.True(t, decimal.RequireFromString("31").Equal(eur.TotalInBase))
	require.NotNil(t, eur.LastUsedAt)
	assert.True(t, day.AddDate(0, 0, 3).Equal(*eur.LastUsedAt))

	filtered, _, err := repo.ListTransactions(ctx, domain.TransactionFilter{CurrencyCode: "GBP"}, 10, nil)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "c", filtered[0].TransactionID)
}
