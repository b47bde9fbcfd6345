package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/fx_service/internal/core/domain"
	portssvc "github.com/SscSPs/fx_service/internal/core/ports/services"
	"github.com/SscSPs/fx_service/internal/core/services"
	"github.com/SscSPs/fx_service/internal/dto"
	"github.com/SscSPs/fx_service/internal/repositories/database/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const (
	adminID      = "admin-1"
	accountantID = "accountant-1"
)

var fixtureNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

// fxFixture wires the real services over in-memory repositories with a fixed clock.
type fxFixture struct {
	ctx          context.Context
	now          time.Time
	currencies   *services.CurrencyService
	rates        *services.ExchangeRateService
	converter    *services.ConversionService
	bulk         *services.BulkConversionService
	transactions *services.TransactionService
	reporting    portssvc.ReportingService
	rateRepo     *memory.ExchangeRateRepository
	txRepo       *memory.TransactionRepository
}

func newFixture(t *testing.T, rateOpts ...services.ExchangeRateServiceOption) *fxFixture {
	t.Helper()
	clock := services.WithClock(func() time.Time { return fixtureNow })

	rateRepo := memory.NewExchangeRateRepository()
	currencyRepo := memory.NewCurrencyRepository().CascadeTo(rateRepo)
	txRepo := memory.NewTransactionRepository()

	currencies := services.NewCurrencyService(currencyRepo, txRepo, clock)
	rates := services.NewExchangeRateService(rateRepo, currencies,
		append([]services.ExchangeRateServiceOption{services.WithRateServiceBase(clock)}, rateOpts...)...)
	converter := services.NewConversionService(currencies, rates, clock)

	return &fxFixture{
		ctx:          context.Background(),
		now:          fixtureNow,
		currencies:   currencies,
		rates:        rates,
		converter:    converter,
		bulk:         services.NewBulkConversionService(converter, 4),
		transactions: services.NewTransactionService(txRepo, currencies, converter, clock),
		reporting:    services.NewReportingService(txRepo, rateRepo, clock),
		rateRepo:     rateRepo,
		txRepo:       txRepo,
	}
}

func (f *fxFixture) addCurrency(t *testing.T, code string, decimalPlaces int, isBase bool) {
	t.Helper()
	_, err := f.currencies.CreateCurrency(f.ctx, dto.CreateCurrencyRequest{
		CurrencyCode:   code,
		Name:           code + " currency",
		DecimalPlaces:  &decimalPlaces,
		IsBaseCurrency: isBase,
	}, adminID)
	require.NoError(t, err)
}

// addSpot stores a spot rate dated one day before the fixture clock.
func (f *fxFixture) addSpot(t *testing.T, from, to, rate string) *domain.AddRateResult {
	t.Helper()
	return f.addSpotOn(t, from, to, rate, f.now.AddDate(0, 0, -1))
}

func (f *fxFixture) addSpotOn(t *testing.T, from, to, rate string, rateDate time.Time) *domain.AddRateResult {
	t.Helper()
	res, err := f.rates.CreateExchangeRate(f.ctx, dto.CreateExchangeRateRequest{
		FromCurrencyCode: from,
		ToCurrencyCode:   to,
		Rate:             decimal.RequireFromString(rate),
		RateDate:         &rateDate,
	}, accountantID)
	require.NoError(t, err)
	return res
}

// standardCurrencies registers USD (base), EUR, GBP and JPY.
func (f *fxFixture) standardCurrencies(t *testing.T) {
	t.Helper()
	f.addCurrency(t, "USD", 2, true)
	f.addCurrency(t, "EUR", 2, false)
	f.addCurrency(t, "GBP", 2, false)
	f.addCurrency(t, "JPY", 0, false)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
