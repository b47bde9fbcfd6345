package services_test

import (
	"testing"
	"time"

	"github.com/SscSPs/fx_service/internal/apperrors"
	"github.com/SscSPs/fx_service/internal/core/domain"
	"github.com/SscSPs/fx_service/internal/dto"
	"github.com/stretchr/testify/suite"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	f    *fxFixture
	rate *domain.AddRateResult
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.f = newFixture(suite.T())
	suite.f.standardCurrencies(suite.T())
	suite.rate = suite.f.addSpot(suite.T(), "EUR", "USD", "1.0850")
}

func (suite *TransactionServiceTestSuite) record(amount, currency string, opts ...func(*dto.CreateTransactionRequest)) (*domain.CurrencyTransaction, error) {
	req := dto.CreateTransactionRequest{
		Description:     "Conference hotel",
		Amount:          dec(amount),
		CurrencyCode:    currency,
		TransactionDate: suite.f.now.Add(-time.Hour),
		Category:        "travel",
		Department:      "sales",
	}
	for _, opt := range opts {
		opt(&req)
	}
	return suite.f.transactions.RecordTransaction(suite.f.ctx, req, accountantID)
}

func (suite *TransactionServiceTestSuite) TestRecord_ConvertsToBase() {
	tx, err := suite.record("1000", "EUR")

	suite.Require().NoError(err)
	suite.NotEmpty(tx.TransactionID)
	suite.Equal("USD", tx.BaseCurrency)
	suite.Equal("1085.00", tx.AmountInBase.StringFixed(2))
	suite.True(dec("1.0850").Equal(tx.ExchangeRate))
	suite.Equal(domain.MethodDirect, tx.RateMethod)
	suite.Require().NotNil(tx.ExchangeRateID)
	suite.Equal(suite.rate.Rate.ExchangeRateID, *tx.ExchangeRateID)
	suite.Require().Len(tx.AuditTrail, 1)
	suite.Equal(domain.AuditCreated, tx.AuditTrail[0].Action)
	suite.Equal(accountantID, tx.AuditTrail[0].Actor)
	suite.True(suite.f.now.Equal(tx.AuditTrail[0].Timestamp))

	stored, err := suite.f.transactions.GetTransaction(suite.f.ctx, tx.TransactionID)
	suite.Require().NoError(err)
	suite.Equal(tx.TransactionID, stored.TransactionID)
}

func (suite *TransactionServiceTestSuite) TestRecord_ManualRate() {
	manual := dec("1.1")
	tx, err := suite.record("1000", "EUR", func(r *dto.CreateTransactionRequest) { r.ExchangeRate = &manual })

	suite.Require().NoError(err)
	suite.Equal(domain.MethodManual, tx.RateMethod)
	suite.True(manual.Equal(tx.ExchangeRate))
	suite.Nil(tx.ExchangeRateID)
	suite.Equal("1100.00", tx.AmountInBase.StringFixed(2))
}

func (suite *TransactionServiceTestSuite) TestRecord_BaseCurrency() {
	tx, err := suite.record("42.50", "USD")

	suite.Require().NoError(err)
	suite.Equal(domain.MethodIdentity, tx.RateMethod)
	suite.True(dec("42.5").Equal(tx.AmountInBase))
}

func (suite *TransactionServiceTestSuite) TestRecord_UsesRateAsOfTransactionDate() {
	suite.f.addSpotOn(suite.T(), "GBP", "USD", "1.20", suite.f.now.AddDate(0, 0, -30))
	suite.f.addSpotOn(suite.T(), "GBP", "USD", "1.30", suite.f.now.AddDate(0, 0, -2))

	tx, err := suite.record("100", "GBP", func(r *dto.CreateTransactionRequest) {
		r.TransactionDate = suite.f.now.AddDate(0, 0, -10)
	})

	suite.Require().NoError(err)
	suite.Equal("120", tx.AmountInBase.String())
}

func (suite *TransactionServiceTestSuite) TestRecord_Validation() {
	_, err := suite.record("100", "EUR", func(r *dto.CreateTransactionRequest) {
		r.TransactionDate = suite.f.now.Add(time.Minute)
	})
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "future")

	_, err = suite.record("0", "EUR")
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.record("10.555", "EUR")
	suite.ErrorIs(err, apperrors.ErrValidation)

	negative := dec("-1")
	_, err = suite.record("10", "EUR", func(r *dto.CreateTransactionRequest) { r.ExchangeRate = &negative })
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.record("10", "EUR", func(r *dto.CreateTransactionRequest) { r.Description = "<script></script>" })
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.record("10", "XXX")
	suite.ErrorIs(err, apperrors.ErrNotFound)

	_, err = suite.record("10", "JPY")
	suite.ErrorIs(err, apperrors.ErrNotFound, "no JPY rate is available")
}

func (suite *TransactionServiceTestSuite) TestUpdate_CurrencyIsImmutable() {
	tx, err := suite.record("1000", "EUR")
	suite.Require().NoError(err)

	gbp := "GBP"
	_, err = suite.f.transactions.UpdateTransaction(suite.f.ctx, tx.TransactionID, dto.UpdateTransactionRequest{CurrencyCode: &gbp}, accountantID)
	suite.ErrorIs(err, apperrors.ErrValidation)

	same := "eur"
	category := "lodging"
	updated, err := suite.f.transactions.UpdateTransaction(suite.f.ctx, tx.TransactionID, dto.UpdateTransactionRequest{CurrencyCode: &same, Category: &category}, accountantID)
	suite.Require().NoError(err)
	suite.Equal("lodging", updated.Category)
}

func (suite *TransactionServiceTestSuite) TestUpdate_RateCorrection() {
	tx, err := suite.record("1000", "EUR")
	suite.Require().NoError(err)

	corrected := dec("1.09")
	updated, err := suite.f.transactions.UpdateTransaction(suite.f.ctx, tx.TransactionID, dto.UpdateTransactionRequest{ExchangeRate: &corrected}, adminID)

	suite.Require().NoError(err)
	suite.Equal("1090.00", updated.AmountInBase.StringFixed(2))
	suite.Equal(domain.MethodManual, updated.RateMethod)
	suite.Nil(updated.ExchangeRateID)
	suite.Require().Len(updated.AuditTrail, 2)
	last := updated.AuditTrail[1]
	suite.Equal(domain.AuditUpdated, last.Action)
	suite.Equal(adminID, last.Actor)
	suite.Equal([]string{"exchangeRate", "amountInBase"}, last.Changes)

	stored, err := suite.f.transactions.GetTransaction(suite.f.ctx, tx.TransactionID)
	suite.Require().NoError(err)
	suite.Len(stored.AuditTrail, 2)
	suite.Equal("EUR", stored.CurrencyCode)
}

func (suite *TransactionServiceTestSuite) TestUpdate_NoChanges() {
	tx, err := suite.record("1000", "EUR")
	suite.Require().NoError(err)

	category := tx.Category
	updated, err := suite.f.transactions.UpdateTransaction(suite.f.ctx, tx.TransactionID, dto.UpdateTransactionRequest{Category: &category}, adminID)
	suite.Require().NoError(err)
	suite.Len(updated.AuditTrail, 1, "no audit entry without changes")

	_, err = suite.f.transactions.UpdateTransaction(suite.f.ctx, "missing", dto.UpdateTransactionRequest{Category: &category}, adminID)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TransactionServiceTestSuite) TestList() {
	manual := dec("1.08")
	for i := 0; i < 5; i++ {
		_, err := suite.record("10", "EUR", func(r *dto.CreateTransactionRequest) {
			r.TransactionDate = suite.f.now.AddDate(0, 0, -i).Add(-time.Hour)
			r.ExchangeRate = &manual
		})
		suite.Require().NoError(err)
	}
	_, err := suite.record("10", "USD")
	suite.Require().NoError(err)

	page, next, err := suite.f.transactions.ListTransactions(suite.f.ctx, domain.TransactionFilter{CurrencyCode: "eur"}, 3, nil)
	suite.Require().NoError(err)
	suite.Len(page, 3)
	suite.Require().NotNil(next)

	rest, next, err := suite.f.transactions.ListTransactions(suite.f.ctx, domain.TransactionFilter{CurrencyCode: "EUR"}, 3, next)
	suite.Require().NoError(err)
	suite.Len(rest, 2)
	suite.Nil(next)
	suite.True(page[2].TransactionDate.After(rest[0].TransactionDate))

	bad := "%%%"
	_, _, err = suite.f.transactions.ListTransactions(suite.f.ctx, domain.TransactionFilter{}, 3, &bad)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestRegistryUsageFromTransactions() {
	_, err := suite.record("1000", "EUR")
	suite.Require().NoError(err)
	_, err = suite.record("500", "EUR")
	suite.Require().NoError(err)

	err = suite.f.currencies.DeleteCurrency(suite.f.ctx, "EUR", true, adminID)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.Contains(err.Error(), "referenced by transactions")

	suite.NoError(suite.f.currencies.DeleteCurrency(suite.f.ctx, "GBP", true, adminID))

	list, err := suite.f.currencies.ListCurrencies(suite.f.ctx, domain.CurrencyFilter{IncludeStats: true})
	suite.Require().NoError(err)
	var eurUsage *domain.CurrencyUsage
	for _, c := range list {
		if c.CurrencyCode == "EUR" {
			eurUsage = c.Usage
		}
	}
	suite.Require().NotNil(eurUsage)
	suite.Equal(int64(2), eurUsage.TransactionCount)
	suite.True(dec("1500").Equal(eurUsage.TotalVolume))
	suite.NotNil(eurUsage.LastUsedAt)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
