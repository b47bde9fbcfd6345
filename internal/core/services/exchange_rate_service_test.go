package services_test

import (
	"testing"
	"time"

	"github.com/SscSPs/fx_service/internal/apperrors"
	"github.com/SscSPs/fx_service/internal/core/domain"
	"github.com/SscSPs/fx_service/internal/core/services"
	"github.com/SscSPs/fx_service/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ExchangeRateServiceTestSuite struct {
	suite.Suite
	f *fxFixture
}

func (suite *ExchangeRateServiceTestSuite) SetupTest() {
	suite.f = newFixture(suite.T())
	suite.f.standardCurrencies(suite.T())
}

func (suite *ExchangeRateServiceTestSuite) TestCreateExchangeRate_Success() {
	f := suite.f
	res, err := f.rates.CreateExchangeRate(f.ctx, dto.CreateExchangeRateRequest{
		FromCurrencyCode: "eur",
		ToCurrencyCode:   "usd",
		Rate:             dec("1.0850"),
	}, accountantID)

	suite.Require().NoError(err)
	suite.NotEmpty(res.Rate.ExchangeRateID)
	suite.Equal("EUR", res.Rate.FromCurrencyCode)
	suite.Equal(domain.RateTypeSpot, res.Rate.RateType)
	suite.Equal("manual", res.Rate.Source)
	suite.True(f.now.Equal(res.Rate.RateDate), "rate date defaults to now")
	suite.Nil(res.Reciprocal)
	suite.Empty(res.ConsistencyWarning)
	suite.Equal(accountantID, res.Rate.CreatedBy)
}

func (suite *ExchangeRateServiceTestSuite) TestCreateExchangeRate_WithReciprocal() {
	f := suite.f
	res, err := f.rates.CreateExchangeRate(f.ctx, dto.CreateExchangeRateRequest{
		FromCurrencyCode:    "USD",
		ToCurrencyCode:      "EUR",
		Rate:                dec("0.8"),
		CalculateReciprocal: true,
	}, accountantID)

	suite.Require().NoError(err)
	suite.Require().NotNil(res.Reciprocal)
	suite.True(dec("1.25").Equal(res.Reciprocal.Rate))
	suite.True(res.Reciprocal.IsCalculated)
	suite.Equal(domain.SourceCalculated, res.Reciprocal.Source)

	stored, err := f.rates.GetExchangeRate(f.ctx, "EUR", "USD", f.now, domain.RateTypeSpot)
	suite.Require().NoError(err)
	suite.Equal(res.Reciprocal.ExchangeRateID, stored.ExchangeRateID)
}

func (suite *ExchangeRateServiceTestSuite) TestCreateExchangeRate_Validation() {
	f := suite.f
	past := f.now.AddDate(0, 0, -1)
	cases := map[string]dto.CreateExchangeRateRequest{
		"same currency":          {FromCurrencyCode: "USD", ToCurrencyCode: "USD", Rate: dec("1")},
		"zero rate":              {FromCurrencyCode: "USD", ToCurrencyCode: "EUR", Rate: decimal.Zero},
		"negative rate":          {FromCurrencyCode: "USD", ToCurrencyCode: "EUR", Rate: dec("-1")},
		"unknown currency":       {FromCurrencyCode: "USD", ToCurrencyCode: "XXX", Rate: dec("1")},
		"forward without expiry": {FromCurrencyCode: "USD", ToCurrencyCode: "EUR", Rate: dec("1"), RateType: "forward"},
		"forward expiring early": {FromCurrencyCode: "USD", ToCurrencyCode: "EUR", Rate: dec("1"), RateType: "forward", ValidUntil: &past},
		"unknown rate type":      {FromCurrencyCode: "USD", ToCurrencyCode: "EUR", Rate: dec("1"), RateType: "option"},
	}
	for name, req := range cases {
		suite.Run(name, func() {
			_, err := f.rates.CreateExchangeRate(f.ctx, req, accountantID)
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
}

func (suite *ExchangeRateServiceTestSuite) TestCreateExchangeRate_InactiveCurrency() {
	f := suite.f
	suite.Require().NoError(f.currencies.DeleteCurrency(f.ctx, "GBP", false, adminID))

	_, err := f.rates.CreateExchangeRate(f.ctx, dto.CreateExchangeRateRequest{
		FromCurrencyCode: "GBP", ToCurrencyCode: "USD", Rate: dec("1.27"),
	}, accountantID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "inactive")
}

func (suite *ExchangeRateServiceTestSuite) TestConsistencyWarning() {
	f := suite.f
	f.addSpot(suite.T(), "EUR", "USD", "1.0850")

	// 1/1.0850 = 0.92166; 0.9220 is within 0.5%.
	near := f.addSpot(suite.T(), "USD", "EUR", "0.9220")
	suite.Empty(near.ConsistencyWarning)

	far := f.addSpotOn(suite.T(), "USD", "EUR", "0.9500", f.now.Add(-time.Hour))
	suite.NotEmpty(far.ConsistencyWarning)
	suite.Contains(far.ConsistencyWarning, "deviates")

	stored, err := f.rates.GetExchangeRate(f.ctx, "USD", "EUR", f.now, domain.RateTypeSpot)
	suite.Require().NoError(err)
	suite.True(dec("0.95").Equal(stored.Rate), "an inconsistent rate is still stored")
}

func (suite *ExchangeRateServiceTestSuite) TestConsistencyWarning_BackDatedRate() {
	f := suite.f
	f.addSpotOn(suite.T(), "EUR", "USD", "1.0850", f.now.Add(-time.Hour))

	// Dated before the EUR->USD quote it contradicts.
	res := f.addSpotOn(suite.T(), "USD", "EUR", "0.5000", f.now.Add(-2*time.Hour))
	suite.Contains(res.ConsistencyWarning, "deviates")
}

func (suite *ExchangeRateServiceTestSuite) TestConsistencyTolerance_Configurable() {
	f := newFixture(suite.T(), services.WithConsistencyTolerance(dec("0.05")))
	f.standardCurrencies(suite.T())
	f.addSpot(suite.T(), "EUR", "USD", "1.0850")

	res := f.addSpot(suite.T(), "USD", "EUR", "0.9500")
	suite.Empty(res.ConsistencyWarning)
}

func (suite *ExchangeRateServiceTestSuite) TestGetExchangeRate_MostRecentAsOf() {
	f := suite.f
	older := f.addSpotOn(suite.T(), "EUR", "USD", "1.08", f.now.AddDate(0, 0, -10))
	newer := f.addSpotOn(suite.T(), "EUR", "USD", "1.09", f.now.AddDate(0, 0, -2))

	got, err := f.rates.GetExchangeRate(f.ctx, "EUR", "USD", f.now, domain.RateTypeSpot)
	suite.Require().NoError(err)
	suite.Equal(newer.Rate.ExchangeRateID, got.ExchangeRateID)

	got, err = f.rates.GetExchangeRate(f.ctx, "EUR", "USD", f.now.AddDate(0, 0, -5), domain.RateTypeSpot)
	suite.Require().NoError(err)
	suite.Equal(older.Rate.ExchangeRateID, got.ExchangeRateID)

	_, err = f.rates.GetExchangeRate(f.ctx, "EUR", "USD", f.now.AddDate(0, 0, -20), domain.RateTypeSpot)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ExchangeRateServiceTestSuite) TestGetCrossRate() {
	f := suite.f
	f.addSpot(suite.T(), "EUR", "USD", "1.0850")
	f.addSpot(suite.T(), "USD", "JPY", "147.06")

	quote, err := f.rates.GetCrossRate(f.ctx, "EUR", "JPY", f.now, domain.RateTypeSpot)
	suite.Require().NoError(err)
	suite.Equal(domain.MethodCalculated, quote.Method)
	suite.Equal([]string{"EUR", "USD", "JPY"}, quote.Path)
	suite.True(dec("1.0850").Mul(dec("147.06")).Equal(quote.Rate))

	reverse, err := f.rates.GetCrossRate(f.ctx, "JPY", "EUR", f.now, domain.RateTypeSpot)
	suite.Require().NoError(err)
	suite.Equal([]string{"JPY", "USD", "EUR"}, reverse.Path, "stored rates are traversed in both directions")

	_, err = f.rates.GetCrossRate(f.ctx, "EUR", "GBP", f.now, domain.RateTypeSpot)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ExchangeRateServiceTestSuite) TestGetCrossRate_PrefersBaseCurrency() {
	f := suite.f
	f.addSpot(suite.T(), "EUR", "GBP", "0.85")
	f.addSpot(suite.T(), "GBP", "JPY", "190")
	f.addSpot(suite.T(), "EUR", "USD", "1.08")
	f.addSpot(suite.T(), "USD", "JPY", "150")

	quote, err := f.rates.GetCrossRate(f.ctx, "EUR", "JPY", f.now, domain.RateTypeSpot)
	suite.Require().NoError(err)
	suite.Equal([]string{"EUR", "USD", "JPY"}, quote.Path)
}

func (suite *ExchangeRateServiceTestSuite) TestGetCrossRate_SkipsInactiveBridge() {
	f := suite.f
	f.addSpot(suite.T(), "EUR", "GBP", "0.85")
	f.addSpot(suite.T(), "GBP", "JPY", "190")
	suite.Require().NoError(f.currencies.DeleteCurrency(f.ctx, "GBP", false, adminID))

	_, err := f.rates.GetCrossRate(f.ctx, "EUR", "JPY", f.now, domain.RateTypeSpot)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ExchangeRateServiceTestSuite) TestGetCrossRate_MaxLegs() {
	f := newFixture(suite.T(), services.WithMaxCrossLegs(3))
	f.standardCurrencies(suite.T())
	f.addSpot(suite.T(), "EUR", "GBP", "0.85")
	f.addSpot(suite.T(), "GBP", "USD", "1.27")
	f.addSpot(suite.T(), "USD", "JPY", "150")

	quote, err := f.rates.GetCrossRate(f.ctx, "EUR", "JPY", f.now, domain.RateTypeSpot)
	suite.Require().NoError(err)
	suite.Equal([]string{"EUR", "GBP", "USD", "JPY"}, quote.Path)

	suite.f.addSpot(suite.T(), "EUR", "GBP", "0.85")
	suite.f.addSpot(suite.T(), "GBP", "USD", "1.27")
	suite.f.addSpot(suite.T(), "USD", "JPY", "150")
	_, err = suite.f.rates.GetCrossRate(suite.f.ctx, "EUR", "JPY", suite.f.now, domain.RateTypeSpot)
	suite.ErrorIs(err, apperrors.ErrNotFound, "default search stops at two legs")
}

func (suite *ExchangeRateServiceTestSuite) TestUpdateExchangeRate() {
	f := suite.f
	res := f.addSpot(suite.T(), "EUR", "USD", "1.08")

	newRate := dec("1.09")
	updated, err := f.rates.UpdateExchangeRate(f.ctx, res.Rate.ExchangeRateID, dto.UpdateExchangeRateRequest{Rate: &newRate}, adminID)
	suite.Require().NoError(err)
	suite.True(newRate.Equal(updated.Rate))
	suite.Equal(adminID, updated.LastUpdatedBy)

	zero := decimal.Zero
	_, err = f.rates.UpdateExchangeRate(f.ctx, res.Rate.ExchangeRateID, dto.UpdateExchangeRateRequest{Rate: &zero}, adminID)
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = f.rates.UpdateExchangeRate(f.ctx, "missing", dto.UpdateExchangeRateRequest{Rate: &newRate}, adminID)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ExchangeRateServiceTestSuite) TestUpdateExchangeRate_ExpiredForwardIsImmutable() {
	f := suite.f
	rateDate := f.now.AddDate(0, -2, 0)
	validUntil := f.now.AddDate(0, -1, 0)
	res, err := f.rates.CreateExchangeRate(f.ctx, dto.CreateExchangeRateRequest{
		FromCurrencyCode: "USD",
		ToCurrencyCode:   "EUR",
		Rate:             dec("0.91"),
		RateDate:         &rateDate,
		RateType:         "forward",
		ValidUntil:       &validUntil,
	}, accountantID)
	suite.Require().NoError(err)

	newRate := dec("0.92")
	_, err = f.rates.UpdateExchangeRate(f.ctx, res.Rate.ExchangeRateID, dto.UpdateExchangeRateRequest{Rate: &newRate}, accountantID)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorIs(err, apperrors.ErrRateExpired)
	suite.Contains(err.Error(), "expired")
}

func (suite *ExchangeRateServiceTestSuite) TestBulkUpdateExchangeRates_PartialSuccess() {
	f := suite.f
	yesterday := f.now.AddDate(0, 0, -1)
	entries := []domain.RateEntry{
		{FromCurrencyCode: "EUR", ToCurrencyCode: "USD", Rate: dec("1.08"), RateDate: yesterday},
		{FromCurrencyCode: "GBP", ToCurrencyCode: "USD", Rate: dec("1.27"), RateDate: yesterday},
		{FromCurrencyCode: "USD", ToCurrencyCode: "XXX", Rate: dec("2"), RateDate: yesterday},
		{FromCurrencyCode: "USD", ToCurrencyCode: "JPY", Rate: dec("147.06"), RateDate: yesterday},
		{FromCurrencyCode: "USD", ToCurrencyCode: "USD", Rate: dec("1"), RateDate: yesterday},
		{FromCurrencyCode: "EUR", ToCurrencyCode: "GBP", Rate: dec("-0.85"), RateDate: yesterday},
	}

	result, err := f.rates.BulkUpdateExchangeRates(f.ctx, entries, accountantID)

	suite.Require().NoError(err)
	suite.Equal(3, result.Updated)
	suite.Require().Len(result.Errors, 3)
	suite.Equal([]int{2, 4, 5}, []int{result.Errors[0].Index, result.Errors[1].Index, result.Errors[2].Index})
	suite.Equal("XXX", result.Errors[0].ToCurrencyCode)

	_, err = f.rates.GetExchangeRate(f.ctx, "USD", "JPY", f.now, domain.RateTypeSpot)
	suite.NoError(err, "valid entries are stored despite failures elsewhere in the batch")
}

func (suite *ExchangeRateServiceTestSuite) TestBulkUpdateExchangeRates_Empty() {
	result, err := suite.f.rates.BulkUpdateExchangeRates(suite.f.ctx, nil, accountantID)
	suite.Require().NoError(err)
	suite.Equal(0, result.Updated)
	suite.NotNil(result.Errors)
	suite.Empty(result.Errors)
	suite.NotNil(result.Warnings)
	suite.Empty(result.Warnings)
}

func (suite *ExchangeRateServiceTestSuite) TestBulkUpdateExchangeRates_ReportsConsistencyWarnings() {
	f := suite.f
	yesterday := f.now.AddDate(0, 0, -1)
	entries := []domain.RateEntry{
		{FromCurrencyCode: "EUR", ToCurrencyCode: "USD", Rate: dec("1.085"), RateDate: yesterday},
		{FromCurrencyCode: "USD", ToCurrencyCode: "EUR", Rate: dec("0.5"), RateDate: yesterday},
	}

	result, err := f.rates.BulkUpdateExchangeRates(f.ctx, entries, accountantID)

	suite.Require().NoError(err)
	suite.Equal(2, result.Updated, "a disagreeing quote is still stored")
	suite.Empty(result.Errors)
	suite.Require().Len(result.Warnings, 1)
	suite.Equal(1, result.Warnings[0].Index)
	suite.Equal("USD", result.Warnings[0].FromCurrencyCode)
	suite.Equal("EUR", result.Warnings[0].ToCurrencyCode)
	suite.Contains(result.Warnings[0].Warning, "deviates")
}

func TestExchangeRateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExchangeRateServiceTestSuite))
}
