package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ConversionRequest asks for an amount to be converted between two currencies.
type ConversionRequest struct {
	Amount   decimal.Decimal `json:"amount"`
	From     string          `json:"from"`
	To       string          `json:"to"`
	AsOf     time.Time       `json:"asOf"`
	RateType RateType        `json:"rateType"`
}

// ConversionResult is the outcome of a single conversion.
type ConversionResult struct {
	OriginalAmount  decimal.Decimal `json:"originalAmount"`
	From            string          `json:"from"`
	To              string          `json:"to"`
	ConvertedAmount decimal.Decimal `json:"convertedAmount"`
	FormattedAmount string          `json:"formattedAmount"` // converted amount with the target's minor units
	Rate            decimal.Decimal `json:"rate"`
	RateType        RateType        `json:"rateType"`
	Method          RateMethod      `json:"method"`
	ExchangeRateID  *string         `json:"exchangeRateID,omitempty"`
	Path            []string        `json:"path,omitempty"` // currencies visited by a cross rate
	AsOf            time.Time       `json:"asOf"`
}

// BulkConversionResult is one entry of a bulk conversion, in request order.
type BulkConversionResult struct {
	Index   int               `json:"index"`
	Success bool              `json:"success"`
	Result  *ConversionResult `json:"result,omitempty"`
	Error   string            `json:"error,omitempty"`
}

// RateQuote is a rate resolved for a pair, whether stored or computed.
type RateQuote struct {
	From     string          `json:"from"`
	To       string          `json:"to"`
	Rate     decimal.Decimal `json:"rate"`
	RateType RateType        `json:"rateType"`
	Method   RateMethod      `json:"method"`
	Path     []string        `json:"path"`
	Legs     []ExchangeRate  `json:"legs"`
	AsOf     time.Time       `json:"asOf"`
}

// AddRateResult is returned when a rate is stored.
type AddRateResult struct {
	Rate               ExchangeRate  `json:"rate"`
	Reciprocal         *ExchangeRate `json:"reciprocal,omitempty"`
	ConsistencyWarning string        `json:"consistencyWarning,omitempty"`
}

// RateEntry is one item of a bulk rate update.
type RateEntry struct {
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Rate             decimal.Decimal `json:"rate"`
	RateDate         time.Time       `json:"rateDate"`
	RateType         RateType        `json:"rateType"`
	Source           string          `json:"source"`
	ValidUntil       *time.Time      `json:"validUntil,omitempty"`
}

// BulkRateError describes why one entry of a bulk update was rejected.
type BulkRateError struct {
	Index            int    `json:"index"`
	FromCurrencyCode string `json:"fromCurrencyCode"`
	ToCurrencyCode   string `json:"toCurrencyCode"`
	Error            string `json:"error"`
}

// BulkRateWarning carries the consistency warning of a stored entry.
type BulkRateWarning struct {
	Index            int    `json:"index"`
	FromCurrencyCode string `json:"fromCurrencyCode"`
	ToCurrencyCode   string `json:"toCurrencyCode"`
	Warning          string `json:"warning"`
}

// BulkRateUpdateResult reports how many entries were stored, which failed,
// and which were stored despite disagreeing with their reverse quote.
type BulkRateUpdateResult struct {
	Updated  int               `json:"updated"`
	Errors   []BulkRateError   `json:"errors"`
	Warnings []BulkRateWarning `json:"warnings"`
}
