package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate represents a row of the exchange_rates table.
type ExchangeRate struct {
	ExchangeRateID   string          `json:"exchangeRateID"`   // Primary Key (e.g., UUID)
	FromCurrencyCode string          `json:"fromCurrencyCode"` // FK -> Currency.currencyCode
	ToCurrencyCode   string          `json:"toCurrencyCode"`   // FK -> Currency.currencyCode
	Rate             decimal.Decimal `json:"rate"`             // NUMERIC
	RateDate         time.Time       `json:"rateDate"`
	RateType         string          `json:"rateType"` // spot | forward
	Source           string          `json:"source"`
	ValidUntil       *time.Time      `json:"validUntil"` // Nullable, forward rates only
	IsActive         bool            `json:"isActive"`
	IsCalculated     bool            `json:"isCalculated"`
	AuditFields
}
