package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyTransaction represents a row of the currency_transactions table.
type CurrencyTransaction struct {
	TransactionID   string          `json:"transactionID"` // Primary Key (e.g., UUID)
	Description     string          `json:"description"`
	Amount          decimal.Decimal `json:"amount"`
	CurrencyCode    string          `json:"currencyCode"` // FK -> Currency.currencyCode
	AmountInBase    decimal.Decimal `json:"amountInBase"`
	BaseCurrency    string          `json:"baseCurrency"` // FK -> Currency.currencyCode
	TransactionDate time.Time       `json:"transactionDate"`
	ExchangeRate    decimal.Decimal `json:"exchangeRate"`
	ExchangeRateID  *string         `json:"exchangeRateID"` // Nullable, no FK so that rate clean-up never touches bookings
	RateMethod      string          `json:"rateMethod"`
	Category        string          `json:"category"`
	Department      string          `json:"department"`
	AuditTrail      []byte          `json:"auditTrail"` // JSONB
	AuditFields
}
