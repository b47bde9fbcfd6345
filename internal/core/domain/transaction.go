package domain

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// AuditAction names an entry in a transaction's audit trail.
type AuditAction string

const (
	AuditCreated AuditAction = "created"
	AuditUpdated AuditAction = "updated"
)

// AuditEntry records who did what to a transaction and when.
type AuditEntry struct {
	Action    AuditAction `json:"action"`
	Actor     string      `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Changes   []string    `json:"changes,omitempty"` // names of the fields that changed
}

// CurrencyTransaction is a booked amount in a source currency together with
// its value in the base currency and the rate that produced it.
type CurrencyTransaction struct {
	TransactionID   string          `json:"transactionID"` // Primary Key (e.g., UUID)
	Description     string          `json:"description"`
	Amount          decimal.Decimal `json:"amount"`
	CurrencyCode    string          `json:"currencyCode"` // Immutable after creation
	AmountInBase    decimal.Decimal `json:"amountInBase"`
	BaseCurrency    string          `json:"baseCurrency"`
	TransactionDate time.Time       `json:"transactionDate"`
	ExchangeRate    decimal.Decimal `json:"exchangeRate"`
	ExchangeRateID  *string         `json:"exchangeRateID,omitempty"` // Nullable, stored rate when one was used
	RateMethod      RateMethod      `json:"rateMethod"`
	Category        string          `json:"category"`
	Department      string          `json:"department"`
	AuditTrail      []AuditEntry    `json:"auditTrail"`
	AuditFields
}

// Clone returns a copy that shares no slices or pointers with the receiver.
func (t CurrencyTransaction) Clone() CurrencyTransaction {
	if t.ExchangeRateID != nil {
		id := *t.ExchangeRateID
		t.ExchangeRateID = &id
	}
	trail := make([]AuditEntry, len(t.AuditTrail))
	for i, e := range t.AuditTrail {
		e.Changes = slices.Clone(e.Changes)
		trail[i] = e
	}
	t.AuditTrail = trail
	return t
}

// TransactionFilter narrows transaction listings. Zero values mean "any".
type TransactionFilter struct {
	CurrencyCode string
	Category     string
	Department   string
	From         *time.Time
	To           *time.Time
}

// Matches reports whether the transaction satisfies the filter.
func (f TransactionFilter) Matches(t CurrencyTransaction) bool {
	if f.CurrencyCode != "" && t.CurrencyCode != f.CurrencyCode {
		return false
	}
	if f.Category != "" && t.Category != f.Category {
		return false
	}
	if f.Department != "" && t.Department != f.Department {
		return false
	}
	if f.From != nil && t.TransactionDate.Before(*f.From) {
		return false
	}
	if f.To != nil && t.TransactionDate.After(*f.To) {
		return false
	}
	return true
}
