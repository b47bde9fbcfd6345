package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/fx_service/internal/core/domain"
	"github.com/SscSPs/fx_service/internal/models"
)

// ToModelCurrencyTransaction converts a domain CurrencyTransaction to a model row,
// encoding the audit trail for the JSONB column.
func ToModelCurrencyTransaction(d domain.CurrencyTransaction) (models.CurrencyTransaction, error) {
	trail := d.AuditTrail
	if trail == nil {
		trail = []domain.AuditEntry{}
	}
	encoded, err := json.Marshal(trail)
	if err != nil {
		return models.CurrencyTransaction{}, fmt.Errorf("failed to encode audit trail of %s: %w", d.TransactionID, err)
	}
	d = d.Clone()
	return models.CurrencyTransaction{
		TransactionID:   d.TransactionID,
		Description:     d.Description,
		Amount:          d.Amount,
		CurrencyCode:    d.CurrencyCode,
		AmountInBase:    d.AmountInBase,
		BaseCurrency:    d.BaseCurrency,
		TransactionDate: d.TransactionDate,
		ExchangeRate:    d.ExchangeRate,
		ExchangeRateID:  d.ExchangeRateID,
		RateMethod:      string(d.RateMethod),
		Category:        d.Category,
		Department:      d.Department,
		AuditTrail:      encoded,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}, nil
}

// ToDomainCurrencyTransaction converts a model row back to a domain CurrencyTransaction.
func ToDomainCurrencyTransaction(m models.CurrencyTransaction) (domain.CurrencyTransaction, error) {
	var trail []domain.AuditEntry
	if len(m.AuditTrail) > 0 {
		if err := json.Unmarshal(m.AuditTrail, &trail); err != nil {
			return domain.CurrencyTransaction{}, fmt.Errorf("failed to decode audit trail of %s: %w", m.TransactionID, err)
		}
	}
	d := domain.CurrencyTransaction{
		TransactionID:   m.TransactionID,
		Description:     m.Description,
		Amount:          m.Amount,
		CurrencyCode:    m.CurrencyCode,
		AmountInBase:    m.AmountInBase,
		BaseCurrency:    m.BaseCurrency,
		TransactionDate: m.TransactionDate,
		ExchangeRate:    m.ExchangeRate,
		ExchangeRateID:  m.ExchangeRateID,
		RateMethod:      domain.RateMethod(m.RateMethod),
		Category:        m.Category,
		Department:      m.Department,
		AuditTrail:      trail,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
	return d.Clone(), nil
}
