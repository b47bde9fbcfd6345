package mapping

import (
	"slices"

	"github.com/SscSPs/fx_service/internal/core/domain"
	"github.com/SscSPs/fx_service/internal/models"
)

// ToModelCurrency converts a domain Currency to a model Currency
func ToModelCurrency(d domain.Currency) models.Currency {
	countries := slices.Clone(d.Countries)
	if countries == nil {
		countries = []string{}
	}
	return models.Currency{
		CurrencyCode:   d.CurrencyCode,
		Symbol:         d.Symbol,
		Name:           d.Name,
		DecimalPlaces:  d.DecimalPlaces,
		IsBaseCurrency: d.IsBaseCurrency,
		IsActive:       d.IsActive,
		Countries:      countries,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCurrency converts a model Currency to a domain Currency
func ToDomainCurrency(m models.Currency) domain.Currency {
	return domain.Currency{
		CurrencyCode:   m.CurrencyCode,
		Symbol:         m.Symbol,
		Name:           m.Name,
		DecimalPlaces:  m.DecimalPlaces,
		IsBaseCurrency: m.IsBaseCurrency,
		IsActive:       m.IsActive,
		Countries:      domain.NormalizeCountries(m.Countries),
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCurrencySlice converts a slice of model Currencies to a slice of domain Currencies
func ToDomainCurrencySlice(ms []models.Currency) []domain.Currency {
	ds := make([]domain.Currency, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCurrency(m)
	}
	return ds
}
