package models

// Currency represents a row of the currencies table.
type Currency struct {
	CurrencyCode   string   `json:"currencyCode"` // Primary Key (e.g., "USD")
	Symbol         string   `json:"symbol"`       // e.g., "$"
	Name           string   `json:"name"`         // e.g., "US Dollar"
	DecimalPlaces  int      `json:"decimalPlaces"`
	IsBaseCurrency bool     `json:"isBaseCurrency"` // partial unique index allows one true row
	IsActive       bool     `json:"isActive"`
	Countries      []string `json:"countries"` // text[]
	AuditFields
}
