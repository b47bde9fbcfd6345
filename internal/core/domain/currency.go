package domain

import (
	"fmt"
	"slices"
	"strings"

	"github.com/SscSPs/fx_service/internal/apperrors"
	"github.com/shopspring/decimal"
)

const (
	// CurrencyCodeLength is the fixed length of an ISO 4217 style code.
	CurrencyCodeLength = 3
	// MaxDecimalPlaces is the largest minor-unit precision a currency may declare.
	MaxDecimalPlaces = 4
)

// Currency represents a supported currency in the domain.
type Currency struct {
	CurrencyCode   string   `json:"currencyCode"` // Primary Key (e.g., "USD"), immutable
	Name           string   `json:"name"`         // e.g., "US Dollar"
	Symbol         string   `json:"symbol"`       // e.g., "$"
	DecimalPlaces  int      `json:"decimalPlaces"`
	IsBaseCurrency bool     `json:"isBaseCurrency"`
	IsActive       bool     `json:"isActive"`
	Countries      []string `json:"countries"` // ISO 3166-1 alpha-2
	AuditFields
}

// NewCurrency builds an active currency and validates its invariants.
func NewCurrency(code, name, symbol string, decimalPlaces int, isBase bool, countries []string) (Currency, error) {
	c := Currency{
		CurrencyCode:   strings.ToUpper(strings.TrimSpace(code)),
		Name:           strings.TrimSpace(name),
		Symbol:         strings.TrimSpace(symbol),
		DecimalPlaces:  decimalPlaces,
		IsBaseCurrency: isBase,
		IsActive:       true,
		Countries:      NormalizeCountries(countries),
	}
	if err := c.Validate(); err != nil {
		return Currency{}, err
	}
	return c, nil
}

// Validate checks the structural invariants of a currency.
func (c Currency) Validate() error {
	if len(c.CurrencyCode) != CurrencyCodeLength {
		return apperrors.NewValidationError("currency code must be exactly %d characters, got %q", CurrencyCodeLength, c.CurrencyCode)
	}
	if c.Name == "" {
		return apperrors.NewValidationError("currency name is required")
	}
	if err := ValidateDecimalPlaces(c.DecimalPlaces); err != nil {
		return err
	}
	if c.IsBaseCurrency && !c.IsActive {
		return apperrors.NewValidationError("base currency %s cannot be inactive", c.CurrencyCode)
	}
	return nil
}

// ValidateDecimalPlaces ensures precision is within [0, MaxDecimalPlaces].
func ValidateDecimalPlaces(dp int) error {
	if dp < 0 || dp > MaxDecimalPlaces {
		return apperrors.NewValidationError("decimal places must be between 0 and %d, got %d", MaxDecimalPlaces, dp)
	}
	return nil
}

// UsesCountry reports whether the currency is mapped to the given country.
func (c Currency) UsesCountry(country string) bool {
	return slices.Contains(c.Countries, strings.ToUpper(country))
}

// Clone returns a copy that shares no slices with the receiver.
func (c Currency) Clone() Currency {
	c.Countries = slices.Clone(c.Countries)
	return c
}

func (c Currency) String() string {
	return fmt.Sprintf("%s (%s)", c.CurrencyCode, c.Name)
}

// NormalizeCountries upper-cases, trims and de-duplicates country codes, keeping them sorted.
func NormalizeCountries(countries []string) []string {
	out := make([]string, 0, len(countries))
	for _, country := range countries {
		country = strings.ToUpper(strings.TrimSpace(country))
		if country == "" || slices.Contains(out, country) {
			continue
		}
		out = append(out, country)
	}
	slices.Sort(out)
	return out
}

// ExceedsPrecision reports whether amount has more fractional digits than the currency allows.
func (c Currency) ExceedsPrecision(amount decimal.Decimal) bool {
	return !amount.Equal(amount.Truncate(int32(c.DecimalPlaces)))
}

// RoundAmount rounds half away from zero to the currency's decimal places.
func (c Currency) RoundAmount(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(int32(c.DecimalPlaces))
}
