package utils

import (
	"github.com/SscSPs/fx_service/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FormatWithCurrencyPrecision formats an amount with the minor units of a currency,
// keeping trailing zeros.
// Example: amount 1085 with USD (2 decimal places) returns "1085.00"
// Example: amount 14705.88 with JPY (0 decimal places) returns "14706"
func FormatWithCurrencyPrecision(amount decimal.Decimal, currency domain.Currency) string {
	return FormatWithPrecision(amount, currency.DecimalPlaces)
}

// FormatWithPrecision formats an amount with the given number of decimal places.
// This is a convenience function when you only have the precision value
func FormatWithPrecision(amount decimal.Decimal, places int) string {
	return amount.StringFixed(int32(places))
}
