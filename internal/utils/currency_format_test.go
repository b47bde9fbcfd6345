package utils

import (
	"testing"

	"github.com/SscSPs/fx_service/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatWithCurrencyPrecision(t *testing.T) {
	usd := domain.Currency{CurrencyCode: "USD", DecimalPlaces: 2}
	jpy := domain.Currency{CurrencyCode: "JPY", DecimalPlaces: 0}

	assert.Equal(t, "1085.00", FormatWithCurrencyPrecision(decimal.RequireFromString("1085"), usd))
	assert.Equal(t, "0.50", FormatWithCurrencyPrecision(decimal.RequireFromString("0.5"), usd))
	assert.Equal(t, "14706", FormatWithCurrencyPrecision(decimal.RequireFromString("14705.88"), jpy))
	assert.Equal(t, "12.3457", FormatWithPrecision(decimal.RequireFromString("12.34567"), 4))
}
