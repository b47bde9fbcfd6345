package dto

import (
	"time"

	"github.com/SscSPs/fx_service/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCurrencyRequest defines the data needed to register a new currency.
type CreateCurrencyRequest struct {
	CurrencyCode   string   `json:"currencyCode" binding:"required"`
	Name           string   `json:"name" binding:"required"`
	Symbol         string   `json:"symbol"`
	DecimalPlaces  *int     `json:"decimalPlaces"` // defaults to 2
	IsBaseCurrency bool     `json:"isBaseCurrency"`
	Countries      []string `json:"countries"`
}

// UpdateCurrencyRequest is a partial update; nil fields are left unchanged.
type UpdateCurrencyRequest struct {
	CurrencyCode   *string  `json:"currencyCode,omitempty"` // rejected if it differs from the path code
	Name           *string  `json:"name,omitempty"`
	Symbol         *string  `json:"symbol,omitempty"`
	DecimalPlaces  *int     `json:"decimalPlaces,omitempty"`
	IsBaseCurrency *bool    `json:"isBaseCurrency,omitempty"`
	IsActive       *bool    `json:"isActive,omitempty"`
	Countries      []string `json:"countries,omitempty"`
}

// CurrencyUsageResponse carries per-currency usage statistics.
type CurrencyUsageResponse struct {
	TransactionCount int64           `json:"transactionCount"`
	TotalVolume      decimal.Decimal `json:"totalVolume"`
	LastUsedAt       *time.Time      `json:"lastUsedAt,omitempty"`
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyCode   string                 `json:"currencyCode"`
	Name           string                 `json:"name"`
	Symbol         string                 `json:"symbol"`
	DecimalPlaces  int                    `json:"decimalPlaces"`
	IsBaseCurrency bool                   `json:"isBaseCurrency"`
	IsActive       bool                   `json:"isActive"`
	Countries      []string               `json:"countries"`
	Usage          *CurrencyUsageResponse `json:"usage,omitempty"`
	CreatedAt      time.Time              `json:"createdAt"`
	CreatedBy      string                 `json:"createdBy"`
	LastUpdatedAt  time.Time              `json:"lastUpdatedAt"`
	LastUpdatedBy  string                 `json:"lastUpdatedBy"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	countries := curr.Countries
	if countries == nil {
		countries = []string{}
	}
	return CurrencyResponse{
		CurrencyCode:   curr.CurrencyCode,
		Name:           curr.Name,
		Symbol:         curr.Symbol,
		DecimalPlaces:  curr.DecimalPlaces,
		IsBaseCurrency: curr.IsBaseCurrency,
		IsActive:       curr.IsActive,
		Countries:      countries,
		CreatedAt:      curr.CreatedAt,
		CreatedBy:      curr.CreatedBy,
		LastUpdatedAt:  curr.LastUpdatedAt,
		LastUpdatedBy:  curr.LastUpdatedBy,
	}
}

// ToListCurrencyResponse converts currencies with optional usage to response DTOs
func ToListCurrencyResponse(currencies []domain.CurrencyWithUsage) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, curr := range currencies {
		res[i] = ToCurrencyResponse(&curr.Currency)
		if curr.Usage != nil {
			res[i].Usage = &CurrencyUsageResponse{
				TransactionCount: curr.Usage.TransactionCount,
				TotalVolume:      curr.Usage.TotalVolume,
				LastUsedAt:       curr.Usage.LastUsedAt,
			}
		}
	}
	return res
}

// ListCurrenciesParams holds the query parameters of a currency listing.
type ListCurrenciesParams struct {
	ActiveOnly   bool   `form:"activeOnly"`
	Symbol       string `form:"symbol"`
	IncludeStats bool   `form:"includeStats"`
}

// ToFilter converts the query parameters into a domain filter.
func (p ListCurrenciesParams) ToFilter() domain.CurrencyFilter {
	return domain.CurrencyFilter{
		ActiveOnly:   p.ActiveOnly,
		Symbol:       p.Symbol,
		IncludeStats: p.IncludeStats,
	}
}
