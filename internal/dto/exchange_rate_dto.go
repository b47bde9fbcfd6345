package dto

import (
	"time"

	"github.com/SscSPs/fx_service/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExchangeRateRequest defines the structure for creating a new exchange rate.
type CreateExchangeRateRequest struct {
	FromCurrencyCode    string          `json:"fromCurrencyCode" binding:"required,len=3"`
	ToCurrencyCode      string          `json:"toCurrencyCode" binding:"required,len=3"`
	Rate                decimal.Decimal `json:"rate" binding:"required"`
	RateDate            *time.Time      `json:"rateDate"` // defaults to now
	RateType            string          `json:"rateType" binding:"omitempty,oneof=spot forward"`
	Source              string          `json:"source"`
	ValidUntil          *time.Time      `json:"validUntil"`
	CalculateReciprocal bool            `json:"calculateReciprocal"`
}

// UpdateExchangeRateRequest is a partial update of a stored rate.
type UpdateExchangeRateRequest struct {
	Rate       *decimal.Decimal `json:"rate,omitempty"`
	Source     *string          `json:"source,omitempty"`
	ValidUntil *time.Time       `json:"validUntil,omitempty"`
	IsActive   *bool            `json:"isActive,omitempty"`
}

// RateEntryRequest is one rate in a bulk update.
type RateEntryRequest struct {
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Rate             decimal.Decimal `json:"rate"`
	RateDate         *time.Time      `json:"rateDate"`
	RateType         string          `json:"rateType"`
	Source           string          `json:"source"`
	ValidUntil       *time.Time      `json:"validUntil"`
}

// BulkUpdateExchangeRatesRequest carries a batch of rates; entries are validated individually.
type BulkUpdateExchangeRatesRequest struct {
	Rates []RateEntryRequest `json:"rates" binding:"required"`
}

// ToDomainRateEntries converts the request entries, defaulting missing dates to now.
// Unknown rate types are passed through so that the service reports them per entry.
func (r BulkUpdateExchangeRatesRequest) ToDomainRateEntries(now time.Time) []domain.RateEntry {
	entries := make([]domain.RateEntry, len(r.Rates))
	for i, e := range r.Rates {
		rateDate := now
		if e.RateDate != nil {
			rateDate = *e.RateDate
		}
		entries[i] = domain.RateEntry{
			FromCurrencyCode: e.FromCurrencyCode,
			ToCurrencyCode:   e.ToCurrencyCode,
			Rate:             e.Rate,
			RateDate:         rateDate,
			RateType:         domain.RateType(e.RateType),
			Source:           e.Source,
			ValidUntil:       e.ValidUntil,
		}
	}
	return entries
}

// ExchangeRateResponse defines the structure for API responses containing exchange rate details.
type ExchangeRateResponse struct {
	ExchangeRateID   string          `json:"exchangeRateID"`
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Rate             decimal.Decimal `json:"rate"`
	RateDate         time.Time       `json:"rateDate"`
	RateType         domain.RateType `json:"rateType"`
	Source           string          `json:"source"`
	ValidUntil       *time.Time      `json:"validUntil,omitempty"`
	IsActive         bool            `json:"isActive"`
	IsCalculated     bool            `json:"isCalculated"`
	CreatedAt        time.Time       `json:"createdAt"`
	CreatedBy        string          `json:"createdBy"`
	LastUpdatedAt    time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy    string          `json:"lastUpdatedBy"`
}

// AddExchangeRateResponse is returned by rate creation.
type AddExchangeRateResponse struct {
	Rate               ExchangeRateResponse  `json:"rate"`
	Reciprocal         *ExchangeRateResponse `json:"reciprocal,omitempty"`
	ConsistencyWarning string                `json:"consistencyWarning,omitempty"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to ExchangeRateResponse DTO
func ToExchangeRateResponse(rate *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		ExchangeRateID:   rate.ExchangeRateID,
		FromCurrencyCode: rate.FromCurrencyCode,
		ToCurrencyCode:   rate.ToCurrencyCode,
		Rate:             rate.Rate,
		RateDate:         rate.RateDate,
		RateType:         rate.RateType,
		Source:           rate.Source,
		ValidUntil:       rate.ValidUntil,
		IsActive:         rate.IsActive,
		IsCalculated:     rate.IsCalculated,
		CreatedAt:        rate.CreatedAt,
		CreatedBy:        rate.CreatedBy,
		LastUpdatedAt:    rate.LastUpdatedAt,
		LastUpdatedBy:    rate.LastUpdatedBy,
	}
}

// ToAddExchangeRateResponse converts the result of a rate creation.
func ToAddExchangeRateResponse(res *domain.AddRateResult) AddExchangeRateResponse {
	out := AddExchangeRateResponse{
		Rate:               ToExchangeRateResponse(&res.Rate),
		ConsistencyWarning: res.ConsistencyWarning,
	}
	if res.Reciprocal != nil {
		inv := ToExchangeRateResponse(res.Reciprocal)
		out.Reciprocal = &inv
	}
	return out
}

// RateHistoryResponse wraps a bucketed rate history.
type RateHistoryResponse struct {
	FromCurrencyCode string                    `json:"fromCurrencyCode"`
	ToCurrencyCode   string                    `json:"toCurrencyCode"`
	Period           domain.HistoryPeriod      `json:"period"`
	Points           []domain.RateHistoryPoint `json:"points"`
}
