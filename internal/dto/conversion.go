package dto

import (
	"time"

	"github.com/SscSPs/fx_service/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ConvertRequest asks for a single conversion.
type ConvertRequest struct {
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	FromCurrency   string          `json:"fromCurrency" binding:"required"`
	ToCurrency     string          `json:"toCurrency" binding:"required"`
	RateDate       *time.Time      `json:"rateDate"` // defaults to now
	ConversionType string          `json:"conversionType" binding:"omitempty,oneof=spot forward"`
}

// ToDomain converts the request, defaulting the rate date to now.
func (r ConvertRequest) ToDomain(now time.Time) domain.ConversionRequest {
	asOf := now
	if r.RateDate != nil {
		asOf = *r.RateDate
	}
	return domain.ConversionRequest{
		Amount:   r.Amount,
		From:     r.FromCurrency,
		To:       r.ToCurrency,
		AsOf:     asOf,
		RateType: domain.RateType(r.ConversionType),
	}
}

// BulkConvertRequest carries conversions that are evaluated independently.
// Entries are not bound individually so that a malformed entry fails on its own.
type BulkConvertRequest struct {
	Conversions []ConvertRequest `json:"conversions" binding:"required"`
}

// BulkConvertResponse keeps results in request order.
type BulkConvertResponse struct {
	Results   []domain.BulkConversionResult `json:"results"`
	Succeeded int                           `json:"succeeded"`
	Failed    int                           `json:"failed"`
}

// ToBulkConvertResponse counts successes and failures.
func ToBulkConvertResponse(results []domain.BulkConversionResult) BulkConvertResponse {
	resp := BulkConvertResponse{Results: results}
	for _, r := range results {
		if r.Success {
			resp.Succeeded++
		} else {
			resp.Failed++
		}
	}
	return resp
}
