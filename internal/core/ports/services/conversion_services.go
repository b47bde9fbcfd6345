package services

import (
	"context"

	"github.com/SscSPs/fx_service/internal/core/domain"
)

// ConversionSvc converts amounts between currencies.
type ConversionSvc interface {
	Convert(ctx context.Context, req domain.ConversionRequest) (*domain.ConversionResult, error)
}

// BulkConversionSvc converts a batch of amounts, isolating failures per entry.
type BulkConversionSvc interface {
	ConvertMany(ctx context.Context, reqs []domain.ConversionRequest) []domain.BulkConversionResult
}
