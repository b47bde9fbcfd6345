package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/fx_service/internal/core/domain"
	portssvc "github.com/SscSPs/fx_service/internal/core/ports/services"
	"golang.org/x/sync/errgroup"
)

// DefaultBulkConversionWorkers bounds how many conversions run at once.
const DefaultBulkConversionWorkers = 8

// BulkConversionService fans conversions out to a bounded worker pool.
type BulkConversionService struct {
	BaseService
	converter portssvc.ConversionSvc
	workers   int
}

// NewBulkConversionService creates a new BulkConversionService. workers <= 0 selects the default.
func NewBulkConversionService(converter portssvc.ConversionSvc, workers int) *BulkConversionService {
	if workers <= 0 {
		workers = DefaultBulkConversionWorkers
	}
	return &BulkConversionService{
		BaseService: newBaseService(),
		converter:   converter,
		workers:     workers,
	}
}

var _ portssvc.BulkConversionSvc = (*BulkConversionService)(nil)

// ConvertMany converts every request and returns one result per request in
// request order. A failing request never affects the others.
func (s *BulkConversionService) ConvertMany(ctx context.Context, reqs []domain.ConversionRequest) []domain.BulkConversionResult {
	results := make([]domain.BulkConversionResult, len(reqs))

	var g errgroup.Group
	g.SetLimit(s.workers)
	for i, req := range reqs {
		g.Go(func() error {
			res, err := s.converter.Convert(ctx, req)
			if err != nil {
				results[i] = domain.BulkConversionResult{Index: i, Error: err.Error()}
				return nil
			}
			results[i] = domain.BulkConversionResult{Index: i, Success: true, Result: res}
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, r := range results {
		if !r.Success {
			failed++
		}
	}
	s.LogInfo(ctx, "Bulk conversion finished",
		slog.Int("requested", len(reqs)),
		slog.Int("failed", failed))
	return results
}
