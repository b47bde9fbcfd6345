package services_test

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/SscSPs/fx_service/internal/core/domain"
	"github.com/SscSPs/fx_service/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingConverter echoes the amount and fails every third request.
type countingConverter struct {
	calls atomic.Int32
}

func (c *countingConverter) Convert(_ context.Context, req domain.ConversionRequest) (*domain.ConversionResult, error) {
	c.calls.Add(1)
	if req.Amount.IntPart()%3 == 0 {
		return nil, errors.New("boom")
	}
	return &domain.ConversionResult{OriginalAmount: req.Amount, ConvertedAmount: req.Amount}, nil
}

func TestConvertMany_IsolatesFailures(t *testing.T) {
	f := newFixture(t)
	f.standardCurrencies(t)
	f.addSpot(t, "EUR", "USD", "1.0850")

	results := f.bulk.ConvertMany(f.ctx, []domain.ConversionRequest{
		{Amount: dec("1000"), From: "EUR", To: "USD", AsOf: f.now},
		{Amount: dec("10"), From: "XXX", To: "USD", AsOf: f.now},
	})

	require.Len(t, results, 2)
	assert.Equal(t, 0, results[0].Index)
	assert.True(t, results[0].Success)
	require.NotNil(t, results[0].Result)
	assert.Equal(t, "1085.00", results[0].Result.ConvertedAmount.StringFixed(2))

	assert.Equal(t, 1, results[1].Index)
	assert.False(t, results[1].Success)
	assert.Nil(t, results[1].Result)
	assert.Contains(t, results[1].Error, "XXX")
}

func TestConvertMany_PreservesOrder(t *testing.T) {
	converter := &countingConverter{}

	reqs := make([]domain.ConversionRequest, 40)
	for i := range reqs {
		reqs[i] = domain.ConversionRequest{Amount: dec(fmt.Sprint(i + 1)), From: "EUR", To: "USD"}
	}

	results := services.NewBulkConversionService(converter, 3).ConvertMany(context.Background(), reqs)

	require.Len(t, results, len(reqs))
	assert.Equal(t, int32(len(reqs)), converter.calls.Load(), "every request is attempted")
	for i, r := range results {
		assert.Equal(t, i, r.Index)
		if (i+1)%3 == 0 {
			assert.False(t, r.Success)
			assert.Equal(t, "boom", r.Error)
			continue
		}
		require.True(t, r.Success)
		assert.True(t, reqs[i].Amount.Equal(r.Result.OriginalAmount))
	}
}

func TestConvertMany_Empty(t *testing.T) {
	results := services.NewBulkConversionService(&countingConverter{}, 0).ConvertMany(context.Background(), nil)
	assert.Empty(t, results)
}
