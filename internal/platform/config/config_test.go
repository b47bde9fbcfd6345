package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestFromViperDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg := fromViper(v)

	assert.Equal(t, "8080", cfg.Port)
	assert.Empty(t, cfg.DatabaseURL)
	assert.True(t, decimal.RequireFromString("0.005").Equal(cfg.RateConsistencyTolerance))
	assert.Equal(t, 2, cfg.CrossRateMaxLegs)
	assert.Equal(t, 8, cfg.BulkConversionWorkers)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "@every 1h", cfg.RateSyncSchedule)
}

func TestFromViperOverrides(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("RATE_CONSISTENCY_TOLERANCE", "0.01")
	v.Set("CROSS_RATE_MAX_LEGS", 3)
	v.Set("BULK_CONVERSION_WORKERS", 0)
	v.Set("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")

	cfg := fromViper(v)

	assert.True(t, decimal.RequireFromString("0.01").Equal(cfg.RateConsistencyTolerance))
	assert.Equal(t, 3, cfg.CrossRateMaxLegs)
	assert.Equal(t, 8, cfg.BulkConversionWorkers)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

func TestFromViperRejectsInvalidValues(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("RATE_CONSISTENCY_TOLERANCE", "not-a-number")
	v.Set("CROSS_RATE_MAX_LEGS", 1)

	cfg := fromViper(v)

	assert.True(t, decimal.RequireFromString("0.005").Equal(cfg.RateConsistencyTolerance))
	assert.Equal(t, 2, cfg.CrossRateMaxLegs)
}
