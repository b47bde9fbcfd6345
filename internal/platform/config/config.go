package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string // empty selects the in-memory repositories
	MigrationsPath string
	Port           string
	IsProduction   bool
	JWTSecret      string
	JWTIssuer      string

	RateConsistencyTolerance decimal.Decimal
	CrossRateMaxLegs         int
	BulkConversionWorkers    int

	RateLimit          string // ulule limiter format, e.g. "100-M"
	CORSAllowedOrigins []string

	// External rate feed; sync is disabled when RateSyncURL is empty.
	RateSyncURL      string
	RateSyncSchedule string
	RateSyncSource   string
}

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v), nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_ISSUER", "fx-service")
	v.SetDefault("RATE_CONSISTENCY_TOLERANCE", "0.005")
	v.SetDefault("CROSS_RATE_MAX_LEGS", 2)
	v.SetDefault("BULK_CONVERSION_WORKERS", 8)
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("RATE_SYNC_URL", "")
	v.SetDefault("RATE_SYNC_SCHEDULE", "@every 1h")
	v.SetDefault("RATE_SYNC_SOURCE", "feed")
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{
		DatabaseURL:      v.GetString("PGSQL_URL"),
		MigrationsPath:   v.GetString("MIGRATIONS_PATH"),
		Port:             v.GetString("PORT"),
		IsProduction:     v.GetBool("IS_PRODUCTION"),
		JWTSecret:        v.GetString("JWT_SECRET"),
		JWTIssuer:        v.GetString("JWT_ISSUER"),
		CrossRateMaxLegs: v.GetInt("CROSS_RATE_MAX_LEGS"),
		RateLimit:        v.GetString("RATE_LIMIT"),
		RateSyncURL:      v.GetString("RATE_SYNC_URL"),
		RateSyncSchedule: v.GetString("RATE_SYNC_SCHEDULE"),
		RateSyncSource:   v.GetString("RATE_SYNC_SOURCE"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set. Using in-memory repositories.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	tolStr := v.GetString("RATE_CONSISTENCY_TOLERANCE")
	tol, err := decimal.NewFromString(tolStr)
	if err != nil || !tol.IsPositive() {
		tol = decimal.RequireFromString("0.005")
		log.Printf("Warning: Invalid value for RATE_CONSISTENCY_TOLERANCE ('%s'). Defaulting to %s.\n", tolStr, tol.String())
	}
	cfg.RateConsistencyTolerance = tol

	if cfg.CrossRateMaxLegs < 2 {
		log.Printf("Warning: CROSS_RATE_MAX_LEGS must be at least 2 (got %d). Defaulting to 2.\n", cfg.CrossRateMaxLegs)
		cfg.CrossRateMaxLegs = 2
	}

	cfg.BulkConversionWorkers = v.GetInt("BULK_CONVERSION_WORKERS")
	if cfg.BulkConversionWorkers <= 0 {
		cfg.BulkConversionWorkers = 8
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if o := strings.TrimSpace(origin); o != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
		}
	}

	return cfg
}
