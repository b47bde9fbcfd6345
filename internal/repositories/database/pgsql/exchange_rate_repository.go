package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/fx_service/internal/apperrors"
	"github.com/SscSPs/fx_service/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_service/internal/core/ports/repositories"
	"github.com/SscSPs/fx_service/internal/models"
	"github.com/SscSPs/fx_service/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const exchangeRateColumns = `exchange_rate_id, from_currency_code, to_currency_code, rate, rate_date, rate_type,
	source, valid_until, is_active, is_calculated, created_at, created_by, last_updated_at, last_updated_by`

// PgxExchangeRateRepository implements the ExchangeRateRepositoryFacade interface using pgxpool.
type PgxExchangeRateRepository struct {
	BaseRepository
}

// newPgxExchangeRateRepository creates a new PgxExchangeRateRepository.
func newPgxExchangeRateRepository(db *pgxpool.Pool) portsrepo.ExchangeRateRepositoryFacade {
	return &PgxExchangeRateRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*PgxExchangeRateRepository)(nil)

func scanExchangeRate(row pgx.Row) (models.ExchangeRate, error) {
	var m models.ExchangeRate
	err := row.Scan(
		&m.ExchangeRateID, &m.FromCurrencyCode, &m.ToCurrencyCode,
		&m.Rate, &m.RateDate, &m.RateType,
		&m.Source, &m.ValidUntil, &m.IsActive, &m.IsCalculated,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

func collectExchangeRates(rows pgx.Rows) ([]domain.ExchangeRate, error) {
	defer rows.Close()

	ms := []models.ExchangeRate{}
	for rows.Next() {
		m, err := scanExchangeRate(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan exchange rate", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating exchange rate rows", err)
	}
	return mapping.ToDomainExchangeRateSlice(ms), nil
}

// FindExchangeRateByID retrieves an exchange rate by its ID.
func (r *PgxExchangeRateRepository) FindExchangeRateByID(ctx context.Context, rateID string) (*domain.ExchangeRate, error) {
	query := `SELECT ` + exchangeRateColumns + ` FROM exchange_rates WHERE exchange_rate_id = $1;`

	m, err := scanExchangeRate(r.Pool.QueryRow(ctx, query, rateID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find exchange rate", err)
	}

	d := mapping.ToDomainExchangeRate(m)
	return &d, nil
}

// FindLatestRate retrieves the most recent active rate of a pair dated on or before lookup.AsOf.
func (r *PgxExchangeRateRepository) FindLatestRate(ctx context.Context, lookup domain.RateLookup) (*domain.ExchangeRate, error) {
	query := `
		SELECT ` + exchangeRateColumns + `
		FROM exchange_rates
		WHERE from_currency_code = $1 AND to_currency_code = $2 AND rate_type = $3
			AND is_active AND rate_date <= $4
			AND (NOT $5 OR valid_until IS NULL OR valid_until >= $4)
		ORDER BY rate_date DESC, created_at DESC, exchange_rate_id DESC
		LIMIT 1;
	`

	m, err := scanExchangeRate(r.Pool.QueryRow(ctx, query,
		lookup.FromCurrencyCode, lookup.ToCurrencyCode, string(lookup.RateType), lookup.AsOf, lookup.ExcludeExpired,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find exchange rate", err)
	}

	d := mapping.ToDomainExchangeRate(m)
	return &d, nil
}

// ListActiveRates retrieves every active rate of a type dated on or before asOf, oldest first.
func (r *PgxExchangeRateRepository) ListActiveRates(ctx context.Context, rateType domain.RateType, asOf time.Time) ([]domain.ExchangeRate, error) {
	query := `
		SELECT ` + exchangeRateColumns + `
		FROM exchange_rates
		WHERE rate_type = $1 AND is_active AND rate_date <= $2
		ORDER BY rate_date, created_at, exchange_rate_id;
	`

	rows, err := r.Pool.Query(ctx, query, string(rateType), asOf)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list exchange rates", err)
	}
	return collectExchangeRates(rows)
}

// ListRateHistory retrieves the rates of a pair dated within [start, end], oldest first.
func (r *PgxExchangeRateRepository) ListRateHistory(ctx context.Context, fromCurrencyCode, toCurrencyCode string, rateType domain.RateType, start, end time.Time) ([]domain.ExchangeRate, error) {
	query := `
		SELECT ` + exchangeRateColumns + `
		FROM exchange_rates
		WHERE from_currency_code = $1 AND to_currency_code = $2 AND rate_type = $3
			AND rate_date BETWEEN $4 AND $5
		ORDER BY rate_date, created_at, exchange_rate_id;
	`

	rows, err := r.Pool.Query(ctx, query, fromCurrencyCode, toCurrencyCode, string(rateType), start, end)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list rate history", err)
	}
	return collectExchangeRates(rows)
}

// SaveExchangeRates inserts all rates in a single transaction.
func (r *PgxExchangeRateRepository) SaveExchangeRates(ctx context.Context, rates ...domain.ExchangeRate) error {
	if len(rates) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	query := `
		INSERT INTO exchange_rates (` + exchangeRateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	batch := &pgx.Batch{}
	for _, rate := range rates {
		m := mapping.ToModelExchangeRate(rate)
		batch.Queue(query,
			m.ExchangeRateID, m.FromCurrencyCode, m.ToCurrencyCode,
			m.Rate, m.RateDate, m.RateType,
			m.Source, m.ValidUntil, m.IsActive, m.IsCalculated,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return classifyPgError(err, "save exchange rates")
	}

	return r.Commit(ctx, tx)
}

// UpdateExchangeRate overwrites the mutable columns of a stored rate.
func (r *PgxExchangeRateRepository) UpdateExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	m := mapping.ToModelExchangeRate(rate)

	query := `
		UPDATE exchange_rates SET
			rate = $2,
			rate_date = $3,
			source = $4,
			valid_until = $5,
			is_active = $6,
			last_updated_at = $7,
			last_updated_by = $8
		WHERE exchange_rate_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.ExchangeRateID, m.Rate, m.RateDate, m.Source, m.ValidUntil, m.IsActive,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return classifyPgError(err, fmt.Sprintf("update exchange rate %s", m.ExchangeRateID))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: exchange rate %s", apperrors.ErrNotFound, m.ExchangeRateID)
	}
	return nil
}
