package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/fx_service/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"

	// baseCurrencyIndex is the partial unique index allowing a single base currency.
	baseCurrencyIndex = "currencies_single_base_idx"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewAppError(500, "failed to rollback transaction", err)
	}
	return nil
}

// classifyPgError maps constraint violations onto the application sentinel errors.
func classifyPgError(err error, what string) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return fmt.Errorf("failed to %s: %w", what, err)
	}
	switch pgErr.Code {
	case pgUniqueViolation:
		if pgErr.ConstraintName == baseCurrencyIndex {
			return fmt.Errorf("%w: a base currency already exists", apperrors.ErrConflict)
		}
		return fmt.Errorf("%w: %s", apperrors.ErrDuplicate, pgErr.Detail)
	case pgForeignKeyViolation:
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, pgErr.Detail)
	}
	return fmt.Errorf("failed to %s: %w", what, err)
}
