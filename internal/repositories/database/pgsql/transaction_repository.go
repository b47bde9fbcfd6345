package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/fx_service/internal/apperrors"
	"github.com/SscSPs/fx_service/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_service/internal/core/ports/repositories"
	"github.com/SscSPs/fx_service/internal/models"
	"github.com/SscSPs/fx_service/internal/utils/mapping"
	"github.com/SscSPs/fx_service/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transactionColumns = `transaction_id, description, amount, currency_code, amount_in_base, base_currency,
	transaction_date, exchange_rate, exchange_rate_id, rate_method, category, department, audit_trail,
	created_at, created_by, last_updated_at, last_updated_by`

// PgxTransactionRepository stores booked currency transactions.
type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func scanTransaction(row pgx.Row) (domain.CurrencyTransaction, error) {
	var m models.CurrencyTransaction
	err := row.Scan(
		&m.TransactionID, &m.Description, &m.Amount, &m.CurrencyCode, &m.AmountInBase, &m.BaseCurrency,
		&m.TransactionDate, &m.ExchangeRate, &m.ExchangeRateID, &m.RateMethod, &m.Category, &m.Department, &m.AuditTrail,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return domain.CurrencyTransaction{}, err
	}
	return mapping.ToDomainCurrencyTransaction(m)
}

// FindTransactionByID retrieves a transaction by its ID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.CurrencyTransaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM currency_transactions WHERE transaction_id = $1;`

	tx, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	return &tx, nil
}

// ListTransactions returns transactions newest first using keyset pagination on
// (transaction_date, created_at, transaction_id).
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter, limit int, nextToken *string) ([]domain.CurrencyTransaction, *string, error) {
	var (
		conditions []string
		args       []any
	)
	where := func(format string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(format, len(args)))
	}

	if filter.CurrencyCode != "" {
		where("currency_code = $%d", filter.CurrencyCode)
	}
	if filter.Category != "" {
		where("category = $%d", filter.Category)
	}
	if filter.Department != "" {
		where("department = $%d", filter.Department)
	}
	if filter.From != nil {
		where("transaction_date >= $%d", *filter.From)
	}
	if filter.To != nil {
		where("transaction_date <= $%d", *filter.To)
	}
	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		args = append(args, cursor.Date, cursor.CreatedAt, cursor.ID)
		n := len(args)
		conditions = append(conditions, fmt.Sprintf("(transaction_date, created_at, transaction_id) < ($%d, $%d, $%d)", n-2, n-1, n))
	}

	query := `SELECT ` + transactionColumns + ` FROM currency_transactions`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY transaction_date DESC, created_at DESC, transaction_id DESC"
	if limit > 0 {
		// fetch one extra row to learn whether another page exists
		args = append(args, limit+1)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	txs := []domain.CurrencyTransaction{}
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}

	if limit <= 0 || len(txs) <= limit {
		return txs, nil, nil
	}
	txs = txs[:limit]
	last := txs[len(txs)-1]
	token := pagination.EncodeToken(pagination.Cursor{Date: last.TransactionDate, CreatedAt: last.CreatedAt, ID: last.TransactionID})
	return txs, &token, nil
}

// SaveTransaction inserts a new transaction.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, tx domain.CurrencyTransaction) error {
	m, err := mapping.ToModelCurrencyTransaction(tx)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO currency_transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err = r.Pool.Exec(ctx, query,
		m.TransactionID, m.Description, m.Amount, m.CurrencyCode, m.AmountInBase, m.BaseCurrency,
		m.TransactionDate, m.ExchangeRate, m.ExchangeRateID, m.RateMethod, m.Category, m.Department, m.AuditTrail,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return classifyPgError(err, fmt.Sprintf("save transaction %s", m.TransactionID))
	}
	return nil
}

// UpdateTransaction overwrites the mutable columns of a stored transaction.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, tx domain.CurrencyTransaction) error {
	m, err := mapping.ToModelCurrencyTransaction(tx)
	if err != nil {
		return err
	}

	query := `
		UPDATE currency_transactions SET
			description = $2,
			amount_in_base = $3,
			exchange_rate = $4,
			exchange_rate_id = $5,
			rate_method = $6,
			category = $7,
			department = $8,
			audit_trail = $9,
			last_updated_at = $10,
			last_updated_by = $11
		WHERE transaction_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.TransactionID, m.Description, m.AmountInBase, m.ExchangeRate, m.ExchangeRateID, m.RateMethod,
		m.Category, m.Department, m.AuditTrail, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return classifyPgError(err, fmt.Sprintf("update transaction %s", m.TransactionID))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, m.TransactionID)
	}
	return nil
}

// CountTransactionsByCurrency counts the transactions booked in a currency.
func (r *PgxTransactionRepository) CountTransactionsByCurrency(ctx context.Context, currencyCode string) (int64, error) {
	var count int64
	err := r.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM currency_transactions WHERE currency_code = $1;`,
		currencyCode,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count transactions in %s: %w", currencyCode, err)
	}
	return count, nil
}

// SummarizeByCurrency aggregates transactions per source currency, ordered by code.
func (r *PgxTransactionRepository) SummarizeByCurrency(ctx context.Context) ([]domain.CurrencyUsage, error) {
	query := `
		SELECT currency_code, COUNT(*), SUM(amount), SUM(amount_in_base), MAX(transaction_date)
		FROM currency_transactions
		GROUP BY currency_code
		ORDER BY currency_code;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize transactions: %w", err)
	}
	defer rows.Close()

	out := []domain.CurrencyUsage{}
	for rows.Next() {
		var u domain.CurrencyUsage
		if err := rows.Scan(&u.CurrencyCode, &u.TransactionCount, &u.TotalVolume, &u.TotalInBase, &u.LastUsedAt); err != nil {
			return nil, fmt.Errorf("failed to scan currency summary row: %w", err)
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating currency summary rows: %w", err)
	}
	return out, nil
}
