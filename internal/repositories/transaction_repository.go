package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"rest-playground/internal/models"
)

// transactionSelect joins the category so list responses never trigger a
// per-row category lookup.
const transactionSelect = `
	SELECT t.id, t.name, t.type, t.amount, t.comment, t.category_id, t.user_id, t.created_at,
	       c.id, c.name, c.created_at
	FROM transactions t
	JOIN categories c ON c.id = t.category_id
`

type TransactionRepository struct {
	pool *pgxpool.Pool
}

func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

// Latest returns the newest transactions by creation time, capped at limit.
func (r *TransactionRepository) Latest(ctx context.Context, limit int) ([]models.Transaction, error) {
	query := transactionSelect + ` ORDER BY t.created_at DESC LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTransactions(rows)
}

func (r *TransactionRepository) LatestByCategory(ctx context.Context, categoryID int64, limit int) ([]models.Transaction, error) {
	query := transactionSelect + ` WHERE t.category_id = $1 ORDER BY t.created_at DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, categoryID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTransactions(rows)
}

func (r *TransactionRepository) GetByID(ctx context.Context, id int64) (*models.Transaction, error) {
	query := transactionSelect + ` WHERE t.id = $1`

	row := r.pool.QueryRow(ctx, query, id)
	transaction, err := scanTransactionRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return transaction, nil
}

// Create inserts the transaction and fills in its id. A foreign-key
// violation on category_id surfaces as ErrCategoryMissing.
func (r *TransactionRepository) Create(ctx context.Context, transaction *models.Transaction) error {
	query := `
		INSERT INTO transactions (name, type, amount, comment, category_id, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query,
		transaction.Name,
		transaction.Type,
		transaction.Amount,
		transaction.Comment,
		transaction.CategoryID,
		transaction.UserID,
		transaction.CreatedAt,
	).Scan(&transaction.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return ErrCategoryMissing
		}
		return err
	}

	return nil
}

// SwitchType flips income to expense and vice versa, returning the updated row.
func (r *TransactionRepository) SwitchType(ctx context.Context, id int64) (*models.Transaction, error) {
	query := `
		UPDATE transactions SET
			type = CASE type
				WHEN 'expense'::transaction_type_t THEN 'income'::transaction_type_t
				ELSE 'expense'::transaction_type_t
			END
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return nil, err
	}
	if result.RowsAffected() == 0 {
		return nil, ErrNotFound
	}

	return r.GetByID(ctx, id)
}

func (r *TransactionRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// DeleteByUser removes all transactions owned by the user. Part of the
// account-deletion cascade.
func (r *TransactionRepository) DeleteByUser(ctx context.Context, userID int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM transactions WHERE user_id = $1`, userID)
	return err
}

// Totals sums the unsigned amounts per type.
func (r *TransactionRepository) Totals(ctx context.Context) (models.TransactionTotals, error) {
	query := `
		SELECT COALESCE(SUM(amount) FILTER (WHERE type = 'income'), 0),
		       COALESCE(SUM(amount) FILTER (WHERE type = 'expense'), 0)
		FROM transactions
	`

	var totals models.TransactionTotals
	err := r.pool.QueryRow(ctx, query).Scan(&totals.Income, &totals.Expense)
	return totals, err
}

func scanTransactions(rows pgx.Rows) ([]models.Transaction, error) {
	transactions := []models.Transaction{}
	for rows.Next() {
		transaction, err := scanTransactionRow(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, *transaction)
	}

	return transactions, rows.Err()
}

func scanTransactionRow(row pgx.Row) (*models.Transaction, error) {
	var transaction models.Transaction
	var category models.Category

	err := row.Scan(
		&transaction.ID,
		&transaction.Name,
		&transaction.Type,
		&transaction.Amount,
		&transaction.Comment,
		&transaction.CategoryID,
		&transaction.UserID,
		&transaction.CreatedAt,
		&category.ID,
		&category.Name,
		&category.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	transaction.Category = &category
	return &transaction, nil
}
