package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"fincoach-server/src/models"
)

var ErrTransactionNotFound = errors.New("transaction not found")

func ListTransactions(ctx context.Context, pool *pgxpool.Pool, userID int64) ([]models.Transaction, error) {
	query := `
		SELECT id, user_id, amount, category, COALESCE(description, ''), date, type, created_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY date DESC
	`

	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var transaction models.Transaction
		err := rows.Scan(
			&transaction.ID,
			&transaction.UserID,
			&transaction.Amount,
			&transaction.Category,
			&transaction.Description,
			&transaction.Date,
			&transaction.Type,
			&transaction.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, transaction)
	}

	return transactions, rows.Err()
}

func CreateTransaction(ctx context.Context, pool *pgxpool.Pool, txn *models.Transaction) (*models.Transaction, error) {
	query := `
		INSERT INTO transactions (user_id, amount, category, description, date, type)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6)
		RETURNING id, user_id, amount, category, COALESCE(description, ''), date, type, created_at
	`

	var created models.Transaction
	err := pool.QueryRow(ctx, query,
		txn.UserID,
		txn.Amount,
		txn.Category,
		txn.Description,
		txn.Date,
		txn.Type,
	).Scan(
		&created.ID,
		&created.UserID,
		&created.Amount,
		&created.Category,
		&created.Description,
		&created.Date,
		&created.Type,
		&created.CreatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &created, nil
}

// DeleteTransaction removes one of the user's own transactions. A
// missing row and a row owned by someone else are indistinguishable to
// the caller: both come back as ErrTransactionNotFound.
func DeleteTransaction(ctx context.Context, pool *pgxpool.Pool, userID, transactionID int64) error {
	query := `DELETE FROM transactions WHERE id = $1 AND user_id = $2`
	cmd, err := pool.Exec(ctx, query, transactionID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrTransactionNotFound
	}
	return nil
}
