package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/propati/propati/internal/pkg/models"
)

// TransactionExists reports whether a ledger row already carries the
// external reference.
func (r *PaymentRepo) TransactionExists(ctx context.Context, reference string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM credit_transactions WHERE external_reference = $1)`

	err := r.db.QueryRowContext(ctx, query, reference).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check external reference: %w", err)
	}
	return exists, nil
}

// ApplyCreditTransaction appends the ledger row and updates the running
// balance in a single database transaction. The unique constraint on
// external_reference makes concurrent applies of the same reference
// collapse into one: the loser sees zero rows inserted and leaves the
// balance untouched.
func (r *PaymentRepo) ApplyCreditTransaction(ctx context.Context, txn *models.CreditTransaction) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO credit_transactions (
			id, user_id, amount, transaction_type, description,
			external_reference, created_at
		) VALUES (
			:id, :user_id, :amount, :transaction_type, :description,
			:external_reference, :created_at
		)
		ON CONFLICT (external_reference) DO NOTHING
	`
	result, err := tx.NamedExecContext(ctx, query, txn)
	if err != nil {
		return false, fmt.Errorf("failed to insert credit transaction: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		// Reference already credited by a concurrent call.
		return false, nil
	}

	// The upsert serializes concurrent balance updates for the same user on
	// the user_credits row.
	query = `
		INSERT INTO user_credits (user_id, balance, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET balance = user_credits.balance + EXCLUDED.balance, updated_at = NOW()
	`
	_, err = tx.ExecContext(ctx, query, txn.UserID, txn.Amount)
	if err != nil {
		return false, fmt.Errorf("failed to update credit balance: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return true, nil
}

// GetBalance returns the user's current credit balance, zero when the user
// has no balance row yet.
func (r *PaymentRepo) GetBalance(ctx context.Context, userID uuid.UUID) (int64, error) {
	var balance int64
	query := `SELECT balance FROM user_credits WHERE user_id = $1`

	err := r.db.GetContext(ctx, &balance, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get balance: %w", err)
	}
	return balance, nil
}
