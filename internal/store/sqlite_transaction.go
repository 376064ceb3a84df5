package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	sqlite "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
)

// RecordTransaction appends a row to the transaction log. The amount is
// stored as given; the type must be DEPOSIT or WITHDRAWAL.
func (s *Store) RecordTransaction(ctx context.Context, accountID string, txType TransactionType, amount decimal.Decimal) (*Transaction, error) {
	if !txType.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTxType, txType)
	}

	tx := &Transaction{
		ID:        uuid.New().String(),
		AccountID: accountID,
		Type:      txType,
		Amount:    amount,
		CreatedAt: s.now().UTC(),
	}

	_, err := s.db.ExecContext(ctx, `
        INSERT INTO transactions (transaction_id, account_id, type, amount, created_at)
        VALUES (?, ?, ?, ?, ?);
    `, tx.ID, tx.AccountID, string(tx.Type), tx.Amount.String(), FormatTimestamp(tx.CreatedAt))
	if err != nil {
		var sqliteErr sqlite.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite.ErrConstraintForeignKey {
			return nil, fmt.Errorf("failed to record transaction for '%s': %w", accountID, ErrAccountNotFound)
		}
		return nil, fmt.Errorf("failed to insert transaction: %w", err)
	}

	return tx, nil
}

// GetTransactionsByAccount returns the newest transactions first. Rows that
// share a created_at value come back in reverse insertion order.
func (s *Store) GetTransactionsByAccount(ctx context.Context, accountID string, limit int) ([]*Transaction, error) {
	if limit <= 0 {
		limit = DefaultTransactionLimit
	}

	rows, err := s.db.QueryContext(ctx, `
        SELECT transaction_id, account_id, type, amount, created_at
        FROM transactions
        WHERE account_id = ?
        ORDER BY created_at DESC, rowid DESC
        LIMIT ?
    `, accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	transactions := []*Transaction{}
	for rows.Next() {
		tx := &Transaction{}
		var txType, createdAt string

		if err := rows.Scan(&tx.ID, &tx.AccountID, &txType, &tx.Amount, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}

		tx.Type = TransactionType(txType)
		tx.CreatedAt, err = ParseTimestamp(createdAt)
		if err != nil {
			return nil, fmt.Errorf("invalid created_at %q on transaction %s: %w", createdAt, tx.ID, err)
		}

		transactions = append(transactions, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}

	return transactions, nil
}
