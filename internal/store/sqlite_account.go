package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (s *Store) CreateAccount(ctx context.Context, holderName string) (*Account, error) {
	acc := &Account{
		ID:         uuid.New().String(),
		HolderName: holderName,
		Balance:    decimal.Zero,
	}

	_, err := s.db.ExecContext(ctx, `
        INSERT INTO accounts (account_id, holder_name, balance)
        VALUES (?, ?, ?);
    `, acc.ID, acc.HolderName, acc.Balance.String())
	if err != nil {
		return nil, fmt.Errorf("failed to executing SQL insertion : %w", err)
	}

	return acc, nil
}

func (s *Store) GetAccountByID(ctx context.Context, accountID string) (*Account, error) {
	row := s.db.QueryRowContext(ctx, "SELECT account_id, holder_name, balance FROM accounts WHERE account_id = ?", accountID)

	acc := &Account{}
	err := row.Scan(&acc.ID, &acc.HolderName, &acc.Balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to query account '%s': %w", accountID, err)
	}

	return acc, nil
}

// UpdateAccountBalance overwrites the stored balance and reports
// ErrAccountNotFound when no row carries accountID.
func (s *Store) UpdateAccountBalance(ctx context.Context, accountID string, newBalance decimal.Decimal) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE accounts SET balance = ? WHERE account_id = ?",
		newBalance.String(), accountID,
	)
	if err != nil {
		return fmt.Errorf("failed to update balance: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrAccountNotFound
	}
	return nil
}
