package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/hance08/zenith/internal/config"
	"github.com/hance08/zenith/internal/store"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

type TransactionService struct {
	repo         store.TxRepository
	defaultLimit int
	log          *pterm.Logger
}

// BalanceChange is the outcome of a committed deposit or withdrawal.
type BalanceChange struct {
	AccountID   string
	Amount      decimal.Decimal
	NewBalance  decimal.Decimal
	Transaction *store.Transaction
}

func NewTransactionService(repo store.TxRepository, cfg *config.Config, log *pterm.Logger) *TransactionService {
	limit := store.DefaultTransactionLimit
	if cfg != nil && cfg.Defaults.TransactionLimit > 0 {
		limit = cfg.Defaults.TransactionLimit
	}
	return &TransactionService{repo: repo, defaultLimit: limit, log: log}
}

func (ts *TransactionService) Deposit(ctx context.Context, accountID string, amount decimal.Decimal) (*BalanceChange, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	change, err := ts.applyChange(ctx, accountID, store.TypeDeposit, amount, func(balance decimal.Decimal) (decimal.Decimal, error) {
		return balance.Add(amount), nil
	})
	if err != nil {
		return nil, err
	}

	ts.log.Info("deposit recorded", ts.log.Args(
		"account_id", accountID,
		"amount", amount.String(),
		"new_balance", change.NewBalance.String(),
	))
	return change, nil
}

func (ts *TransactionService) Withdraw(ctx context.Context, accountID string, amount decimal.Decimal) (*BalanceChange, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	change, err := ts.applyChange(ctx, accountID, store.TypeWithdrawal, amount, func(balance decimal.Decimal) (decimal.Decimal, error) {
		if amount.GreaterThan(balance) {
			return decimal.Zero, &InsufficientFundsError{Balance: balance, Requested: amount}
		}
		return balance.Sub(amount), nil
	})
	if err != nil {
		return nil, err
	}

	ts.log.Info("withdrawal recorded", ts.log.Args(
		"account_id", accountID,
		"amount", amount.String(),
		"new_balance", change.NewBalance.String(),
	))
	return change, nil
}

// applyChange reads the balance, computes the new one, persists it and
// appends the log entry inside a single store transaction. Either all three
// steps commit or none do, and concurrent changes to one account serialize on
// the store's write lock.
func (ts *TransactionService) applyChange(
	ctx context.Context,
	accountID string,
	txType store.TransactionType,
	amount decimal.Decimal,
	next func(balance decimal.Decimal) (decimal.Decimal, error),
) (*BalanceChange, error) {
	var change *BalanceChange

	err := ts.repo.ExecTx(ctx, func(repo store.Repository) error {
		acc, err := repo.GetAccountByID(ctx, accountID)
		if err != nil {
			return err
		}

		newBalance, err := next(acc.Balance)
		if err != nil {
			return err
		}

		if err := repo.UpdateAccountBalance(ctx, accountID, newBalance); err != nil {
			return err
		}

		txn, err := repo.RecordTransaction(ctx, accountID, txType, amount)
		if err != nil {
			return err
		}

		change = &BalanceChange{
			AccountID:   accountID,
			Amount:      amount,
			NewBalance:  newBalance,
			Transaction: txn,
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrAccountNotFound):
			return nil, ErrAccountNotFound
		case errors.Is(err, ErrInsufficientFunds):
			return nil, err
		}
		ts.log.Error("balance change failed", ts.log.Args(
			"account_id", accountID,
			"type", string(txType),
			"error", err.Error(),
		))
		return nil, fmt.Errorf("failed to apply %s: %w", txType, err)
	}

	return change, nil
}

// GetTransactions returns up to limit entries, newest first. A non-positive
// limit uses the configured default.
func (ts *TransactionService) GetTransactions(ctx context.Context, accountID string, limit int) ([]*store.Transaction, error) {
	if _, err := ts.repo.GetAccountByID(ctx, accountID); err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	if limit <= 0 {
		limit = ts.defaultLimit
	}

	txns, err := ts.repo.GetTransactionsByAccount(ctx, accountID, limit)
	if err != nil {
		ts.log.Error("list transactions failed", ts.log.Args("account_id", accountID, "error", err.Error()))
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	return txns, nil
}

func (ts *TransactionService) DefaultLimit() int {
	return ts.defaultLimit
}
