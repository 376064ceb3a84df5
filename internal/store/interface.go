package store

import (
	"context"

	"github.com/shopspring/decimal"
)

type Repository interface {
	// Account Operations
	CreateAccount(ctx context.Context, holderName string) (*Account, error)
	GetAccountByID(ctx context.Context, accountID string) (*Account, error)
	UpdateAccountBalance(ctx context.Context, accountID string, newBalance decimal.Decimal) error

	// Transaction Operations
	RecordTransaction(ctx context.Context, accountID string, txType TransactionType, amount decimal.Decimal) (*Transaction, error)
	GetTransactionsByAccount(ctx context.Context, accountID string, limit int) ([]*Transaction, error)
}

// TxRepository is a Repository that can run a group of operations atomically.
type TxRepository interface {
	Repository
	ExecTx(ctx context.Context, fn func(Repository) error) error
	Close() error
}
