package store

import (
	"time"

	"github.com/shopspring/decimal"
)

type Account struct {
	ID         string
	HolderName string
	Balance    decimal.Decimal
}

type Transaction struct {
	ID        string
	AccountID string
	Type      TransactionType
	Amount    decimal.Decimal
	CreatedAt time.Time
}
