package service

import (
	"errors"
	"fmt"

	"github.com/hance08/zenith/internal/store"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrAccountNotFound   = store.ErrAccountNotFound
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// InsufficientFundsError carries the balance seen before the rejected
// withdrawal and the amount that was asked for.
type InsufficientFundsError struct {
	Balance   decimal.Decimal
	Requested decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: balance %s, requested %s", e.Balance, e.Requested)
}

func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}
