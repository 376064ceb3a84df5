package store

import "errors"

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrNestedTx        = errors.New("store is already in a transaction")
	ErrInvalidTxType   = errors.New("invalid transaction type")
)
