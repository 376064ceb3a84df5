package tools

import (
	"encoding/json"

	"github.com/hance08/zenith/internal/store"
	"github.com/shopspring/decimal"
)

const (
	MsgAccountCreated     = "Account created successfully"
	MsgDepositSuccess     = "Deposit successful"
	MsgWithdrawalSuccess  = "Withdrawal successful"
	ErrMsgInvalidAmount   = "Amount must be positive"
	ErrMsgAccountNotFound = "Account not found"
	ErrMsgInsufficient    = "Insufficient funds"
)

type CreateAccountResult struct {
	Message    string  `json:"message"`
	AccountID  string  `json:"account_id"`
	HolderName string  `json:"holder_name"`
	Balance    json.Number `json:"balance"`
}

type DepositResult struct {
	Message    string  `json:"message"`
	AccountID  string  `json:"account_id"`
	Deposited  json.Number `json:"deposited"`
	NewBalance json.Number `json:"new_balance"`
}

type WithdrawResult struct {
	Message    string  `json:"message"`
	AccountID  string  `json:"account_id"`
	Withdrawn  json.Number `json:"withdrawn"`
	NewBalance json.Number `json:"new_balance"`
}

type BalanceResult struct {
	AccountID  string  `json:"account_id"`
	HolderName string  `json:"holder_name"`
	Balance    json.Number `json:"balance"`
}

type TransactionView struct {
	TransactionID string  `json:"transaction_id"`
	Type          string  `json:"type"`
	Amount        json.Number `json:"amount"`
	CreatedAt     string  `json:"created_at"`
}

type TransactionsResult struct {
	AccountID        string            `json:"account_id"`
	TransactionCount int               `json:"transaction_count"`
	Transactions     []TransactionView `json:"transactions"`
}

// ErrorResult is a business failure returned as a normal tool result.
type ErrorResult struct {
	Error     string   `json:"error"`
	AccountID *string  `json:"account_id,omitempty"`
	Balance   *json.Number `json:"balance,omitempty"`
	Requested *json.Number `json:"requested,omitempty"`
}

// money renders an amount as a JSON number with the exact decimal digits.
func money(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

func moneyPtr(d decimal.Decimal) *json.Number {
	f := money(d)
	return &f
}

func newTransactionView(t *store.Transaction) TransactionView {
	return TransactionView{
		TransactionID: t.ID,
		Type:          string(t.Type),
		Amount:        money(t.Amount),
		CreatedAt:     store.FormatTimestamp(t.CreatedAt),
	}
}
