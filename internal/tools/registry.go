package tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/hance08/zenith/internal/service"
	"github.com/hance08/zenith/internal/store"
)

// Registry dispatches tool calls by name onto the account service.
type Registry struct {
	svc    *service.Service
	tools  []*Tool
	byName map[string]*Tool
}

func NewRegistry(svc *service.Service) *Registry {
	r := &Registry{svc: svc, byName: make(map[string]*Tool)}

	r.register(&Tool{
		Name:        "create_account",
		Description: "Create a new bank account with a zero balance.",
		Params: []Param{
			{Name: "holder_name", Type: ParamString, Required: true, Description: "Name of the account holder."},
		},
		handler: r.createAccount,
	})
	r.register(&Tool{
		Name:        "deposit",
		Description: "Add funds to an existing account.",
		Params: []Param{
			{Name: "account_id", Type: ParamString, Required: true, Description: "The unique account identifier."},
			{Name: "amount", Type: ParamNumber, Required: true, Description: "The amount to deposit (must be positive)."},
		},
		handler: r.deposit,
	})
	r.register(&Tool{
		Name:        "withdraw",
		Description: "Remove funds from an existing account.",
		Params: []Param{
			{Name: "account_id", Type: ParamString, Required: true, Description: "The unique account identifier."},
			{Name: "amount", Type: ParamNumber, Required: true, Description: "The amount to withdraw (must be positive)."},
		},
		handler: r.withdraw,
	})
	r.register(&Tool{
		Name:        "get_balance",
		Description: "Check the current balance of an account.",
		Params: []Param{
			{Name: "account_id", Type: ParamString, Required: true, Description: "The unique account identifier."},
		},
		handler: r.getBalance,
	})
	r.register(&Tool{
		Name:        "get_transactions",
		Description: "View recent transactions for an account, most recent first.",
		Params: []Param{
			{Name: "account_id", Type: ParamString, Required: true, Description: "The unique account identifier."},
			{
				Name:        "limit",
				Type:        ParamInteger,
				Description: fmt.Sprintf("Maximum number of transactions to return (default %d).", svc.Transaction.DefaultLimit()),
				Default:     svc.Transaction.DefaultLimit(),
			},
		},
		handler: r.getTransactions,
	})

	return r
}

func (r *Registry) register(t *Tool) {
	r.tools = append(r.tools, t)
	r.byName[t.Name] = t
}

// Tools returns the catalogue in registration order.
func (r *Registry) Tools() []Tool {
	out := make([]Tool, 0, len(r.tools))
	for _, t := range r.tools {
		out = append(out, *t)
	}
	return out
}

// Call runs the named tool. Business failures come back as an ErrorResult
// with a nil error; the error return is reserved for unknown tools, bad
// arguments and storage failures.
func (r *Registry) Call(ctx context.Context, name string, args map[string]any) (any, error) {
	t, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	return t.handler(ctx, args)
}

func (r *Registry) createAccount(ctx context.Context, args map[string]any) (any, error) {
	var in createAccountArgs
	if err := decodeArgs(r.byName["create_account"], args, &in); err != nil {
		return nil, err
	}

	acc, err := r.svc.Account.CreateAccount(ctx, in.HolderName)
	if err != nil {
		return nil, err
	}

	return CreateAccountResult{
		Message:    MsgAccountCreated,
		AccountID:  acc.ID,
		HolderName: acc.HolderName,
		Balance:    money(acc.Balance),
	}, nil
}

func (r *Registry) deposit(ctx context.Context, args map[string]any) (any, error) {
	var in amountArgs
	if err := decodeArgs(r.byName["deposit"], args, &in); err != nil {
		return nil, err
	}

	change, err := r.svc.Transaction.Deposit(ctx, in.AccountID, in.Amount)
	if err != nil {
		return businessError(err, in.AccountID)
	}

	return DepositResult{
		Message:    MsgDepositSuccess,
		AccountID:  change.AccountID,
		Deposited:  money(change.Amount),
		NewBalance: money(change.NewBalance),
	}, nil
}

func (r *Registry) withdraw(ctx context.Context, args map[string]any) (any, error) {
	var in amountArgs
	if err := decodeArgs(r.byName["withdraw"], args, &in); err != nil {
		return nil, err
	}

	change, err := r.svc.Transaction.Withdraw(ctx, in.AccountID, in.Amount)
	if err != nil {
		return businessError(err, in.AccountID)
	}

	return WithdrawResult{
		Message:    MsgWithdrawalSuccess,
		AccountID:  change.AccountID,
		Withdrawn:  money(change.Amount),
		NewBalance: money(change.NewBalance),
	}, nil
}

func (r *Registry) getBalance(ctx context.Context, args map[string]any) (any, error) {
	var in accountArgs
	if err := decodeArgs(r.byName["get_balance"], args, &in); err != nil {
		return nil, err
	}

	acc, err := r.svc.Account.GetBalance(ctx, in.AccountID)
	if err != nil {
		return businessError(err, in.AccountID)
	}

	return BalanceResult{
		AccountID:  acc.ID,
		HolderName: acc.HolderName,
		Balance:    money(acc.Balance),
	}, nil
}

func (r *Registry) getTransactions(ctx context.Context, args map[string]any) (any, error) {
	var in historyArgs
	if err := decodeArgs(r.byName["get_transactions"], args, &in); err != nil {
		return nil, err
	}

	txns, err := r.svc.Transaction.GetTransactions(ctx, in.AccountID, in.Limit)
	if err != nil {
		return businessError(err, in.AccountID)
	}

	views := make([]TransactionView, 0, len(txns))
	for _, t := range txns {
		views = append(views, newTransactionView(t))
	}

	return TransactionsResult{
		AccountID:        in.AccountID,
		TransactionCount: len(views),
		Transactions:     views,
	}, nil
}

func businessError(err error, accountID string) (any, error) {
	var insufficient *service.InsufficientFundsError
	switch {
	case errors.Is(err, service.ErrInvalidAmount):
		return ErrorResult{Error: ErrMsgInvalidAmount}, nil
	case errors.Is(err, store.ErrAccountNotFound):
		return ErrorResult{Error: ErrMsgAccountNotFound, AccountID: &accountID}, nil
	case errors.As(err, &insufficient):
		return ErrorResult{
			Error:     ErrMsgInsufficient,
			Balance:   moneyPtr(insufficient.Balance),
			Requested: moneyPtr(insufficient.Requested),
		}, nil
	default:
		return nil, err
	}
}
