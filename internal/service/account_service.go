package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/hance08/zenith/internal/store"
	"github.com/pterm/pterm"
)

type AccountService struct {
	repo store.Repository
	log  *pterm.Logger
}

func NewAccountService(repo store.Repository, log *pterm.Logger) *AccountService {
	return &AccountService{repo: repo, log: log}
}

// CreateAccount opens a zero-balance account. The holder name is stored
// verbatim, empty names included.
func (as *AccountService) CreateAccount(ctx context.Context, holderName string) (*store.Account, error) {
	acc, err := as.repo.CreateAccount(ctx, holderName)
	if err != nil {
		as.log.Error("create account failed", as.log.Args("error", err.Error()))
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	as.log.Info("account created", as.log.Args("account_id", acc.ID))
	return acc, nil
}

func (as *AccountService) GetBalance(ctx context.Context, accountID string) (*store.Account, error) {
	acc, err := as.repo.GetAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		as.log.Error("get account failed", as.log.Args("account_id", accountID, "error", err.Error()))
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return acc, nil
}
