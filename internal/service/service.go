package service

import (
	"github.com/hance08/zenith/internal/config"
	"github.com/hance08/zenith/internal/store"
	"github.com/pterm/pterm"
)

type Service struct {
	Account     *AccountService
	Transaction *TransactionService
	Config      *config.Config
}

func NewService(repo store.TxRepository, cfg *config.Config, log *pterm.Logger) *Service {
	return &Service{
		Account:     NewAccountService(repo, log),
		Transaction: NewTransactionService(repo, cfg, log),
		Config:      cfg,
	}
}
