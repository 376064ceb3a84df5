package transaction

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hance08/zenith/internal/app"
	"github.com/hance08/zenith/internal/service"
	"github.com/hance08/zenith/internal/store"
	"github.com/hance08/zenith/internal/ui/prompts"
	"github.com/hance08/zenith/internal/ui/views"
	"github.com/hance08/zenith/internal/utils"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type moveFlags struct {
	Yes bool
}

type moveRunner struct {
	svc    *service.Service
	flags  *moveFlags
	txType store.TransactionType
}

func NewDepositCmd(application *app.App) *cobra.Command {
	return &cobra.Command{
		Use:     "deposit <account-id> [amount]",
		Aliases: []string{"dep"},
		Short:   "Add funds to an account",
		Example: "zenith transaction deposit 3f2a... 150.50",
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &moveRunner{
				svc:    application.Service,
				flags:  &moveFlags{Yes: true},
				txType: store.TypeDeposit,
			}
			return runner.Run(cmd, args)
		},
	}
}

func NewWithdrawCmd(application *app.App) *cobra.Command {
	flags := &moveFlags{}

	cmd := &cobra.Command{
		Use:     "withdraw <account-id> [amount]",
		Aliases: []string{"wd"},
		Short:   "Remove funds from an account",
		Example: "zenith transaction withdraw 3f2a... 20 --yes",
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &moveRunner{
				svc:    application.Service,
				flags:  flags,
				txType: store.TypeWithdrawal,
			}
			return runner.Run(cmd, args)
		},
	}

	cmd.Flags().BoolVarP(&flags.Yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func (r *moveRunner) Run(cmd *cobra.Command, args []string) error {
	accountID := args[0]

	var rawAmount string
	if len(args) > 1 {
		rawAmount = args[1]
	} else {
		var err error
		rawAmount, err = prompts.PromptAmount(fmt.Sprintf("Amount to %s:", strings.ToLower(r.verb())))
		if err != nil {
			return err
		}
	}

	amount, err := utils.ParseAmount(rawAmount)
	if err != nil {
		return err
	}

	if !r.flags.Yes {
		ok, err := prompts.PromptConfirmWithdrawal(accountID, utils.FormatAmount(amount))
		if err != nil {
			return err
		}
		if !ok {
			pterm.Info.Println("Withdrawal cancelled")
			return nil
		}
	}

	var change *service.BalanceChange
	if r.txType == store.TypeWithdrawal {
		change, err = r.svc.Transaction.Withdraw(cmd.Context(), accountID, amount)
	} else {
		change, err = r.svc.Transaction.Deposit(cmd.Context(), accountID, amount)
	}

	var insufficient *service.InsufficientFundsError
	switch {
	case errors.As(err, &insufficient):
		return fmt.Errorf("insufficient funds: balance is %s, requested %s",
			utils.FormatAmount(insufficient.Balance), utils.FormatAmount(insufficient.Requested))
	case err != nil:
		return err
	}

	return views.RenderBalanceChange(views.BalanceChangeItem{
		AccountID:  change.AccountID,
		Type:       r.txType,
		Amount:     utils.FormatAmount(change.Amount),
		NewBalance: utils.FormatAmount(change.NewBalance),
	})
}

func (r *moveRunner) verb() string {
	if r.txType == store.TypeWithdrawal {
		return "Withdraw"
	}
	return "Deposit"
}
