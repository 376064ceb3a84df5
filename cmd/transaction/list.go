package transaction

import (
	"fmt"

	"github.com/hance08/zenith/internal/app"
	"github.com/hance08/zenith/internal/service"
	"github.com/hance08/zenith/internal/ui/views"
	"github.com/spf13/cobra"
)

type listFlags struct {
	Limit int
}

type listRunner struct {
	svc   *service.Service
	flags *listFlags
}

func NewListCmd(application *app.App) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:     "list <account-id>",
		Aliases: []string{"ls", "l"},
		Short:   "List recent transactions of an account",
		Long: `List recent transactions of an account, most recent first.

When --limit is not given the configured default (defaults.transaction_limit)
is used.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &listRunner{
				svc:   application.Service,
				flags: flags,
			}
			return runner.Run(cmd, args[0])
		},
	}

	cmd.Flags().IntVarP(&flags.Limit, "limit", "l", 0, "Maximum number of transactions to display")

	return cmd
}

func (r *listRunner) Run(cmd *cobra.Command, accountID string) error {
	limit := r.flags.Limit
	if limit <= 0 {
		limit = r.svc.Transaction.DefaultLimit()
	}

	txns, err := r.svc.Transaction.GetTransactions(cmd.Context(), accountID, limit)
	if err != nil {
		return fmt.Errorf("failed to get transactions: %w", err)
	}

	return views.NewTransactionListView().Render(accountID, txns, limit)
}
