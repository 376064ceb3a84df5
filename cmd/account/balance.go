package account

import (
	"github.com/hance08/zenith/internal/app"
	"github.com/hance08/zenith/internal/ui/views"
	"github.com/spf13/cobra"
)

func NewBalanceCmd(application *app.App) *cobra.Command {
	return &cobra.Command{
		Use:     "balance <account-id>",
		Aliases: []string{"show", "b"},
		Short:   "Show the current balance of an account.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			acc, err := application.Service.Account.GetBalance(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return views.RenderAccount(acc)
		},
	}
}
