package account

import (
	"github.com/hance08/zenith/internal/app"
	"github.com/spf13/cobra"
)

func NewAccountCmd(application *app.App) *cobra.Command {
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Create accounts and check balances.",
		Long:  `Create accounts and check balances.`,
	}

	accountCmd.AddCommand(NewCreateCmd(application))
	accountCmd.AddCommand(NewBalanceCmd(application))

	return accountCmd
}
