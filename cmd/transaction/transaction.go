/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package transaction

import (
	"github.com/hance08/zenith/internal/app"
	"github.com/spf13/cobra"
)

func NewTransactionCmd(application *app.App) *cobra.Command {
	transactionCmd := &cobra.Command{
		Use:     "transaction",
		Aliases: []string{"tx"},
		Short:   "Manage transactions",
		Long:    "Deposit into or withdraw from an account, and list its recent transactions.",
	}

	transactionCmd.AddCommand(NewDepositCmd(application))
	transactionCmd.AddCommand(NewWithdrawCmd(application))
	transactionCmd.AddCommand(NewListCmd(application))

	return transactionCmd
}
