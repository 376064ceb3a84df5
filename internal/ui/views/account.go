package views

import (
	"github.com/hance08/zenith/internal/store"
	"github.com/hance08/zenith/internal/ui"
	"github.com/hance08/zenith/internal/utils"
	"github.com/pterm/pterm"
)

func RenderAccount(acc *store.Account) error {
	ui.Separator()

	holder := acc.HolderName
	if holder == "" {
		holder = pterm.Gray("(none)")
	}

	tableData := pterm.TableData{
		{pterm.Blue("Account ID"), acc.ID},
		{pterm.Blue("Holder"), holder},
		{pterm.Blue("Balance"), utils.FormatAmount(acc.Balance)},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}

type BalanceChangeItem struct {
	AccountID  string
	Type       store.TransactionType
	Amount     string
	NewBalance string
}

func RenderBalanceChange(data BalanceChangeItem) error {
	verb := "Deposited"
	if data.Type == store.TypeWithdrawal {
		verb = "Withdrew"
	}

	tableData := pterm.TableData{
		{pterm.Blue("Account ID"), data.AccountID},
		{pterm.Blue(verb), data.Amount},
		{pterm.Blue("New Balance"), data.NewBalance},
	}

	if err := pterm.DefaultTable.WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Success.Printf("%s %s\n", verb, data.Amount)
	return nil
}
