package views

import (
	"github.com/hance08/zenith/internal/store"
	"github.com/hance08/zenith/internal/utils"
	"github.com/pterm/pterm"
)

type TransactionListView struct{}

func NewTransactionListView() *TransactionListView {
	return &TransactionListView{}
}

func (v *TransactionListView) Render(accountID string, txns []*store.Transaction, limit int) error {
	if len(txns) == 0 {
		pterm.Warning.Println("No transactions found")
		return nil
	}

	pterm.DefaultSection.Printf("Recent transactions for %s (limit: %d)", accountID, limit)

	tableData := pterm.TableData{
		{"ID", "Date", "Type", "Amount"},
	}

	for _, tx := range txns {
		amount := utils.FormatAmount(tx.Amount)
		txType := string(tx.Type)

		switch tx.Type {
		case store.TypeWithdrawal:
			txType = pterm.Red(txType)
			amount = pterm.Red("-" + amount)
		case store.TypeDeposit:
			txType = pterm.Green(txType)
			amount = pterm.Green(amount)
		}

		tableData = append(tableData, []string{
			tx.ID,
			tx.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			txType,
			amount,
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d transactions\n", len(txns))
	return nil
}
