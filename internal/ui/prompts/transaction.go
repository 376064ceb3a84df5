package prompts

import (
	"fmt"

	"github.com/hance08/zenith/internal/validation"
)

// PromptAmount asks for a positive amount when it was not given on the
// command line.
func PromptAmount(message string) (string, error) {
	amount, err := PromptInput(message, "e.g. 150 or 150.50", validation.ValidateAmount)
	if err != nil {
		return "", fmt.Errorf("input cancelled: %w", err)
	}
	return amount, nil
}

// PromptConfirmWithdrawal asks before money leaves an account.
func PromptConfirmWithdrawal(accountID, amount string) (bool, error) {
	return PromptConfirm(fmt.Sprintf("Withdraw %s from account %s?", amount, accountID), false)
}
