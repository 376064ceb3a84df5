package prompts

import (
	"fmt"
	"strings"

	"github.com/hance08/zenith/internal/validation"
)

// PromptHolderName asks for the name of a new account's holder.
func PromptHolderName() (string, error) {
	name, err := PromptInput("Account holder name:", "The name printed on the account.", validation.ValidateHolderName)
	if err != nil {
		return "", fmt.Errorf("input cancelled: %w", err)
	}
	return strings.TrimSpace(name), nil
}
