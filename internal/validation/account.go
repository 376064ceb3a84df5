package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/hance08/zenith/internal/utils"
)

const MaxHolderNameLen = 200

// ValidateHolderName checks interactive input for a new account holder.
// The tool interface stores names verbatim and does not call this.
func ValidateHolderName(val string) error {
	name := strings.TrimSpace(val)

	if name == "" {
		return fmt.Errorf("holder name can't be empty")
	}

	if utf8.RuneCountInString(name) > MaxHolderNameLen {
		return fmt.Errorf("holder name too long (max %d characters)", MaxHolderNameLen)
	}
	return nil
}

// ValidateAmount checks a typed amount before it reaches the service.
func ValidateAmount(val string) error {
	amount, err := utils.ParseAmount(val)
	if err != nil {
		return err
	}
	if !amount.IsPositive() {
		return fmt.Errorf("amount must be positive")
	}
	return nil
}
