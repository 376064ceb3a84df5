package prompts

import (
	"github.com/AlecAivazis/survey/v2"
	"github.com/charmbracelet/huh"
	"github.com/hance08/zenith/internal/ui"
)

// PromptInput prompts for a generic text input with optional validator
func PromptInput(message string, helpText string, validator func(string) error) (string, error) {
	var inputVal string

	input := huh.NewInput().
		Title(message).
		Value(&inputVal)

	if helpText != "" {
		input.Description(helpText)
	}

	if validator != nil {
		input.Validate(validator)
	}

	err := input.Run()
	return inputVal, err
}

// PromptConfirm asks a yes/no question, defaulting to defaultValue.
func PromptConfirm(message string, defaultValue bool) (bool, error) {
	confirm := defaultValue

	prompt := &survey.Confirm{
		Message: message,
		Default: defaultValue,
	}
	if err := survey.AskOne(prompt, &confirm, ui.IconOption()); err != nil {
		return false, err
	}

	return confirm, nil
}
