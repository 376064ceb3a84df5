/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package account

import (
	"fmt"

	"github.com/hance08/zenith/internal/app"
	"github.com/hance08/zenith/internal/service"
	"github.com/hance08/zenith/internal/ui/prompts"
	"github.com/hance08/zenith/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type createFlags struct {
	Name string
}

type createRunner struct {
	svc   *service.Service
	flags *createFlags
}

func NewCreateCmd(application *app.App) *cobra.Command {
	flags := &createFlags{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new account.",
		Long: `Create a new account with a zero balance.

Without --name you are prompted for the holder name.

Example: zenith account create -n Alice`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &createRunner{
				svc:   application.Service,
				flags: flags,
			}
			return runner.Run(cmd)
		},
	}

	cmd.Flags().StringVarP(&flags.Name, "name", "n", "", "Account holder name")

	return cmd
}

func (r *createRunner) Run(cmd *cobra.Command) error {
	name := r.flags.Name
	if !cmd.Flags().Changed("name") {
		var err error
		name, err = prompts.PromptHolderName()
		if err != nil {
			return err
		}
	}

	acc, err := r.svc.Account.CreateAccount(cmd.Context(), name)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	if err := views.RenderAccount(acc); err != nil {
		return err
	}
	pterm.Success.Println("Account created successfully!")
	return nil
}
