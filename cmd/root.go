package cmd

import (
	"io/fs"
	"os"

	"github.com/hance08/zenith/cmd/account"
	"github.com/hance08/zenith/cmd/transaction"
	"github.com/hance08/zenith/internal/app"
	"github.com/hance08/zenith/internal/config"
	"github.com/hance08/zenith/internal/errhandler"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// Version is overridden at build time with -ldflags.
var Version = "dev"

var cfgFile string

func Execute(migrations fs.FS) {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	application := &app.App{}
	cleanup := func() {}

	rootCmd := NewRootCmd(application, initApp(application, migrations, &cleanup))

	err := rootCmd.Execute()
	cleanup()
	if err != nil {
		errhandler.HandleError(err)
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree around application. setup fills
// application in before any subcommand runs; help and version output never
// call it. A nil setup means application is already built.
func NewRootCmd(application *app.App, setup func() error) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "zenith",
		Short:         "zenith is a banking tool server with a local CLI",
		Long:          `zenith serves account tools (create, deposit, withdraw, balance, history) over MCP and JSON HTTP, and exposes the same operations on the command line.`,
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if setup == nil {
				return nil
			}
			return setup()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")

	rootCmd.AddCommand(NewServeCmd(application))
	rootCmd.AddCommand(NewInfoCmd(application))
	rootCmd.AddCommand(account.NewAccountCmd(application))
	rootCmd.AddCommand(transaction.NewTransactionCmd(application))

	return rootCmd
}

// initApp loads the config named by --config and opens the database.
func initApp(application *app.App, migrations fs.FS, cleanup *func()) func() error {
	return func() error {
		appDir, err := config.AppDataDir()
		if err != nil {
			return err
		}
		cfg, err := config.Load(cfgFile, appDir)
		if err != nil {
			return err
		}

		built, closeDB, err := app.NewApp(cfg, migrations)
		if err != nil {
			return err
		}

		*application = *built
		*cleanup = closeDB
		return nil
	}
}
