package cmd

import (
	"os"

	"github.com/hance08/zenith/internal/app"
	"github.com/hance08/zenith/internal/config"
	"github.com/hance08/zenith/internal/ui"
	"github.com/hance08/zenith/internal/ui/views"
	"github.com/spf13/cobra"
)

type infoRunner struct {
	cfg *config.Config
}

func NewInfoCmd(application *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display current configuration, database path, and listen address.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				cfg: application.Config,
			}

			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	configPath := r.cfg.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	expandedDBPath, _ := app.ExpandPath(r.cfg.Database.Path)

	dbExists := false
	if _, err := os.Stat(expandedDBPath); err == nil {
		dbExists = true
	}

	ui.PrintL1Title("zenith %s", Version)

	items := views.SystemInfoItem{
		ConfigPath:       configPath,
		DBPath:           expandedDBPath,
		DBExists:         dbExists,
		ListenAddr:       r.cfg.Server.Addr(),
		LogLevel:         r.cfg.Log.Level,
		TransactionLimit: r.cfg.Defaults.TransactionLimit,
		AppDataDir:       getAppDataDirOrUnknown(),
	}

	return views.RenderSystemInfo(items)
}

func getAppDataDirOrUnknown() string {
	dir, err := config.AppDataDir()
	if err != nil {
		return "Unknown"
	}
	return dir
}
