package app

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hance08/zenith/internal/config"
	"github.com/hance08/zenith/internal/logger"
	"github.com/hance08/zenith/internal/service"
	"github.com/hance08/zenith/internal/store"
	"github.com/pterm/pterm"
)

type App struct {
	Service *service.Service
	Store   store.TxRepository
	Logger  *pterm.Logger
	Config  *config.Config
}

// NewApp builds the logger, opens the database, makes sure the schema exists
// and wires the services. The returned cleanup closes the database.
func NewApp(cfg *config.Config, migrationFS fs.FS) (*App, func(), error) {
	log, err := logger.New(logger.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Writer: os.Stderr,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	dbPath, err := ExpandPath(cfg.Database.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid database path: %w", err)
	}
	if dbPath == "" {
		appDir, err := config.AppDataDir()
		if err != nil {
			return nil, nil, err
		}
		dbPath = filepath.Join(appDir, "bank.db")
	}

	dbStore, err := store.NewStore(dbPath, migrationFS)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	if err := dbStore.InitSchema(); err != nil {
		_ = dbStore.Close()
		return nil, nil, err
	}
	log.Debug("database ready", log.Args("path", dbPath))

	svc := service.NewService(dbStore, cfg, log)

	cleanup := func() {
		if err := dbStore.Close(); err != nil {
			log.Error("closing database failed", log.Args("error", err.Error()))
		}
	}

	return &App{
		Service: svc,
		Store:   dbStore,
		Logger:  log,
		Config:  cfg,
	}, cleanup, nil
}

// ExpandPath resolves a leading "~" to the user's home directory.
func ExpandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	if path == "~" {
		return home, nil
	}
	if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~\\") {
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}
