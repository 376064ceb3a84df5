package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hance08/zenith/internal/app"
	"github.com/hance08/zenith/internal/tools"
	"github.com/hance08/zenith/internal/transport"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

type serveFlags struct {
	Host string
	Port int
}

type serveRunner struct {
	app   *app.App
	flags *serveFlags
}

func NewServeCmd(application *app.App) *cobra.Command {
	flags := &serveFlags{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the banking tool server",
		Long: `Start the banking tool server.

The MCP SSE transport is served on /sse and /message. The same tools are
also available as JSON over HTTP on /tools and /tools/{name}.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &serveRunner{
				app:   application,
				flags: flags,
			}
			if cmd.Flags().Changed("host") {
				runner.app.Config.Server.Host = flags.Host
			}
			if cmd.Flags().Changed("port") {
				runner.app.Config.Server.Port = flags.Port
			}
			return runner.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&flags.Host, "host", "", "Interface to listen on (overrides server.host)")
	cmd.Flags().IntVarP(&flags.Port, "port", "p", 0, "Port to listen on (overrides server.port)")

	return cmd
}

func (r *serveRunner) Run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	log := r.app.Logger
	gin.SetMode(gin.ReleaseMode)

	registry := tools.NewRegistry(r.app.Service)
	mcpServer := transport.NewMCPServer(registry, Version)
	sse := server.NewSSEServer(mcpServer)
	router := transport.NewRouter(registry, sse, log)

	srv := transport.NewServer(r.app.Config.Server.Addr(), router, sse, log)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info("server stopped")
	return nil
}
