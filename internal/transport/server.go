package transport

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/pterm/pterm"
)

type Server struct {
	http *http.Server
	sse  *server.SSEServer
	log  *pterm.Logger
}

// NewServer wraps handler in an http.Server. There is no write timeout
// because SSE streams stay open for the life of a client session; they are
// released when Shutdown starts.
func NewServer(addr string, handler http.Handler, sse *server.SSEServer, log *pterm.Logger) *Server {
	streams, closeStreams := context.WithCancel(context.Background())

	hs := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		BaseContext: func(net.Listener) context.Context {
			return streams
		},
	}
	hs.RegisterOnShutdown(closeStreams)

	return &Server{
		http: hs,
		sse:  sse,
		log:  log,
	}
}

func (s *Server) Addr() string {
	return s.http.Addr
}

// Start blocks until the server stops. A graceful Shutdown is not an error.
func (s *Server) Start() error {
	s.log.Info("server listening", s.log.Args("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("shutting down server")
	if s.sse != nil {
		if err := s.sse.Shutdown(ctx); err != nil {
			s.log.Warn("sse shutdown failed", s.log.Args("error", err.Error()))
		}
	}
	return s.http.Shutdown(ctx)
}
