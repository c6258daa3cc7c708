package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/siswa/internal/bootstrap"
	"github.com/yigit/siswa/internal/config"
	"github.com/yigit/siswa/internal/pkg/helpers"
)

// Server holds the state for the HTTP server.
type Server struct {
	config *config.Config
	logger zerolog.Logger
	http   *http.Server
}

// NewServer creates and initializes a new server instance by calling bootstrap functions.
func NewServer() (*Server, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to load config or setup logger: %w", err)
	}

	deps := bootstrap.BuildDependencies(cfg, lgr)

	router, err := bootstrap.SetupRouter(cfg, deps, lgr)
	if err != nil {
		return nil, fmt.Errorf("failed to setup router: %w", err)
	}

	return New(cfg, router, lgr), nil
}

// New creates a server around an already configured router
func New(cfg *config.Config, router *gin.Engine, lgr zerolog.Logger) *Server {
	return &Server{
		config: cfg,
		logger: lgr,
		http: &http.Server{
			Addr:         cfg.Addr(),
			Handler:      router,
			ReadTimeout:  helpers.DurationSetting("read_timeout", cfg.Server.ReadTimeout, 10*time.Second),
			WriteTimeout: helpers.DurationSetting("write_timeout", cfg.Server.WriteTimeout, 10*time.Second),
			IdleTimeout:  helpers.DurationSetting("idle_timeout", cfg.Server.IdleTimeout, 120*time.Second),
		},
	}
}

// Run starts the HTTP server and handles graceful shutdown.
func (s *Server) Run() error {
	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info().Str("addr", s.http.Addr).Msg("HTTP server listening")
		serverErrors <- s.http.ListenAndServe()
	}()

	osSignals := make(chan os.Signal, 1)
	signal.Notify(osSignals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(osSignals)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("error starting server: %w", err)
		}
		return nil
	case sig := <-osSignals:
		s.logger.Info().Str("signal", sig.String()).Msg("Received OS signal, initiating shutdown...")
	}

	return s.Shutdown(context.Background())
}

// Shutdown gracefully stops the server. The in-memory store is discarded with
// the process.
func (s *Server) Shutdown(ctx context.Context) error {
	timeout := helpers.DurationSetting("shutdown_timeout", s.config.Server.ShutdownTimeout, 10*time.Second)
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	s.logger.Info().Msg("Shutting down HTTP server...")
	if err := s.http.Shutdown(ctx); err != nil {
		s.logger.Error().Err(err).Msg("HTTP server shutdown error")
		return fmt.Errorf("server shutdown completed with errors: %w", err)
	}

	s.logger.Info().Msg("HTTP server gracefully stopped.")
	return nil
}
