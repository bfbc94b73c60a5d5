package gateservice

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/samiksha-ambastha1205/round2-mechatron/internal/api"
	"github.com/samiksha-ambastha1205/round2-mechatron/internal/config"
	"github.com/samiksha-ambastha1205/round2-mechatron/internal/platform/logger"
)

const serviceName = "gate-service"

const devHint = "For local development, set AGENT_CODEWORD and any TEAM_ID_* (e.g., TEAM_ID_251=1251) " +
	"in your .env file. Optionally set AGENT_ID as a single allowed ID."

// Options carries command-line overrides.
type Options struct {
	Port     int      // overrides PORT when non-zero
	EnvFiles []string // dotenv files; ".env" when empty
}

// Run starts the gate HTTP server and blocks until shutdown or error.
func Run(opts Options) error {
	bootLog := logger.New(serviceName)

	if err := config.LoadDotEnv(opts.EnvFiles...); err != nil {
		bootLog.Error().Err(err).Msg("Failed to load env file")
		return err
	}

	cfg, err := config.New()
	if err != nil {
		bootLog.Error().Err(err).Msg("Failed to load configuration")
		return err
	}
	if opts.Port != 0 {
		cfg.HTTPPort = opts.Port
		if err := cfg.Validate(); err != nil {
			bootLog.Error().Err(err).Msg("Invalid port override")
			return err
		}
	}

	log := logger.NewWithLevel(serviceName, cfg.LogLevel)

	// Create cancellable root context bound to SIGINT/SIGTERM
	ctx, stop := newServerContext()
	defer stop()

	ln, err := net.Listen("tcp", cfg.GetHTTPAddr())
	if err != nil {
		log.Error().Err(err).Str("addr", cfg.GetHTTPAddr()).Msg("listen failed")
		return err
	}
	return Serve(ctx, cfg, log, ln)
}

// Serve runs the server on ln until ctx is cancelled or the server fails.
func Serve(ctx context.Context, cfg *config.Config, log zerolog.Logger, ln net.Listener) error {
	creds := cfg.Credentials()
	if creds.Len() == 0 {
		log.Warn().Msg("No identifiers configured; every login will be rejected")
	}

	handler := api.NewHandler(api.DepsFromConfig(cfg, creds), log)
	server := newHTTPServer(ctx, handler)
	errCh := serveHTTP(server, ln, log, cfg)

	if !cfg.IsProduction() {
		log.Info().Msg(devHint)
	}

	// Graceful shutdown on context cancel or server error
	select {
	case <-ctx.Done():
		log.Info().Msg("Shutting down server")
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctxShutdown); err != nil {
			log.Error().Err(err).Msg("Server forced to shutdown")
			return err
		}
		log.Info().Msg("Server exited")
		return nil
	case err := <-errCh:
		log.Error().Err(err).Msg("HTTP server failed")
		return err
	}
}

func newHTTPServer(ctx context.Context, handler http.Handler) *http.Server {
	return &http.Server{
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
}

func serveHTTP(server *http.Server, ln net.Listener, log zerolog.Logger, cfg *config.Config) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msgf("Server is running on %s", ln.Addr())
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	return errCh
}

// newServerContext returns a cancellable context that is cancelled on SIGINT/SIGTERM.
func newServerContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
