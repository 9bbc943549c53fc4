package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/keystep/keystep/internal/handshake/http"
	"github.com/keystep/keystep/internal/handshake/metrics"
	"github.com/keystep/keystep/internal/handshake/service"
	"github.com/keystep/keystep/pkg/slogx"
)

// BuildVersion is set at build time via ldflags.
var BuildVersion = "v0.1.0"

// Application encapsulates the handshake service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	metrics   *metrics.Metrics
	handshake *service.HandshakeService
	reaper    *service.ExpiryReaper

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates an Application instance with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	if cfg.VerificationCode == "" {
		return nil, errors.New("verification code must not be empty")
	}
	if cfg.VerificationTTL <= 0 || cfg.CredentialTTL <= 0 || cfg.SessionTTL <= 0 {
		return nil, errors.New("artifact TTLs must be positive")
	}

	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "keystep",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	// Start the background expiry reaper
	app.reaper.Start()

	app.logger.Info("handshake service starting", "port", app.cfg.Port, "version", BuildVersion)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down handshake service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	// Stop the expiry reaper
	app.reaper.Stop()

	// Nothing persists; whatever is still live vanishes with the process.
	app.logger.Info("dropping in-memory registries",
		"verifications", app.handshake.VerificationCount(),
		"credentials", app.handshake.CredentialCount(),
		"sessions", app.handshake.SessionCount(),
	)

	app.logger.Info("handshake service stopped")
	return nil
}

// initServices initializes the coordinator, metrics and the reaper.
func (app *Application) initServices() {
	app.metrics = metrics.New()

	app.handshake = service.NewHandshakeService(
		service.NewStaticCodeValidator(app.cfg.VerificationCode),
		service.HandshakeTTLs{
			Verification: app.cfg.VerificationTTL,
			Credential:   app.cfg.CredentialTTL,
			Session:      app.cfg.SessionTTL,
		},
	)

	app.metrics.TrackRegistrySize("verifications", app.handshake.VerificationCount)
	app.metrics.TrackRegistrySize("credentials", app.handshake.CredentialCount)
	app.metrics.TrackRegistrySize("sessions", app.handshake.SessionCount)

	app.reaper = service.NewExpiryReaper(
		app.handshake,
		app.logger,
		app.cfg.ReaperInterval,
		app.metrics,
	)
}

// initHTTP initializes the HTTP router and server.
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(BuildVersion, app.logger, app.handshake, app.metrics)
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
