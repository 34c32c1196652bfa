package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/JonMunkholm/mmc-maps/internal/assets"
	"github.com/JonMunkholm/mmc-maps/internal/config"
	"github.com/JonMunkholm/mmc-maps/internal/core"
	"github.com/JonMunkholm/mmc-maps/internal/logging"
	"github.com/JonMunkholm/mmc-maps/internal/theme"
	"github.com/JonMunkholm/mmc-maps/internal/web"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"asset_source", cfg.AssetSource(),
		"max_concurrent_loads", cfg.Assets.MaxConcurrent,
		"rate_limit_enabled", cfg.Rate.Enabled,
		"metrics_enabled", cfg.Metrics.Enabled,
	)
	slog.Debug("full configuration", "config", cfg.String())

	ctx := context.Background()

	source, closeSource, err := assets.Open(ctx, cfg)
	if err != nil {
		slog.Error("failed to open route assets", "source", cfg.AssetSource(), "error", err)
		os.Exit(1)
	}
	defer closeSource()

	if routes, err := source.List(ctx); err != nil {
		slog.Warn("route catalog not readable yet", "error", err)
	} else {
		slog.Info("routes available", "count", len(routes))
	}

	themes, err := theme.NewStore(cfg.Theme.TokensFile)
	if err != nil {
		slog.Error("failed to load theme tokens", "file", cfg.Theme.TokensFile, "error", err)
		os.Exit(1)
	}

	// Cancellable context for background jobs
	jobCtx, cancelJobs := context.WithCancel(context.Background())
	defer cancelJobs()

	if cfg.Theme.TokensFile != "" && cfg.Theme.Watch {
		if err := themes.Watch(jobCtx); err != nil {
			slog.Warn("theme hot reload disabled", "error", err)
		} else {
			slog.Info("watching theme tokens", "file", cfg.Theme.TokensFile)
		}
	}

	service := core.NewService(source, cfg)
	server := web.NewServer(service, themes, cfg)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")
		cancelJobs()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		// Let in-flight profile loads finish before closing connections
		if status := service.LimiterStatus(); status.Active > 0 {
			slog.Info("waiting for loads to complete", "active", status.Active)
			if err := service.WaitForLoads(shutdownCtx); err != nil {
				slog.Warn("loads did not complete in time", "error", err)
			} else {
				slog.Info("all loads completed")
			}
		}

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
