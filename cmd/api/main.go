package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/fundezy-io/fundezy-web/internal/auth"
	"github.com/fundezy-io/fundezy-web/internal/config"
	"github.com/fundezy-io/fundezy-web/internal/infra"
	"github.com/fundezy-io/fundezy-web/internal/logging"
	"github.com/fundezy-io/fundezy-web/internal/matchtrader"
	"github.com/fundezy-io/fundezy-web/internal/routes"
	"github.com/fundezy-io/fundezy-web/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.LogLevel, cfg.AppEnv)

	ctx := context.Background()

	// Postgres and redis are optional: feedback falls back to the in-memory
	// store without postgres, and the tier cache and submit guard are
	// skipped without redis.
	var db *pgxpool.Pool
	if cfg.DatabaseURL != "" {
		db, err = infra.NewPostgresPool(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Error("connect postgres", "error", err)
			os.Exit(1)
		}
		defer db.Close()
	}

	var cache *redis.Client
	if cfg.RedisURL != "" {
		cache, err = infra.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			logger.Error("connect redis", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := cache.Close(); err != nil {
				logger.Warn("close redis", "error", err)
			}
		}()
	}

	backend := matchtrader.NewClient(cfg.BackendBaseURL,
		matchtrader.WithTimeout(cfg.BackendTimeout),
		matchtrader.WithLogger(logger),
	)

	provider := buildAuthProvider(cfg, logger)

	srv, err := server.New(cfg, routes.Deps{
		DB:      db,
		Cache:   cache,
		Logger:  logger,
		Backend: backend,
		Auth:    provider,
	})
	if err != nil {
		logger.Error("build server", "error", err)
		os.Exit(1)
	}

	srvErrCh := make(chan error, 1)
	go func() {
		srvErrCh <- srv.Listen()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("shutdown signal received", "signal", sig.String())
	case err := <-srvErrCh:
		if err != nil {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
		return
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownPeriod)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
		os.Exit(1)
	}

	logger.Info("server exited cleanly")
}

// buildAuthProvider selects the auth backend. Development gets the in-memory
// provider with a seeded account so the gated surface is reachable locally.
func buildAuthProvider(cfg config.Config, logger *slog.Logger) auth.Provider {
	provider := auth.NewDevProvider()
	if cfg.IsDev() {
		if _, err := provider.Register("dev@fundezy.io", "devpassword", "Dev", "User"); err == nil {
			provider.MarkVerified("dev@fundezy.io")
		} else {
			logger.Warn("seed dev user", "error", err)
		}
	}
	return provider
}
