// Package main is the entry point for the Finance Dashboard API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/finance-dashboard/backend/config"
	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/infra/db"
	"github.com/finance-dashboard/backend/internal/infra/dependency"
	"github.com/finance-dashboard/backend/internal/infra/kv"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Finance Dashboard API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"store_backend", cfg.Store.Backend,
	)

	// Initialize the key-value store backend
	store, storeHealthChecker, cleanup, err := openStore(cfg)
	if err != nil {
		slog.Error("Failed to initialize storage backend", "backend", cfg.Store.Backend, "error", err)
		os.Exit(1)
	}
	defer cleanup()

	// Wire dependencies
	injector := dependency.NewInjector(cfg, store, storeHealthChecker)
	engine := injector.Router.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}

// openStore builds the configured key-value backend and returns it with a
// health checker and a cleanup function.
func openStore(cfg *config.Config) (adapter.KeyValueStore, func() bool, func(), error) {
	switch cfg.Store.Backend {
	case config.StoreBackendMemory:
		store := kv.NewMemoryStore()
		return store, func() bool { return true }, func() {}, nil

	case config.StoreBackendRedis:
		opts, err := redis.ParseURL(cfg.Store.RedisURL)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("invalid redis URL: %w", err)
		}
		if cfg.Store.RedisPassword != "" {
			opts.Password = cfg.Store.RedisPassword
		}
		if cfg.Store.RedisDB != 0 {
			opts.DB = cfg.Store.RedisDB
		}
		client := redis.NewClient(opts)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		store, err := kv.NewRedisStore(ctx, client)
		if err != nil {
			return nil, nil, nil, err
		}
		healthChecker := func() bool {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return client.Ping(ctx).Err() == nil
		}
		cleanup := func() {
			if err := client.Close(); err != nil {
				slog.Error("Failed to close redis client", "error", err)
			}
		}
		return store, healthChecker, cleanup, nil

	case config.StoreBackendSQL:
		database, err := db.NewConnection(&cfg.Store)
		if err != nil {
			return nil, nil, nil, err
		}
		store, err := kv.NewSQLStore(database.DB())
		if err != nil {
			return nil, nil, nil, err
		}
		cleanup := func() {
			if err := database.Close(); err != nil {
				slog.Error("Failed to close database connection", "error", err)
			}
		}
		return store, database.HealthCheck, cleanup, nil

	default:
		return nil, nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Store.Backend)
	}
}
