package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"inventory-rest-api/internal/config"
	"inventory-rest-api/internal/handler"
	"inventory-rest-api/internal/metrics"
	"inventory-rest-api/internal/repository"
	"inventory-rest-api/internal/router"
	"inventory-rest-api/internal/service"
	"inventory-rest-api/internal/sessionstore"
)

func serve(ctx context.Context, logLevel string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := newLogger(cfg, logLevel)
	logger.Info("starting inventory API",
		slog.String("version", cfg.App.Version),
		slog.String("environment", cfg.App.Environment))

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	if cfg.Database.AutoMigrate {
		if err := store.Migrate(ctx); err != nil {
			return err
		}
	}

	sessions := openSessionStore(ctx, cfg, logger)
	defer sessions.Close()

	m := metrics.New()

	// Services
	tokens := service.NewTokenService(service.TokenConfig{
		Secret: cfg.Auth.JWTSecret,
		TTL:    cfg.Auth.TokenTTL,
		Issuer: cfg.Auth.Issuer,
	}, sessions)
	membership := service.NewMembership(store)
	auth := service.NewAuthService(store, tokens, cfg.Auth.BcryptCost, logger)
	stock := service.NewStockService(store, membership, m, logger)

	// Router
	r := router.New(router.Config{
		Logger:         logger,
		Metrics:        m,
		Sessions:       tokens,
		CookieName:     cfg.Auth.CookieName,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		HealthHandler: handler.NewHealthHandler(cfg.App.Name, cfg.App.Version, map[string]handler.Pinger{
			"database": store,
			"sessions": sessions,
		}),
		AuthHandler: handler.NewAuthHandler(auth, handler.CookieConfig{
			Name:     cfg.Auth.CookieName,
			Secure:   cfg.Auth.CookieSecure,
			SameSite: cfg.Auth.SameSite(),
		}),
		InventoryHandler: handler.NewInventoryHandler(service.NewInventoryService(store, membership)),
		CategoryHandler:  handler.NewCategoryHandler(service.NewCategoryService(store, membership)),
		ItemHandler:      handler.NewItemHandler(service.NewItemService(store, store, membership)),
		OperationHandler: handler.NewOperationHandler(stock, service.NewOperationService(store, membership)),
		UserHandler:      handler.NewUserHandler(service.NewRelationService(store, store, membership, logger)),
	})

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.String("addr", cfg.Server.Address()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

func migrate(ctx context.Context, logLevel string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := newLogger(cfg, logLevel)

	store, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	return store.Migrate(ctx)
}

func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*repository.SQLStore, error) {
	dialect, err := repository.ParseDialect(cfg.Database.Type)
	if err != nil {
		return nil, err
	}

	if dialect == repository.DialectSQLite {
		if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	return repository.Open(ctx, repository.Options{
		Dialect:      dialect,
		DSN:          cfg.Database.DSN(),
		MaxOpenConns: cfg.Database.MaxOpenConns,
		Logger:       logger,
	})
}

// openSessionStore returns the configured revocation store. An unreachable
// Redis falls back to the in-memory store.
func openSessionStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) sessionstore.Store {
	if cfg.Sessions.Type == "redis" {
		s, err := sessionstore.NewRedisStore(ctx, sessionstore.RedisConfig{
			Addr:      cfg.Sessions.RedisAddress(),
			Password:  cfg.Sessions.RedisPassword,
			DB:        cfg.Sessions.RedisDB,
			KeyPrefix: cfg.Sessions.KeyPrefix,
		})
		if err == nil {
			logger.Info("session store initialized", slog.String("type", "redis"))
			return s
		}
		logger.Warn("redis session store unavailable, using memory", slog.String("error", err.Error()))
	}

	logger.Info("session store initialized", slog.String("type", "memory"))
	return sessionstore.NewMemoryStore()
}
