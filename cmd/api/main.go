package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"pet-adoption/internal/adapters/auth/identity"
	"pet-adoption/internal/adapters/auth/jwt"
	pg "pet-adoption/internal/adapters/storage/postgres"
	"pet-adoption/internal/platform/config"
	"pet-adoption/internal/platform/flash"
	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/platform/metrics"
	"pet-adoption/internal/ports/auth"
	"pet-adoption/internal/router"
)

// @title Pet Adoption API
// @version 1.0
// @description Publicación de mascotas y ciclo de vida de solicitudes de adopción.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		App:    cfg.Log.App,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := openDB(ctx, cfg, log)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	verifier, err := newVerifier(cfg)
	if err != nil {
		return err
	}

	h := router.NewRouter(router.Options{
		AuthVerifier: verifier,
		DB:           db,
		Logger:       log,
		Flash:        flash.New(flash.Options{Secret: cfg.Session.Secret, Secure: cfg.Session.Secure}),
		Metrics:      metrics.New(),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", zap.String("addr", srv.Addr), zap.String("auth_mode", cfg.Auth.Mode), zap.Bool("postgres", db != nil))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// openDB devuelve nil si no hay DSN (storage in-memory).
func openDB(ctx context.Context, cfg *config.Config, log *zap.Logger) (*sql.DB, error) {
	if cfg.Database.DSN == "" {
		log.Warn("DB_DSN not set, using in-memory storage")
		return nil, nil
	}

	db, err := pg.Open(ctx, cfg.Database.DSN, cfg.Database.MaxOpenConns)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if cfg.Database.Migrate {
		if err := pg.RunMigrations(db, log); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}
	return db, nil
}

// newVerifier devuelve nil en modo dev (identidad por headers X-Debug-*).
func newVerifier(cfg *config.Config) (auth.AuthVerifier, error) {
	switch cfg.Auth.Mode {
	case config.AuthModeJWT:
		v, err := jwt.NewVerifier(cfg.Auth.JWTSecret)
		if err != nil {
			return nil, err
		}
		return v, nil
	case config.AuthModeRemote:
		client, err := identity.NewClient(identity.Config{
			BaseURL: cfg.Auth.IdentityBaseURL,
			APIKey:  cfg.Auth.IdentityAPIKey,
			Timeout: cfg.Auth.IdentityTimeout,
		})
		if err != nil {
			return nil, fmt.Errorf("identity client: %w", err)
		}
		return identity.NewVerifier(client), nil
	default:
		return nil, nil
	}
}
