// Package fitcoach собирает HTTP-приложение: хранилище сущностей,
// хранилище сессий, сервисы и маршруты.
package fitcoach

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/fitcoach/internal/config"
	"github.com/magabrotheeeer/fitcoach/internal/lib/jwt"
	"github.com/magabrotheeeer/fitcoach/internal/migrations"
	"github.com/magabrotheeeer/fitcoach/internal/services/auth"
	consultationservice "github.com/magabrotheeeer/fitcoach/internal/services/consultation"
	progressservice "github.com/magabrotheeeer/fitcoach/internal/services/progress"
	userservice "github.com/magabrotheeeer/fitcoach/internal/services/user"
	"github.com/magabrotheeeer/fitcoach/internal/session"
	"github.com/magabrotheeeer/fitcoach/internal/storage"
	"github.com/magabrotheeeer/fitcoach/internal/storage/memory"
	"github.com/magabrotheeeer/fitcoach/internal/storage/repository"
)

// App инкапсулирует HTTP-сервер и фоновые процессы приложения.
type App struct {
	server   *http.Server
	logger   *slog.Logger
	store    storage.EntityStore
	sessions session.Store
	cfg      *config.Config
}

// New собирает приложение из конфигурации: выбирает реализацию хранилища
// сущностей и сессий, создаёт сервисы и регистрирует маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	store, err := newEntityStore(cfg)
	if err != nil {
		return nil, err
	}

	sessions, err := newSessionStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)

	authService := auth.NewAuthService(store, sessions, jwtMaker)
	consultationService := consultationservice.New(store, logger)
	progressService := progressservice.New(store, logger)
	userService := userservice.New(store, sessions, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, authService, consultationService, progressService, userService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server:   srv,
		logger:   logger,
		store:    store,
		sessions: sessions,
		cfg:      cfg,
	}, nil
}

func newEntityStore(cfg *config.Config) (storage.EntityStore, error) {
	switch cfg.StorageDriver {
	case "", "memory":
		return memory.New(), nil
	case "postgres":
		db, err := repository.New(cfg.StorageConnectionString)
		if err != nil {
			return nil, err
		}
		if err = migrations.Run(db.DB, "./migrations"); err != nil {
			return nil, err
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unknown storage driver: %q", cfg.StorageDriver)
	}
}

func newSessionStore(ctx context.Context, cfg *config.Config) (session.Store, error) {
	switch cfg.SessionDriver {
	case "", "memory":
		return session.NewMemoryStore(cfg.SessionTTL), nil
	case "redis":
		return session.NewRedisStore(ctx, cfg.RedisConnection, cfg.SessionTTL)
	default:
		return nil, fmt.Errorf("unknown session driver: %q", cfg.SessionDriver)
	}
}

// Run запускает HTTP-сервер и вычистку просроченных сессий, затем ждет
// отмены контекста и гасит сервер с таймаутом.
func (a *App) Run(ctx context.Context) error {
	if mem, ok := a.sessions.(*session.MemoryStore); ok {
		go mem.RunPruner(ctx, a.cfg.PruneInterval, a.logger)
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if db, ok := a.store.(*repository.Storage); ok {
			db.DB.Close()
		}
		return err
	}
}
