// Package tracker собирает HTTP-приложение трекера: хранилище, кеш,
// сервисы и маршруты.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/liferpg-tracker/internal/cache"
	"github.com/magabrotheeeer/liferpg-tracker/internal/config"
	"github.com/magabrotheeeer/liferpg-tracker/internal/lib/jwt"
	"github.com/magabrotheeeer/liferpg-tracker/internal/migrations"
	adminservice "github.com/magabrotheeeer/liferpg-tracker/internal/services/admin"
	authservice "github.com/magabrotheeeer/liferpg-tracker/internal/services/auth"
	diaryservice "github.com/magabrotheeeer/liferpg-tracker/internal/services/diary"
	financeservice "github.com/magabrotheeeer/liferpg-tracker/internal/services/finance"
	fitnessservice "github.com/magabrotheeeer/liferpg-tracker/internal/services/fitness"
	habitservice "github.com/magabrotheeeer/liferpg-tracker/internal/services/habit"
	profileservice "github.com/magabrotheeeer/liferpg-tracker/internal/services/profile"
	settingsservice "github.com/magabrotheeeer/liferpg-tracker/internal/services/settings"
	taskservice "github.com/magabrotheeeer/liferpg-tracker/internal/services/task"
	fileservice "github.com/magabrotheeeer/liferpg-tracker/internal/services/userfile"
	waterservice "github.com/magabrotheeeer/liferpg-tracker/internal/services/water"
	xpservice "github.com/magabrotheeeer/liferpg-tracker/internal/services/xp"
	"github.com/magabrotheeeer/liferpg-tracker/internal/storage"
	"github.com/magabrotheeeer/liferpg-tracker/internal/storage/filestore"
	"github.com/magabrotheeeer/liferpg-tracker/internal/storage/postgres"
	"github.com/magabrotheeeer/liferpg-tracker/internal/workoutgen"
)

// App представляет HTTP-приложение трекера.
type App struct {
	server  *http.Server
	logger  *slog.Logger
	closeDB func()
}

// newStorage выбирает хранилище по типу из конфигурации: postgres для
// серверной установки, file для встроенного снапшота на диске.
func newStorage(cfg *config.Config) (storage.Storage, func(), error) {
	switch cfg.StorageType {
	case "postgres":
		db, err := postgres.New(cfg.StorageConnectionString)
		if err != nil {
			return nil, nil, err
		}
		if err := migrations.Run(db.DB, "./migrations"); err != nil {
			return nil, nil, err
		}
		return db, func() { _ = db.DB.Close() }, nil
	case "file":
		fs, err := filestore.New(cfg.FileStoragePath)
		if err != nil {
			return nil, nil, err
		}
		return fs, func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage type: %s", cfg.StorageType)
	}
}

// New создает приложение трекера со всеми зависимостями.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	store, closeDB, err := newStorage(cfg)
	if err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		closeDB()
		return nil, err
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	generator := workoutgen.NewClient(cfg.Gemini)

	services := &Services{
		Auth:     authservice.NewAuthService(store, jwtMaker, logger),
		Profile:  profileservice.NewProfileService(store, cacheRedis, logger),
		XP:       xpservice.NewXPService(store, logger),
		Habit:    habitservice.NewHabitService(store, logger),
		Task:     taskservice.NewTaskService(store, logger),
		Finance:  financeservice.NewFinanceService(store, logger),
		Fitness:  fitnessservice.NewFitnessService(store, generator, logger),
		Water:    waterservice.NewWaterService(store, logger),
		Diary:    diaryservice.NewDiaryService(store, logger),
		File:     fileservice.NewFileService(store, logger),
		Settings: settingsservice.NewSettingsService(store, logger),
		Admin:    adminservice.NewAdminService(store, logger),
	}

	router := chi.NewRouter()
	RegisterRoutes(router, logger, jwtMaker, services)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server:  srv,
		logger:  logger,
		closeDB: closeDB,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его при отмене контекста.
func (a *App) Run(ctx context.Context) error {
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
		a.closeDB()
		return err
	}
}
