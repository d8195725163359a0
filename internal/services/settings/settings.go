// Package services содержит бизнес-логику настроек пользователя.
package services

import (
	"context"
	"log/slog"

	"github.com/magabrotheeeer/liferpg-tracker/internal/models"
)

// SettingsRepository определяет методы для работы с настройками в хранилище.
type SettingsRepository interface {
	// GetSettings возвращает настройки пользователя или значения по умолчанию.
	GetSettings(ctx context.Context, userUID string) (*models.UserSettings, error)
	// UpsertSettings сохраняет настройки пользователя.
	UpsertSettings(ctx context.Context, userUID string, settings models.UserSettings) error
}

// SettingsService реализует чтение и сохранение настроек.
type SettingsService struct {
	repo SettingsRepository
	log  *slog.Logger
}

// NewSettingsService создает новый экземпляр SettingsService.
func NewSettingsService(repo SettingsRepository, log *slog.Logger) *SettingsService {
	return &SettingsService{
		repo: repo,
		log:  log,
	}
}

// Get возвращает настройки пользователя.
func (s *SettingsService) Get(ctx context.Context, userUID string) (*models.UserSettings, error) {
	return s.repo.GetSettings(ctx, userUID)
}

// Update сохраняет настройки пользователя целиком.
func (s *SettingsService) Update(ctx context.Context, userUID string, req models.DummyUserSettings) error {
	return s.repo.UpsertSettings(ctx, userUID, models.UserSettings{
		WaterGoal:            req.WaterGoal,
		NotificationsEnabled: req.NotificationsEnabled,
		Theme:                req.Theme,
	})
}
