// Package services содержит бизнес-логику административной панели.
package services

import (
	"context"
	"log/slog"

	"github.com/magabrotheeeer/liferpg-tracker/internal/models"
)

// AdminRepository определяет методы для работы с административными
// данными в хранилище.
type AdminRepository interface {
	// ListUsers возвращает всех пользователей.
	ListUsers(ctx context.Context) ([]*models.User, error)
	// CountStats подсчитывает сводную статистику сервиса.
	CountStats(ctx context.Context) (*models.AdminStats, error)
}

// AdminService отдает сводную статистику и список пользователей.
// Доступ ограничен ролью admin на уровне маршрутизации.
type AdminService struct {
	repo AdminRepository
	log  *slog.Logger
}

// NewAdminService создает новый экземпляр AdminService.
func NewAdminService(repo AdminRepository, log *slog.Logger) *AdminService {
	return &AdminService{
		repo: repo,
		log:  log,
	}
}

// Stats возвращает сводную статистику сервиса.
func (s *AdminService) Stats(ctx context.Context) (*models.AdminStats, error) {
	return s.repo.CountStats(ctx)
}

// Users возвращает список всех пользователей без хешей.
func (s *AdminService) Users(ctx context.Context) ([]*models.User, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		u.PasswordHash = ""
		u.DiaryPinHash = ""
	}
	return users, nil
}
