// Package services содержит бизнес-логику журнала опыта.
package services

import (
	"context"
	"log/slog"

	"github.com/magabrotheeeer/liferpg-tracker/internal/models"
)

// XPRepository определяет методы для работы с журналом опыта в хранилище.
type XPRepository interface {
	// ListXPLogs возвращает журнал начислений опыта пользователя.
	ListXPLogs(ctx context.Context, userUID string) ([]*models.XPLog, error)
}

// XPService отдает историю начислений опыта. Сами начисления выполняют
// сервисы действий через атомарную операцию хранилища.
type XPService struct {
	repo XPRepository
	log  *slog.Logger
}

// NewXPService создает новый экземпляр XPService.
func NewXPService(repo XPRepository, log *slog.Logger) *XPService {
	return &XPService{
		repo: repo,
		log:  log,
	}
}

// History возвращает журнал начислений опыта в хронологическом порядке.
func (s *XPService) History(ctx context.Context, userUID string) ([]*models.XPLog, error) {
	return s.repo.ListXPLogs(ctx, userUID)
}
