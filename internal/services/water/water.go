// Package services содержит бизнес-логику учёта воды.
package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/liferpg-tracker/internal/lib/leveling"
	"github.com/magabrotheeeer/liferpg-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/liferpg-tracker/internal/models"
)

// XPSourceWater причина начисления опыта за приём воды.
const XPSourceWater = "Приём воды"

// WaterRepository определяет методы для работы с водой в хранилище.
type WaterRepository interface {
	// CreateWaterLog добавляет запись о приёме воды.
	CreateWaterLog(ctx context.Context, waterLog models.WaterLog) (string, error)
	// ListWaterLogs возвращает записи за календарный день.
	ListWaterLogs(ctx context.Context, userUID, date string) ([]*models.WaterLog, error)
	// GetSettings возвращает настройки пользователя.
	GetSettings(ctx context.Context, userUID string) (*models.UserSettings, error)
	// AwardXP атомарно начисляет опыт и возвращает новые значения профиля.
	AwardXP(ctx context.Context, userUID string, amount int, source string) (*models.XPAward, error)
}

// Intake дневной итог по воде.
type Intake struct {
	Date  string             `json:"date"`  // Календарный день
	Total int                `json:"total"` // Сумма за день, мл
	Goal  int                `json:"goal"`  // Дневная цель, мл
	Logs  []*models.WaterLog `json:"logs"`  // Записи за день
}

// WaterService реализует бизнес-логику учёта воды.
type WaterService struct {
	repo WaterRepository
	log  *slog.Logger
}

// NewWaterService создает новый экземпляр WaterService.
func NewWaterService(repo WaterRepository, log *slog.Logger) *WaterService {
	return &WaterService{
		repo: repo,
		log:  log,
	}
}

// Create добавляет запись о приёме воды за сегодняшний день и начисляет
// опыт. Записей за день может быть несколько.
func (s *WaterService) Create(ctx context.Context, userUID string, amount int) (string, *models.XPAward, error) {
	id, err := s.repo.CreateWaterLog(ctx, models.WaterLog{
		UserUID: userUID,
		Amount:  amount,
		Date:    time.Now().Format(models.DateLayout),
	})
	if err != nil {
		return "", nil, err
	}

	award, err := s.repo.AwardXP(ctx, userUID, leveling.RewardWater, XPSourceWater)
	if err != nil {
		s.log.Warn("failed to award xp for water", sl.Err(err))
		return id, nil, nil
	}
	return id, award, nil
}

// DailyIntake возвращает дневной итог: записи за день, сумму и цель.
// Пустая дата означает сегодняшний день.
func (s *WaterService) DailyIntake(ctx context.Context, userUID, date string) (*Intake, error) {
	if date == "" {
		date = time.Now().Format(models.DateLayout)
	}

	logs, err := s.repo.ListWaterLogs(ctx, userUID, date)
	if err != nil {
		return nil, err
	}
	settings, err := s.repo.GetSettings(ctx, userUID)
	if err != nil {
		return nil, err
	}

	result := Intake{Date: date, Goal: settings.WaterGoal, Logs: logs}
	for _, l := range logs {
		result.Total += l.Amount
	}
	return &result, nil
}
