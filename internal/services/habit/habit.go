// Package services содержит бизнес-логику привычек и их отметок.
package services

import (
	"context"
	"log/slog"

	"github.com/magabrotheeeer/liferpg-tracker/internal/lib/leveling"
	"github.com/magabrotheeeer/liferpg-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/liferpg-tracker/internal/models"
)

// XPSourceHabit причина начисления опыта за выполнение привычки.
const XPSourceHabit = "Привычка выполнена"

// HabitRepository определяет методы для работы с привычками в хранилище.
type HabitRepository interface {
	// CreateHabit добавляет новую привычку и возвращает её ID.
	CreateHabit(ctx context.Context, habit models.Habit) (string, error)
	// ListHabits возвращает привычки пользователя.
	ListHabits(ctx context.Context, userUID string) ([]*models.Habit, error)
	// UpdateHabit обновляет данные привычки.
	UpdateHabit(ctx context.Context, userUID, id string, upd models.DummyHabit) (int, error)
	// RemoveHabit удаляет привычку, отметки остаются как история.
	RemoveHabit(ctx context.Context, userUID, id string) (int, error)
	// CreateHabitLog отмечает выполнение за день, если отметки ещё не было.
	CreateHabitLog(ctx context.Context, habitLog models.HabitLog) (bool, error)
	// RemoveHabitLog снимает отметку выполнения за день.
	RemoveHabitLog(ctx context.Context, userUID, habitID, date string) (int, error)
	// ListHabitLogs возвращает все отметки пользователя.
	ListHabitLogs(ctx context.Context, userUID string) ([]*models.HabitLog, error)
	// AwardXP атомарно начисляет опыт и возвращает новые значения профиля.
	AwardXP(ctx context.Context, userUID string, amount int, source string) (*models.XPAward, error)
}

// ToggleResult результат переключения отметки привычки за день.
type ToggleResult struct {
	Completed bool            // Состояние отметки после вызова
	Award     *models.XPAward // Новые значения профиля, если опыт начислен
}

// HabitService реализует бизнес-логику привычек, включая начисление
// опыта за отметки.
type HabitService struct {
	repo HabitRepository
	log  *slog.Logger
}

// NewHabitService создает новый экземпляр HabitService.
func NewHabitService(repo HabitRepository, log *slog.Logger) *HabitService {
	return &HabitService{
		repo: repo,
		log:  log,
	}
}

// Create создает новую привычку пользователя и возвращает её ID.
func (s *HabitService) Create(ctx context.Context, userUID string, req models.DummyHabit) (string, error) {
	id, err := s.repo.CreateHabit(ctx, models.Habit{
		UserUID:   userUID,
		Title:     req.Title,
		Frequency: req.Frequency,
		Category:  req.Category,
	})
	if err != nil {
		return "", err
	}
	s.log.Info("created new habit", slog.String("id", id))
	return id, nil
}

// List возвращает привычки пользователя в порядке создания.
func (s *HabitService) List(ctx context.Context, userUID string) ([]*models.Habit, error) {
	return s.repo.ListHabits(ctx, userUID)
}

// Update обновляет привычку и возвращает количество изменённых записей.
func (s *HabitService) Update(ctx context.Context, userUID, id string, req models.DummyHabit) (int, error) {
	return s.repo.UpdateHabit(ctx, userUID, id, req)
}

// Remove удаляет привычку. Отметки выполнения сохраняются как история.
func (s *HabitService) Remove(ctx context.Context, userUID, id string) (int, error) {
	return s.repo.RemoveHabit(ctx, userUID, id)
}

// Toggle переключает отметку выполнения привычки за день. Первая отметка
// за день создаёт запись и начисляет опыт, повторный вызов за тот же день
// снимает отметку без обратного списания опыта.
func (s *HabitService) Toggle(ctx context.Context, userUID, habitID, date string) (*ToggleResult, error) {
	created, err := s.repo.CreateHabitLog(ctx, models.HabitLog{
		HabitID: habitID,
		UserUID: userUID,
		Date:    date,
	})
	if err != nil {
		return nil, err
	}

	if !created {
		if _, err := s.repo.RemoveHabitLog(ctx, userUID, habitID, date); err != nil {
			return nil, err
		}
		return &ToggleResult{Completed: false}, nil
	}

	award, err := s.repo.AwardXP(ctx, userUID, leveling.RewardHabit, XPSourceHabit)
	if err != nil {
		// отметка уже сохранена, её не откатываем
		s.log.Warn("failed to award xp for habit", sl.Err(err))
		return &ToggleResult{Completed: true}, nil
	}
	return &ToggleResult{Completed: true, Award: award}, nil
}

// ListLogs возвращает все отметки выполнения привычек пользователя.
func (s *HabitService) ListLogs(ctx context.Context, userUID string) ([]*models.HabitLog, error) {
	return s.repo.ListHabitLogs(ctx, userUID)
}
