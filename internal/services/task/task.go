// Package services содержит бизнес-логику задач.
package services

import (
	"context"
	"log/slog"

	"github.com/magabrotheeeer/liferpg-tracker/internal/lib/leveling"
	"github.com/magabrotheeeer/liferpg-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/liferpg-tracker/internal/models"
)

// XPSourceTask причина начисления опыта за завершение задачи.
const XPSourceTask = "Задача завершена"

// TaskRepository определяет методы для работы с задачами в хранилище.
type TaskRepository interface {
	// CreateTask добавляет новую задачу и возвращает её ID.
	CreateTask(ctx context.Context, task models.Task) (string, error)
	// ListTasks возвращает задачи пользователя.
	ListTasks(ctx context.Context, userUID string) ([]*models.Task, error)
	// CompleteTask отмечает задачу завершённой, переход односторонний.
	CompleteTask(ctx context.Context, userUID, id string) (bool, error)
	// RemoveTask удаляет задачу.
	RemoveTask(ctx context.Context, userUID, id string) (int, error)
	// AwardXP атомарно начисляет опыт и возвращает новые значения профиля.
	AwardXP(ctx context.Context, userUID string, amount int, source string) (*models.XPAward, error)
}

// CompleteResult результат завершения задачи.
type CompleteResult struct {
	CompletedNow bool            // Задача завершена именно этим вызовом
	Award        *models.XPAward // Новые значения профиля, если опыт начислен
}

// TaskService реализует бизнес-логику задач, включая начисление опыта
// за первое завершение.
type TaskService struct {
	repo TaskRepository
	log  *slog.Logger
}

// NewTaskService создает новый экземпляр TaskService.
func NewTaskService(repo TaskRepository, log *slog.Logger) *TaskService {
	return &TaskService{
		repo: repo,
		log:  log,
	}
}

// Create создает новую задачу пользователя и возвращает её ID.
func (s *TaskService) Create(ctx context.Context, userUID string, req models.DummyTask) (string, error) {
	id, err := s.repo.CreateTask(ctx, models.Task{
		UserUID:  userUID,
		Title:    req.Title,
		Priority: req.Priority,
		DueDate:  req.DueDate,
	})
	if err != nil {
		return "", err
	}
	s.log.Info("created new task", slog.String("id", id))
	return id, nil
}

// List возвращает задачи пользователя, сначала новые.
func (s *TaskService) List(ctx context.Context, userUID string) ([]*models.Task, error) {
	return s.repo.ListTasks(ctx, userUID)
}

// Complete завершает задачу. Опыт начисляется только при первом
// завершении, повторный вызов ничего не меняет.
func (s *TaskService) Complete(ctx context.Context, userUID, id string) (*CompleteResult, error) {
	completedNow, err := s.repo.CompleteTask(ctx, userUID, id)
	if err != nil {
		return nil, err
	}
	if !completedNow {
		return &CompleteResult{CompletedNow: false}, nil
	}

	award, err := s.repo.AwardXP(ctx, userUID, leveling.RewardTask, XPSourceTask)
	if err != nil {
		// задача уже завершена, её не откатываем
		s.log.Warn("failed to award xp for task", sl.Err(err))
		return &CompleteResult{CompletedNow: true}, nil
	}
	return &CompleteResult{CompletedNow: true, Award: award}, nil
}

// Remove удаляет задачу и возвращает количество удалённых записей.
func (s *TaskService) Remove(ctx context.Context, userUID, id string) (int, error) {
	return s.repo.RemoveTask(ctx, userUID, id)
}
