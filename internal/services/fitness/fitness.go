// Package services содержит бизнес-логику планов тренировок, включая
// генерацию плана внешней моделью.
package services

import (
	"context"
	"log/slog"

	"github.com/magabrotheeeer/liferpg-tracker/internal/lib/leveling"
	"github.com/magabrotheeeer/liferpg-tracker/internal/models"
)

// XPSourceWorkout причина начисления опыта за завершённую тренировку.
const XPSourceWorkout = "Тренировка завершена"

// WorkoutRepository определяет методы для работы с тренировками в хранилище.
type WorkoutRepository interface {
	// CreateWorkoutPlan добавляет план тренировки и возвращает его ID.
	CreateWorkoutPlan(ctx context.Context, plan models.WorkoutPlan) (string, error)
	// ListWorkoutPlans возвращает планы тренировок пользователя.
	ListWorkoutPlans(ctx context.Context, userUID string) ([]*models.WorkoutPlan, error)
	// GetUser возвращает пользователя по UID.
	GetUser(ctx context.Context, userUID string) (*models.User, error)
	// AwardXP атомарно начисляет опыт и возвращает новые значения профиля.
	AwardXP(ctx context.Context, userUID string, amount int, source string) (*models.XPAward, error)
}

// PlanGenerator описывает внешний генератор планов тренировок.
type PlanGenerator interface {
	// Generate возвращает черновик плана под заданную цель и уровень.
	Generate(ctx context.Context, goal string, level int) (*models.WorkoutPlan, error)
}

// FitnessService реализует бизнес-логику планов тренировок. Создание
// плана опыт не начисляет, награда выдаётся за завершённую тренировку.
type FitnessService struct {
	repo      WorkoutRepository
	generator PlanGenerator
	log       *slog.Logger
}

// NewFitnessService создает новый экземпляр FitnessService.
func NewFitnessService(repo WorkoutRepository, generator PlanGenerator, log *slog.Logger) *FitnessService {
	return &FitnessService{
		repo:      repo,
		generator: generator,
		log:       log,
	}
}

// Create сохраняет план тренировки, составленный вручную.
func (s *FitnessService) Create(ctx context.Context, userUID string, req models.DummyWorkoutPlan) (string, error) {
	id, err := s.repo.CreateWorkoutPlan(ctx, models.WorkoutPlan{
		UserUID:     userUID,
		Name:        req.Name,
		Description: req.Description,
		Exercises:   req.Exercises,
	})
	if err != nil {
		return "", err
	}
	s.log.Info("created new workout plan", slog.String("id", id))
	return id, nil
}

// List возвращает планы тренировок пользователя, сначала новые.
func (s *FitnessService) List(ctx context.Context, userUID string) ([]*models.WorkoutPlan, error) {
	return s.repo.ListWorkoutPlans(ctx, userUID)
}

// Generate запрашивает план у внешнего генератора и сохраняет его.
// Некорректный ответ генератора не сохраняется даже частично.
func (s *FitnessService) Generate(ctx context.Context, userUID, goal string) (*models.WorkoutPlan, error) {
	user, err := s.repo.GetUser(ctx, userUID)
	if err != nil {
		return nil, err
	}

	plan, err := s.generator.Generate(ctx, goal, user.Level)
	if err != nil {
		return nil, err
	}

	plan.UserUID = userUID
	id, err := s.repo.CreateWorkoutPlan(ctx, *plan)
	if err != nil {
		return nil, err
	}
	plan.ID = id

	s.log.Info("generated new workout plan", slog.String("id", id), slog.String("goal", goal))
	return plan, nil
}

// CompleteWorkout фиксирует завершённую тренировку начислением опыта.
func (s *FitnessService) CompleteWorkout(ctx context.Context, userUID string) (*models.XPAward, error) {
	return s.repo.AwardXP(ctx, userUID, leveling.RewardWorkout, XPSourceWorkout)
}
