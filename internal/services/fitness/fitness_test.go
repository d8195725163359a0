package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/liferpg-tracker/internal/lib/leveling"
	"github.com/magabrotheeeer/liferpg-tracker/internal/models"
	"github.com/magabrotheeeer/liferpg-tracker/internal/workoutgen"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) CreateWorkoutPlan(ctx context.Context, plan models.WorkoutPlan) (string, error) {
	args := m.Called(ctx, plan)
	return args.String(0), args.Error(1)
}
func (m *RepoMock) ListWorkoutPlans(ctx context.Context, userUID string) ([]*models.WorkoutPlan, error) {
	args := m.Called(ctx, userUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.WorkoutPlan), args.Error(1)
}
func (m *RepoMock) GetUser(ctx context.Context, userUID string) (*models.User, error) {
	args := m.Called(ctx, userUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
func (m *RepoMock) AwardXP(ctx context.Context, userUID string, amount int, source string) (*models.XPAward, error) {
	args := m.Called(ctx, userUID, amount, source)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.XPAward), args.Error(1)
}

type GeneratorMock struct{ mock.Mock }

func (m *GeneratorMock) Generate(ctx context.Context, goal string, level int) (*models.WorkoutPlan, error) {
	args := m.Called(ctx, goal, level)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WorkoutPlan), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestFitnessService_Generate(t *testing.T) {
	user := &models.User{UID: "user-1", Username: "tester", Level: 3}
	draft := &models.WorkoutPlan{
		Name:        "Набор массы",
		Description: "Базовая программа",
		Exercises:   []models.Exercise{{Name: "Приседания", Sets: 5, Reps: "5"}},
	}

	t.Run("plan is generated for the user's level and saved", func(t *testing.T) {
		repo := new(RepoMock)
		generator := new(GeneratorMock)
		repo.On("GetUser", mock.Anything, "user-1").Return(user, nil).Once()
		generator.On("Generate", mock.Anything, "build muscle", 3).Return(draft, nil).Once()
		repo.On("CreateWorkoutPlan", mock.Anything, mock.MatchedBy(func(p models.WorkoutPlan) bool {
			return p.UserUID == "user-1" && p.Name == "Набор массы"
		})).Return("plan-1", nil).Once()

		svc := NewFitnessService(repo, generator, newNoopLogger())
		plan, err := svc.Generate(context.Background(), "user-1", "build muscle")

		assert.NoError(t, err)
		assert.Equal(t, "plan-1", plan.ID)
		assert.Equal(t, "user-1", plan.UserUID)
		repo.AssertExpectations(t)
		generator.AssertExpectations(t)
	})

	t.Run("generator failure saves nothing", func(t *testing.T) {
		repo := new(RepoMock)
		generator := new(GeneratorMock)
		repo.On("GetUser", mock.Anything, "user-1").Return(user, nil).Once()
		generator.On("Generate", mock.Anything, "build muscle", 3).
			Return(nil, workoutgen.ErrBadPlan).Once()

		svc := NewFitnessService(repo, generator, newNoopLogger())
		_, err := svc.Generate(context.Background(), "user-1", "build muscle")

		assert.ErrorIs(t, err, workoutgen.ErrBadPlan)
		repo.AssertNotCalled(t, "CreateWorkoutPlan", mock.Anything, mock.Anything)
	})

	t.Run("storage failure is returned", func(t *testing.T) {
		repo := new(RepoMock)
		generator := new(GeneratorMock)
		repo.On("GetUser", mock.Anything, "user-1").Return(user, nil).Once()
		generator.On("Generate", mock.Anything, "build muscle", 3).Return(draft, nil).Once()
		repo.On("CreateWorkoutPlan", mock.Anything, mock.Anything).
			Return("", errors.New("db error")).Once()

		svc := NewFitnessService(repo, generator, newNoopLogger())
		_, err := svc.Generate(context.Background(), "user-1", "build muscle")

		assert.Error(t, err)
	})
}

func TestFitnessService_CompleteWorkout(t *testing.T) {
	repo := new(RepoMock)
	generator := new(GeneratorMock)
	repo.On("AwardXP", mock.Anything, "user-1", leveling.RewardWorkout, XPSourceWorkout).
		Return(&models.XPAward{XP: 20, Level: 1, Streak: 1}, nil).Once()

	svc := NewFitnessService(repo, generator, newNoopLogger())
	award, err := svc.CompleteWorkout(context.Background(), "user-1")

	assert.NoError(t, err)
	assert.Equal(t, 20, award.XP)
	repo.AssertExpectations(t)
}
