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
	"github.com/magabrotheeeer/liferpg-tracker/internal/storage"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) CreateHabit(ctx context.Context, habit models.Habit) (string, error) {
	args := m.Called(ctx, habit)
	return args.String(0), args.Error(1)
}
func (m *RepoMock) ListHabits(ctx context.Context, userUID string) ([]*models.Habit, error) {
	args := m.Called(ctx, userUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Habit), args.Error(1)
}
func (m *RepoMock) UpdateHabit(ctx context.Context, userUID, id string, upd models.DummyHabit) (int, error) {
	args := m.Called(ctx, userUID, id, upd)
	return args.Int(0), args.Error(1)
}
func (m *RepoMock) RemoveHabit(ctx context.Context, userUID, id string) (int, error) {
	args := m.Called(ctx, userUID, id)
	return args.Int(0), args.Error(1)
}
func (m *RepoMock) CreateHabitLog(ctx context.Context, habitLog models.HabitLog) (bool, error) {
	args := m.Called(ctx, habitLog)
	return args.Bool(0), args.Error(1)
}
func (m *RepoMock) RemoveHabitLog(ctx context.Context, userUID, habitID, date string) (int, error) {
	args := m.Called(ctx, userUID, habitID, date)
	return args.Int(0), args.Error(1)
}
func (m *RepoMock) ListHabitLogs(ctx context.Context, userUID string) ([]*models.HabitLog, error) {
	args := m.Called(ctx, userUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.HabitLog), args.Error(1)
}
func (m *RepoMock) AwardXP(ctx context.Context, userUID string, amount int, source string) (*models.XPAward, error) {
	args := m.Called(ctx, userUID, amount, source)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.XPAward), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestHabitService_Toggle(t *testing.T) {
	const (
		userUID = "user-1"
		habitID = "habit-1"
		date    = "2026-08-28"
	)

	tests := []struct {
		name          string
		setupMocks    func(r *RepoMock)
		wantCompleted bool
		wantAward     bool
		wantErr       error
	}{
		{
			name: "first toggle creates log and awards xp",
			setupMocks: func(r *RepoMock) {
				r.On("CreateHabitLog", mock.Anything, mock.MatchedBy(func(l models.HabitLog) bool {
					return l.HabitID == habitID && l.UserUID == userUID && l.Date == date
				})).Return(true, nil).Once()
				r.On("AwardXP", mock.Anything, userUID, leveling.RewardHabit, XPSourceHabit).
					Return(&models.XPAward{XP: 10, Level: 1, Streak: 1}, nil).Once()
			},
			wantCompleted: true,
			wantAward:     true,
		},
		{
			name: "second toggle removes log without award",
			setupMocks: func(r *RepoMock) {
				r.On("CreateHabitLog", mock.Anything, mock.Anything).Return(false, nil).Once()
				r.On("RemoveHabitLog", mock.Anything, userUID, habitID, date).Return(1, nil).Once()
			},
			wantCompleted: false,
			wantAward:     false,
		},
		{
			name: "award failure keeps the log",
			setupMocks: func(r *RepoMock) {
				r.On("CreateHabitLog", mock.Anything, mock.Anything).Return(true, nil).Once()
				r.On("AwardXP", mock.Anything, userUID, leveling.RewardHabit, XPSourceHabit).
					Return(nil, errors.New("db down")).Once()
			},
			wantCompleted: true,
			wantAward:     false,
		},
		{
			name: "unknown habit",
			setupMocks: func(r *RepoMock) {
				r.On("CreateHabitLog", mock.Anything, mock.Anything).Return(false, storage.ErrNotFound).Once()
			},
			wantErr: storage.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			tt.setupMocks(repo)
			svc := NewHabitService(repo, newNoopLogger())

			result, err := svc.Toggle(context.Background(), userUID, habitID, date)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantCompleted, result.Completed)
			if tt.wantAward {
				assert.NotNil(t, result.Award)
			} else {
				assert.Nil(t, result.Award)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestHabitService_Create(t *testing.T) {
	repo := new(RepoMock)
	repo.On("CreateHabit", mock.Anything, mock.MatchedBy(func(h models.Habit) bool {
		return h.UserUID == "user-1" && h.Title == "Чтение" && h.Frequency == "daily"
	})).Return("habit-42", nil).Once()

	svc := NewHabitService(repo, newNoopLogger())
	id, err := svc.Create(context.Background(), "user-1", models.DummyHabit{
		Title:     "Чтение",
		Frequency: "daily",
		Category:  "развитие",
	})

	assert.NoError(t, err)
	assert.Equal(t, "habit-42", id)
	repo.AssertExpectations(t)
}
