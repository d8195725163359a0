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

func (m *RepoMock) CreateTask(ctx context.Context, task models.Task) (string, error) {
	args := m.Called(ctx, task)
	return args.String(0), args.Error(1)
}
func (m *RepoMock) ListTasks(ctx context.Context, userUID string) ([]*models.Task, error) {
	args := m.Called(ctx, userUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Task), args.Error(1)
}
func (m *RepoMock) CompleteTask(ctx context.Context, userUID, id string) (bool, error) {
	args := m.Called(ctx, userUID, id)
	return args.Bool(0), args.Error(1)
}
func (m *RepoMock) RemoveTask(ctx context.Context, userUID, id string) (int, error) {
	args := m.Called(ctx, userUID, id)
	return args.Int(0), args.Error(1)
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

func TestTaskService_Complete(t *testing.T) {
	const (
		userUID = "user-1"
		taskID  = "task-1"
	)

	tests := []struct {
		name             string
		setupMocks       func(r *RepoMock)
		wantCompletedNow bool
		wantAward        bool
		wantErr          error
	}{
		{
			name: "first completion awards xp",
			setupMocks: func(r *RepoMock) {
				r.On("CompleteTask", mock.Anything, userUID, taskID).Return(true, nil).Once()
				r.On("AwardXP", mock.Anything, userUID, leveling.RewardTask, XPSourceTask).
					Return(&models.XPAward{XP: 15, Level: 1, Streak: 1}, nil).Once()
			},
			wantCompletedNow: true,
			wantAward:        true,
		},
		{
			name: "repeated completion is a no-op",
			setupMocks: func(r *RepoMock) {
				r.On("CompleteTask", mock.Anything, userUID, taskID).Return(false, nil).Once()
			},
			wantCompletedNow: false,
			wantAward:        false,
		},
		{
			name: "award failure keeps the task completed",
			setupMocks: func(r *RepoMock) {
				r.On("CompleteTask", mock.Anything, userUID, taskID).Return(true, nil).Once()
				r.On("AwardXP", mock.Anything, userUID, leveling.RewardTask, XPSourceTask).
					Return(nil, errors.New("db down")).Once()
			},
			wantCompletedNow: true,
			wantAward:        false,
		},
		{
			name: "unknown task",
			setupMocks: func(r *RepoMock) {
				r.On("CompleteTask", mock.Anything, userUID, taskID).Return(false, storage.ErrNotFound).Once()
			},
			wantErr: storage.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			tt.setupMocks(repo)
			svc := NewTaskService(repo, newNoopLogger())

			result, err := svc.Complete(context.Background(), userUID, taskID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantCompletedNow, result.CompletedNow)
			if tt.wantAward {
				assert.NotNil(t, result.Award)
			} else {
				assert.Nil(t, result.Award)
			}
			repo.AssertExpectations(t)
		})
	}
}
