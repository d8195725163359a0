package services

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/liferpg-tracker/internal/lib/leveling"
	"github.com/magabrotheeeer/liferpg-tracker/internal/models"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) CreateWaterLog(ctx context.Context, waterLog models.WaterLog) (string, error) {
	args := m.Called(ctx, waterLog)
	return args.String(0), args.Error(1)
}
func (m *RepoMock) ListWaterLogs(ctx context.Context, userUID, date string) ([]*models.WaterLog, error) {
	args := m.Called(ctx, userUID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.WaterLog), args.Error(1)
}
func (m *RepoMock) GetSettings(ctx context.Context, userUID string) (*models.UserSettings, error) {
	args := m.Called(ctx, userUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserSettings), args.Error(1)
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

func TestWaterService_Create(t *testing.T) {
	today := time.Now().Format(models.DateLayout)

	repo := new(RepoMock)
	repo.On("CreateWaterLog", mock.Anything, mock.MatchedBy(func(l models.WaterLog) bool {
		return l.UserUID == "user-1" && l.Amount == 250 && l.Date == today
	})).Return("log-1", nil).Once()
	repo.On("AwardXP", mock.Anything, "user-1", leveling.RewardWater, XPSourceWater).
		Return(&models.XPAward{XP: 2, Level: 1, Streak: 1}, nil).Once()

	svc := NewWaterService(repo, newNoopLogger())
	id, award, err := svc.Create(context.Background(), "user-1", 250)

	assert.NoError(t, err)
	assert.Equal(t, "log-1", id)
	assert.NotNil(t, award)
	repo.AssertExpectations(t)
}

func TestWaterService_DailyIntake(t *testing.T) {
	logs := []*models.WaterLog{
		{ID: "log-1", UserUID: "user-1", Amount: 250, Date: "2026-08-28"},
		{ID: "log-2", UserUID: "user-1", Amount: 500, Date: "2026-08-28"},
	}

	t.Run("sums logs for the requested day", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("ListWaterLogs", mock.Anything, "user-1", "2026-08-28").Return(logs, nil).Once()
		repo.On("GetSettings", mock.Anything, "user-1").
			Return(&models.UserSettings{WaterGoal: 2000, NotificationsEnabled: true, Theme: "dark"}, nil).Once()

		svc := NewWaterService(repo, newNoopLogger())
		intake, err := svc.DailyIntake(context.Background(), "user-1", "2026-08-28")

		assert.NoError(t, err)
		assert.Equal(t, 750, intake.Total)
		assert.Equal(t, 2000, intake.Goal)
		assert.Len(t, intake.Logs, 2)
		repo.AssertExpectations(t)
	})

	t.Run("empty date means today", func(t *testing.T) {
		today := time.Now().Format(models.DateLayout)

		repo := new(RepoMock)
		repo.On("ListWaterLogs", mock.Anything, "user-1", today).Return([]*models.WaterLog{}, nil).Once()
		repo.On("GetSettings", mock.Anything, "user-1").
			Return(&models.UserSettings{WaterGoal: models.DefaultWaterGoal, NotificationsEnabled: true, Theme: "dark"}, nil).Once()

		svc := NewWaterService(repo, newNoopLogger())
		intake, err := svc.DailyIntake(context.Background(), "user-1", "")

		assert.NoError(t, err)
		assert.Equal(t, today, intake.Date)
		assert.Equal(t, 0, intake.Total)
		assert.Equal(t, models.DefaultWaterGoal, intake.Goal)
		repo.AssertExpectations(t)
	})
}
