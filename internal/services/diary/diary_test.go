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
	"github.com/magabrotheeeer/liferpg-tracker/internal/lib/pin"
	"github.com/magabrotheeeer/liferpg-tracker/internal/models"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) GetUser(ctx context.Context, userUID string) (*models.User, error) {
	args := m.Called(ctx, userUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
func (m *RepoMock) CreateDiaryEntry(ctx context.Context, entry models.DiaryEntry) (string, error) {
	args := m.Called(ctx, entry)
	return args.String(0), args.Error(1)
}
func (m *RepoMock) ListDiaryEntrys(ctx context.Context, userUID string) ([]*models.DiaryEntry, error) {
	args := m.Called(ctx, userUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.DiaryEntry), args.Error(1)
}
func (m *RepoMock) UpdateDiaryEntry(ctx context.Context, userUID, id string, upd models.DummyDiaryEntry) (int, error) {
	args := m.Called(ctx, userUID, id, upd)
	return args.Int(0), args.Error(1)
}
func (m *RepoMock) RemoveDiaryEntry(ctx context.Context, userUID, id string) (int, error) {
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

func userWithPin(t *testing.T, rawPin string) *models.User {
	t.Helper()
	hash, err := pin.GetHash(rawPin)
	assert.NoError(t, err)
	return &models.User{UID: "user-1", Username: "tester", DiaryPinHash: hash}
}

func TestDiaryService_Unlock(t *testing.T) {
	user := userWithPin(t, "1234")

	t.Run("correct pin opens the window", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("GetUser", mock.Anything, "user-1").Return(user, nil).Once()

		svc := NewDiaryService(repo, newNoopLogger())
		err := svc.Unlock(context.Background(), "user-1", "1234")

		assert.NoError(t, err)
		assert.NoError(t, svc.checkUnlocked("user-1"))
		repo.AssertExpectations(t)
	})

	t.Run("wrong pin keeps the diary locked", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("GetUser", mock.Anything, "user-1").Return(user, nil).Once()

		svc := NewDiaryService(repo, newNoopLogger())
		err := svc.Unlock(context.Background(), "user-1", "0000")

		assert.ErrorIs(t, err, ErrWrongPin)
		assert.ErrorIs(t, svc.checkUnlocked("user-1"), ErrLocked)
		repo.AssertExpectations(t)
	})
}

func TestDiaryService_LockedAccess(t *testing.T) {
	repo := new(RepoMock)
	svc := NewDiaryService(repo, newNoopLogger())

	_, _, err := svc.Create(context.Background(), "user-1", models.DummyDiaryEntry{Title: "t", Content: "c"})
	assert.ErrorIs(t, err, ErrLocked)

	_, err = svc.List(context.Background(), "user-1")
	assert.ErrorIs(t, err, ErrLocked)

	_, err = svc.Update(context.Background(), "user-1", "entry-1", models.DummyDiaryEntry{Title: "t", Content: "c"})
	assert.ErrorIs(t, err, ErrLocked)

	_, err = svc.Remove(context.Background(), "user-1", "entry-1")
	assert.ErrorIs(t, err, ErrLocked)

	// до разблокировки хранилище не трогаем
	repo.AssertNotCalled(t, "CreateDiaryEntry", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "ListDiaryEntrys", mock.Anything, mock.Anything)
}

func TestDiaryService_CreateAfterUnlock(t *testing.T) {
	user := userWithPin(t, "1234")

	repo := new(RepoMock)
	repo.On("GetUser", mock.Anything, "user-1").Return(user, nil).Once()
	repo.On("CreateDiaryEntry", mock.Anything, mock.MatchedBy(func(e models.DiaryEntry) bool {
		return e.UserUID == "user-1" && e.Title == "Мысли"
	})).Return("entry-1", nil).Once()
	repo.On("AwardXP", mock.Anything, "user-1", leveling.RewardDiary, XPSourceDiary).
		Return(&models.XPAward{XP: 12, Level: 1, Streak: 1}, nil).Once()

	svc := NewDiaryService(repo, newNoopLogger())
	assert.NoError(t, svc.Unlock(context.Background(), "user-1", "1234"))

	id, award, err := svc.Create(context.Background(), "user-1", models.DummyDiaryEntry{
		Title:   "Мысли",
		Content: "Сегодня был хороший день",
	})

	assert.NoError(t, err)
	assert.Equal(t, "entry-1", id)
	assert.NotNil(t, award)
	repo.AssertExpectations(t)
}

func TestDiaryService_RelockAfterWindow(t *testing.T) {
	user := userWithPin(t, "1234")

	repo := new(RepoMock)
	repo.On("GetUser", mock.Anything, "user-1").Return(user, nil).Once()

	svc := NewDiaryService(repo, newNoopLogger())
	svc.window = 20 * time.Millisecond

	assert.NoError(t, svc.Unlock(context.Background(), "user-1", "1234"))
	assert.NoError(t, svc.checkUnlocked("user-1"))

	// после паузы дольше окна дневник снова заперт
	time.Sleep(100 * time.Millisecond)

	_, err := svc.List(context.Background(), "user-1")
	assert.ErrorIs(t, err, ErrLocked)
	repo.AssertNotCalled(t, "ListDiaryEntrys", mock.Anything, mock.Anything)
}

func TestDiaryService_WindowIsPerUser(t *testing.T) {
	user := userWithPin(t, "1234")

	repo := new(RepoMock)
	repo.On("GetUser", mock.Anything, "user-1").Return(user, nil).Once()

	svc := NewDiaryService(repo, newNoopLogger())
	assert.NoError(t, svc.Unlock(context.Background(), "user-1", "1234"))

	// чужая разблокировка не открывает дневник другому пользователю
	_, err := svc.List(context.Background(), "user-2")
	assert.ErrorIs(t, err, ErrLocked)
}
