package services

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/liferpg-tracker/internal/lib/jwt"
	"github.com/magabrotheeeer/liferpg-tracker/internal/lib/password"
	"github.com/magabrotheeeer/liferpg-tracker/internal/models"
	"github.com/magabrotheeeer/liferpg-tracker/internal/storage"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) RegisterUser(ctx context.Context, user models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}
func (m *RepoMock) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func newTestMaker() jwt.Maker {
	return jwt.NewJWTMaker("test-secret", time.Hour)
}

func TestAuthService_Register(t *testing.T) {
	req := models.DummyRegister{
		Username: "tester",
		Email:    "tester@example.com",
		Password: "password123",
		DiaryPin: "1234",
	}

	t.Run("success", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("GetUserByUsername", mock.Anything, "tester").Return(nil, storage.ErrNotFound).Once()
		repo.On("RegisterUser", mock.Anything, mock.MatchedBy(func(u models.User) bool {
			// хеши вместо открытых значений
			return u.Username == "tester" &&
				u.Role == "user" &&
				u.PasswordHash != "" && u.PasswordHash != req.Password &&
				u.DiaryPinHash != "" && u.DiaryPinHash != req.DiaryPin
		})).Return("uid-1", nil).Once()

		svc := NewAuthService(repo, newTestMaker(), newNoopLogger())
		uid, err := svc.Register(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, "uid-1", uid)
		repo.AssertExpectations(t)
	})

	t.Run("duplicate username", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("GetUserByUsername", mock.Anything, "tester").
			Return(&models.User{UID: "uid-1", Username: "tester"}, nil).Once()

		svc := NewAuthService(repo, newTestMaker(), newNoopLogger())
		_, err := svc.Register(context.Background(), req)

		assert.ErrorIs(t, err, storage.ErrAlreadyExists)
		repo.AssertNotCalled(t, "RegisterUser", mock.Anything, mock.Anything)
	})
}

func TestAuthService_Login(t *testing.T) {
	passwordHash, err := password.GetHash("password123")
	assert.NoError(t, err)
	user := &models.User{
		UID:          "uid-1",
		Username:     "tester",
		Role:         "user",
		PasswordHash: passwordHash,
	}

	t.Run("success returns token and profile", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("GetUserByUsername", mock.Anything, "tester").Return(user, nil).Once()

		maker := newTestMaker()
		svc := NewAuthService(repo, maker, newNoopLogger())
		token, got, err := svc.Login(context.Background(), models.DummyLogin{
			Username: "tester",
			Password: "password123",
		})

		assert.NoError(t, err)
		assert.Equal(t, user, got)

		claims, err := maker.ParseToken(token)
		assert.NoError(t, err)
		assert.Equal(t, "tester", claims.Username)
		assert.Equal(t, "uid-1", claims.UserUID)
		repo.AssertExpectations(t)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("GetUserByUsername", mock.Anything, "tester").Return(user, nil).Once()

		svc := NewAuthService(repo, newTestMaker(), newNoopLogger())
		_, _, err := svc.Login(context.Background(), models.DummyLogin{
			Username: "tester",
			Password: "wrong",
		})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("GetUserByUsername", mock.Anything, "ghost").Return(nil, storage.ErrNotFound).Once()

		svc := NewAuthService(repo, newTestMaker(), newNoopLogger())
		_, _, err := svc.Login(context.Background(), models.DummyLogin{
			Username: "ghost",
			Password: "password123",
		})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
