// Package services содержит бизнес-логику регистрации и входа пользователей.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/liferpg-tracker/internal/lib/jwt"
	"github.com/magabrotheeeer/liferpg-tracker/internal/lib/password"
	"github.com/magabrotheeeer/liferpg-tracker/internal/lib/pin"
	"github.com/magabrotheeeer/liferpg-tracker/internal/models"
	"github.com/magabrotheeeer/liferpg-tracker/internal/storage"
)

// ErrInvalidCredentials возвращается при неверной паре имя/пароль.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserRepository определяет методы для работы с пользователями в хранилище.
type UserRepository interface {
	// RegisterUser добавляет нового пользователя и возвращает его UID.
	RegisterUser(ctx context.Context, user models.User) (string, error)
	// GetUserByUsername возвращает пользователя по имени.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// AuthService реализует регистрацию и вход с выдачей JWT токена.
type AuthService struct {
	repo     UserRepository
	jwtMaker jwt.Maker
	log      *slog.Logger
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(repo UserRepository, jwtMaker jwt.Maker, log *slog.Logger) *AuthService {
	return &AuthService{
		repo:     repo,
		jwtMaker: jwtMaker,
		log:      log,
	}
}

// Register создает нового пользователя. Пароль и PIN дневника хранятся
// только в виде bcrypt-хешей.
func (s *AuthService) Register(ctx context.Context, req models.DummyRegister) (string, error) {
	if _, err := s.repo.GetUserByUsername(ctx, req.Username); err == nil {
		return "", storage.ErrAlreadyExists
	} else if !errors.Is(err, storage.ErrNotFound) {
		return "", err
	}

	passwordHash, err := password.GetHash(req.Password)
	if err != nil {
		return "", err
	}
	pinHash, err := pin.GetHash(req.DiaryPin)
	if err != nil {
		return "", err
	}

	uid, err := s.repo.RegisterUser(ctx, models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Role:         "user",
		DiaryPinHash: pinHash,
	})
	if err != nil {
		return "", err
	}

	s.log.Info("registered new user", slog.String("useruid", uid))
	return uid, nil
}

// Login проверяет пару имя/пароль и возвращает JWT токен вместе
// с профилем пользователя.
func (s *AuthService) Login(ctx context.Context, req models.DummyLogin) (string, *models.User, error) {
	user, err := s.repo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := password.CompareHash(user.PasswordHash, req.Password); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.jwtMaker.GenerateToken(user.Username, user.Role, user.UID)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return token, user, nil
}
