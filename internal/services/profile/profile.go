// Package services содержит бизнес-логику работы с профилем пользователя.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/liferpg-tracker/internal/lib/pin"
	"github.com/magabrotheeeer/liferpg-tracker/internal/models"
)

// UserRepository определяет методы для работы с профилем в хранилище.
type UserRepository interface {
	// GetUser возвращает пользователя по UID.
	GetUser(ctx context.Context, userUID string) (*models.User, error)
	// UpdateUser обновляет изменяемые поля профиля.
	UpdateUser(ctx context.Context, userUID string, upd models.UserUpdate) (int, error)
	// UnlockFeature добавляет функцию в набор открытых.
	UnlockFeature(ctx context.Context, userUID, feature string) error
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// ProfileService реализует чтение и изменение профиля, включая кеширование.
type ProfileService struct {
	repo  UserRepository
	cache Cache
	log   *slog.Logger
}

// NewProfileService создает новый экземпляр ProfileService.
func NewProfileService(repo UserRepository, cache Cache, log *slog.Logger) *ProfileService {
	return &ProfileService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// Get возвращает профиль пользователя, используя кеш или репозиторий.
// Хеши пароля и PIN из ответа вычищаются.
func (s *ProfileService) Get(ctx context.Context, userUID string) (*models.User, error) {
	var result *models.User
	cacheKey := fmt.Sprintf("profile:%s", userUID)
	found, err := s.cache.Get(cacheKey, &result)
	if err != nil {
		return nil, err
	}
	if found {
		return result, nil
	}

	result, err = s.repo.GetUser(ctx, userUID)
	if err != nil {
		return nil, err
	}
	result.PasswordHash = ""
	result.DiaryPinHash = ""

	if err := s.cache.Set(cacheKey, result, time.Hour); err != nil {
		s.log.Warn("failed to cache profile", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return result, nil
}

// Update изменяет профиль пользователя. Новый PIN дневника хэшируется
// перед сохранением, кеш профиля инвалидируется.
func (s *ProfileService) Update(ctx context.Context, userUID string, req models.DummyUserUpdate) (int, error) {
	upd := models.UserUpdate{
		Name:  req.Name,
		Email: req.Email,
	}
	if req.DiaryPin != "" {
		pinHash, err := pin.GetHash(req.DiaryPin)
		if err != nil {
			return 0, err
		}
		upd.DiaryPinHash = pinHash
	}

	count, err := s.repo.UpdateUser(ctx, userUID, upd)
	if err != nil {
		return 0, err
	}

	cacheKey := fmt.Sprintf("profile:%s", userUID)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to invalidate profile cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return count, nil
}

// Unlock открывает функцию профиля. Операция идемпотентна.
func (s *ProfileService) Unlock(ctx context.Context, userUID, feature string) error {
	if err := s.repo.UnlockFeature(ctx, userUID, feature); err != nil {
		return err
	}

	cacheKey := fmt.Sprintf("profile:%s", userUID)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to invalidate profile cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	s.log.Info("unlocked feature", slog.String("useruid", userUID), slog.String("feature", feature))
	return nil
}
