package filestore

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/liferpg-tracker/internal/lib/leveling"
	"github.com/magabrotheeeer/liferpg-tracker/internal/models"
	"github.com/magabrotheeeer/liferpg-tracker/internal/storage"
)

// RegisterUser добавляет нового пользователя и возвращает его UID.
func (s *Storage) RegisterUser(ctx context.Context, user models.User) (string, error) {
	const op = "storage.RegisterUser"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.data.Users {
		if u.Username == user.Username {
			return "", fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}
	}

	user.UID = uuid.NewString()
	user.XP = 0
	user.Level = 1
	user.Streak = 0
	if user.UnlockedFeatures == nil {
		user.UnlockedFeatures = []string{}
	}
	user.CreatedAt = time.Now()
	s.data.Users = append(s.data.Users, &user)

	if err := s.save(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return user.UID, nil
}

// GetUserByUsername возвращает пользователя по имени.
func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	const op = "storage.GetUserByUsername"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.data.Users {
		if u.Username == username {
			result := *u
			return &result, nil
		}
	}
	return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
}

// GetUser возвращает пользователя по UID.
func (s *Storage) GetUser(ctx context.Context, userUID string) (*models.User, error) {
	const op = "storage.GetUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.findUser(userUID)
	if u == nil {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	result := *u
	return &result, nil
}

func (s *Storage) findUser(userUID string) *models.User {
	for _, u := range s.data.Users {
		if u.UID == userUID {
			return u
		}
	}
	return nil
}

// UpdateUser обновляет изменяемые поля профиля и возвращает количество
// изменённых записей. Пустые поля не затрагиваются.
func (s *Storage) UpdateUser(ctx context.Context, userUID string, upd models.UserUpdate) (int, error) {
	const op = "storage.UpdateUser"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.findUser(userUID)
	if u == nil {
		return 0, nil
	}
	if upd.Name != "" {
		u.Username = upd.Name
	}
	if upd.Email != "" {
		u.Email = upd.Email
	}
	if upd.DiaryPinHash != "" {
		u.DiaryPinHash = upd.DiaryPinHash
	}

	if err := s.save(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return 1, nil
}

// AwardXP начисляет опыт: пересчитывает XP, уровень и серию активных
// дней, добавляет запись в журнал опыта. Возвращает новые значения профиля.
func (s *Storage) AwardXP(ctx context.Context, userUID string, amount int, source string) (*models.XPAward, error) {
	const op = "storage.AwardXP"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.findUser(userUID)
	if u == nil {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	now := time.Now()
	u.XP += amount
	u.Level = leveling.Level(u.XP)
	u.Streak = leveling.NextStreak(u.Streak, u.LastActive, now)
	u.LastActive = now

	s.data.XPLogs = append(s.data.XPLogs, &models.XPLog{
		ID:        uuid.NewString(),
		UserUID:   userUID,
		Amount:    amount,
		Source:    source,
		Timestamp: now,
	})

	if err := s.save(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &models.XPAward{XP: u.XP, Level: u.Level, Streak: u.Streak}, nil
}

// UnlockFeature добавляет функцию в набор открытых. Повторное открытие
// той же функции ничего не меняет.
func (s *Storage) UnlockFeature(ctx context.Context, userUID, feature string) error {
	const op = "storage.UnlockFeature"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.findUser(userUID)
	if u == nil {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	for _, f := range u.UnlockedFeatures {
		if f == feature {
			return nil
		}
	}
	u.UnlockedFeatures = append(u.UnlockedFeatures, feature)

	if err := s.save(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ListUsers возвращает список всех пользователей, сначала новые.
func (s *Storage) ListUsers(ctx context.Context) ([]*models.User, error) {
	const op = "storage.ListUsers"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var result []*models.User
	for _, u := range s.data.Users {
		item := *u
		item.PasswordHash = ""
		item.DiaryPinHash = ""
		result = append(result, &item)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// CountStats подсчитывает сводную статистику сервиса.
func (s *Storage) CountStats(ctx context.Context) (*models.AdminStats, error) {
	const op = "storage.CountStats"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	result := models.AdminStats{
		TotalUsers:  len(s.data.Users),
		TotalHabits: len(s.data.Habits),
		TotalTasks:  len(s.data.Tasks),
	}
	for _, u := range s.data.Users {
		result.TotalXP += u.XP
	}
	return &result, nil
}
