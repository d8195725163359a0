package filestore

import (
	"context"
	"fmt"
	"sort"

	"github.com/magabrotheeeer/liferpg-tracker/internal/models"
)

// GetSettings возвращает настройки пользователя. Если настройки ещё не
// сохранялись, возвращаются значения по умолчанию.
func (s *Storage) GetSettings(ctx context.Context, userUID string) (*models.UserSettings, error) {
	const op = "storage.GetSettings"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if st, ok := s.data.Settings[userUID]; ok {
		result := *st
		return &result, nil
	}
	return &models.UserSettings{
		WaterGoal:            models.DefaultWaterGoal,
		NotificationsEnabled: true,
		Theme:                "dark",
	}, nil
}

// UpsertSettings сохраняет настройки пользователя.
func (s *Storage) UpsertSettings(ctx context.Context, userUID string, settings models.UserSettings) error {
	const op = "storage.UpsertSettings"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.Settings[userUID] = &settings

	if err := s.save(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ListNotifiableUsers возвращает пользователей с включёнными уведомлениями
// и их дневные цели по воде. Пользователи без сохранённых настроек
// считаются согласными на уведомления.
func (s *Storage) ListNotifiableUsers(ctx context.Context) ([]*models.ReminderTarget, error) {
	const op = "storage.ListNotifiableUsers"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var result []*models.ReminderTarget
	for _, u := range s.data.Users {
		goal := models.DefaultWaterGoal
		if st, ok := s.data.Settings[u.UID]; ok {
			if !st.NotificationsEnabled {
				continue
			}
			goal = st.WaterGoal
		}
		result = append(result, &models.ReminderTarget{
			UserUID:   u.UID,
			Username:  u.Username,
			Email:     u.Email,
			WaterGoal: goal,
		})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].UserUID < result[j].UserUID
	})
	return result, nil
}
