package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/liferpg-tracker/internal/models"
)

// GetSettings возвращает настройки пользователя. Если строка ещё не
// создавалась, возвращаются значения по умолчанию.
func (s *Storage) GetSettings(ctx context.Context, userUID string) (*models.UserSettings, error) {
	const op = "storage.GetSettings"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT water_goal, notifications_enabled, theme
			  FROM user_settings WHERE user_uid = $1`
	var result models.UserSettings
	err := s.DB.QueryRowContext(ctx, query, userUID).Scan(
		&result.WaterGoal, &result.NotificationsEnabled, &result.Theme)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &models.UserSettings{
				WaterGoal:            models.DefaultWaterGoal,
				NotificationsEnabled: true,
				Theme:                "dark",
			}, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// UpsertSettings сохраняет настройки пользователя, создавая строку при
// первом обращении.
func (s *Storage) UpsertSettings(ctx context.Context, userUID string, settings models.UserSettings) error {
	const op = "storage.UpsertSettings"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO user_settings (user_uid, water_goal, notifications_enabled, theme)
			  VALUES ($1, $2, $3, $4)
			  ON CONFLICT (user_uid) DO UPDATE
			  SET water_goal = EXCLUDED.water_goal,
			      notifications_enabled = EXCLUDED.notifications_enabled,
			      theme = EXCLUDED.theme`
	if _, err := s.DB.ExecContext(ctx, query,
		userUID, settings.WaterGoal, settings.NotificationsEnabled, settings.Theme); err != nil {
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

	query := `SELECT u.uid, u.username, u.email, COALESCE(s.water_goal, $1)
			  FROM users u
			  LEFT JOIN user_settings s ON s.user_uid = u.uid
			  WHERE COALESCE(s.notifications_enabled, TRUE)
			  ORDER BY u.created_at`
	rows, err := s.DB.QueryContext(ctx, query, models.DefaultWaterGoal)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var result []*models.ReminderTarget
	for rows.Next() {
		var item models.ReminderTarget
		if err := rows.Scan(&item.UserUID, &item.Username, &item.Email, &item.WaterGoal); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	err = rows.Close()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
