package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/magabrotheeeer/liferpg-tracker/internal/lib/leveling"
	"github.com/magabrotheeeer/liferpg-tracker/internal/models"
	"github.com/magabrotheeeer/liferpg-tracker/internal/storage"
)

// RegisterUser вставляет нового пользователя и возвращает его UID.
func (s *Storage) RegisterUser(ctx context.Context, user models.User) (string, error) {
	const op = "storage.RegisterUser"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO users (username, email, password_hash, role, diary_pin_hash)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING uid`
	var uid string
	err := s.DB.QueryRowContext(ctx, query,
		user.Username, user.Email, user.PasswordHash, user.Role, user.DiaryPinHash).Scan(&uid)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return uid, nil
}

// GetUserByUsername возвращает пользователя по имени.
func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	const op = "storage.GetUserByUsername"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, username, email, password_hash, role, xp, level, streak,
				COALESCE(last_active, 'epoch'::timestamptz), unlocked_features, diary_pin_hash, created_at
			  FROM users WHERE username = $1`
	return s.scanUser(s.DB.QueryRowContext(ctx, query, username), op)
}

// GetUser возвращает пользователя по UID.
func (s *Storage) GetUser(ctx context.Context, userUID string) (*models.User, error) {
	const op = "storage.GetUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, username, email, password_hash, role, xp, level, streak,
				COALESCE(last_active, 'epoch'::timestamptz), unlocked_features, diary_pin_hash, created_at
			  FROM users WHERE uid = $1`
	return s.scanUser(s.DB.QueryRowContext(ctx, query, userUID), op)
}

func (s *Storage) scanUser(row *sql.Row, op string) (*models.User, error) {
	var result models.User
	var features []byte
	if err := row.Scan(&result.UID, &result.Username, &result.Email, &result.PasswordHash,
		&result.Role, &result.XP, &result.Level, &result.Streak, &result.LastActive,
		&features, &result.DiaryPinHash, &result.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := json.Unmarshal(features, &result.UnlockedFeatures); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if result.LastActive.Unix() == 0 {
		result.LastActive = time.Time{}
	}
	return &result, nil
}

// UpdateUser обновляет изменяемые поля профиля и возвращает количество
// изменённых строк. Пустые поля не затрагиваются.
func (s *Storage) UpdateUser(ctx context.Context, userUID string, upd models.UserUpdate) (int, error) {
	const op = "storage.UpdateUser"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE users
			  SET username = COALESCE(NULLIF($1, ''), username),
			      email = COALESCE(NULLIF($2, ''), email),
			      diary_pin_hash = COALESCE(NULLIF($3, ''), diary_pin_hash)
			  WHERE uid = $4`
	result, err := s.DB.ExecContext(ctx, query, upd.Name, upd.Email, upd.DiaryPinHash, userUID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// AwardXP атомарно начисляет опыт: блокирует строку пользователя,
// пересчитывает XP, уровень и серию активных дней, добавляет запись
// в журнал опыта. Возвращает новые значения профиля.
func (s *Storage) AwardXP(ctx context.Context, userUID string, amount int, source string) (*models.XPAward, error) {
	const op = "storage.AwardXP"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = tx.Rollback() }()

	var xp, streak int
	var lastActive sql.NullTime
	query := `SELECT xp, streak, last_active FROM users WHERE uid = $1 FOR UPDATE`
	if err := tx.QueryRowContext(ctx, query, userUID).Scan(&xp, &streak, &lastActive); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now()
	newXP := xp + amount
	newLevel := leveling.Level(newXP)
	newStreak := leveling.NextStreak(streak, lastActive.Time, now)

	query = `UPDATE users SET xp = $1, level = $2, streak = $3, last_active = $4 WHERE uid = $5`
	if _, err := tx.ExecContext(ctx, query, newXP, newLevel, newStreak, now, userUID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query = `INSERT INTO xp_logs (user_uid, amount, source, ts) VALUES ($1, $2, $3, $4)`
	if _, err := tx.ExecContext(ctx, query, userUID, amount, source, now); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &models.XPAward{XP: newXP, Level: newLevel, Streak: newStreak}, nil
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

	query := `UPDATE users
			  SET unlocked_features = CASE
			      WHEN unlocked_features @> to_jsonb($1::text) THEN unlocked_features
			      ELSE unlocked_features || to_jsonb($1::text)
			  END
			  WHERE uid = $2`
	result, err := s.DB.ExecContext(ctx, query, feature, userUID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
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

	query := `SELECT uid, username, email, role, xp, level, streak,
				COALESCE(last_active, 'epoch'::timestamptz), unlocked_features, created_at
			  FROM users
			  ORDER BY created_at DESC`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var result []*models.User
	for rows.Next() {
		var item models.User
		var features []byte
		if err := rows.Scan(&item.UID, &item.Username, &item.Email, &item.Role, &item.XP,
			&item.Level, &item.Streak, &item.LastActive, &features, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if err := json.Unmarshal(features, &item.UnlockedFeatures); err != nil {
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

// CountStats подсчитывает сводную статистику сервиса.
func (s *Storage) CountStats(ctx context.Context) (*models.AdminStats, error) {
	const op = "storage.CountStats"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT
			      (SELECT COUNT(*) FROM users),
			      (SELECT COUNT(*) FROM habits),
			      (SELECT COUNT(*) FROM tasks),
			      (SELECT COALESCE(SUM(xp), 0) FROM users)`
	var result models.AdminStats
	if err := s.DB.QueryRowContext(ctx, query).Scan(&result.TotalUsers, &result.TotalHabits,
		&result.TotalTasks, &result.TotalXP); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}
