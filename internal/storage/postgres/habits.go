package postgres

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/liferpg-tracker/internal/models"
	"github.com/magabrotheeeer/liferpg-tracker/internal/storage"
)

// CreateHabit вставляет новую привычку и возвращает её ID.
func (s *Storage) CreateHabit(ctx context.Context, habit models.Habit) (string, error) {
	const op = "storage.CreateHabit"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO habits (user_uid, title, frequency, category)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id`
	var newID string
	err := s.DB.QueryRowContext(ctx, query,
		habit.UserUID, habit.Title, habit.Frequency, habit.Category).Scan(&newID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListHabits возвращает список привычек пользователя, сначала старые.
func (s *Storage) ListHabits(ctx context.Context, userUID string) ([]*models.Habit, error) {
	const op = "storage.ListHabits"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_uid, title, frequency, category, created_at
			  FROM habits
			  WHERE user_uid = $1
			  ORDER BY created_at`
	rows, err := s.DB.QueryContext(ctx, query, userUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var result []*models.Habit
	for rows.Next() {
		var item models.Habit
		if err := rows.Scan(&item.ID, &item.UserUID, &item.Title, &item.Frequency,
			&item.Category, &item.CreatedAt); err != nil {
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

// UpdateHabit обновляет данные привычки и возвращает количество изменённых строк.
func (s *Storage) UpdateHabit(ctx context.Context, userUID, id string, upd models.DummyHabit) (int, error) {
	const op = "storage.UpdateHabit"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE habits
			  SET title = $1, frequency = $2, category = $3
			  WHERE id = $4 AND user_uid = $5`
	result, err := s.DB.ExecContext(ctx, query, upd.Title, upd.Frequency, upd.Category, id, userUID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// RemoveHabit удаляет привычку и возвращает количество удалённых строк.
// Отметки выполнения остаются как история.
func (s *Storage) RemoveHabit(ctx context.Context, userUID, id string) (int, error) {
	const op = "storage.RemoveHabit"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM habits WHERE id = $1 AND user_uid = $2`
	result, err := s.DB.ExecContext(ctx, query, id, userUID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// CreateHabitLog отмечает выполнение привычки за день. Возвращает true,
// если отметка создана, и false, если за этот день она уже существовала.
func (s *Storage) CreateHabitLog(ctx context.Context, habitLog models.HabitLog) (bool, error) {
	const op = "storage.CreateHabitLog"
	select {
	case <-ctx.Done():
		return false, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM habits WHERE id = $1 AND user_uid = $2)`
	if err := s.DB.QueryRowContext(ctx, query, habitLog.HabitID, habitLog.UserUID).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	if !exists {
		return false, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	query = `INSERT INTO habit_logs (habit_id, user_uid, date)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (habit_id, date) DO NOTHING`
	result, err := s.DB.ExecContext(ctx, query, habitLog.HabitID, habitLog.UserUID, habitLog.Date)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return rowsAffected > 0, nil
}

// RemoveHabitLog снимает отметку выполнения привычки за день и
// возвращает количество удалённых строк.
func (s *Storage) RemoveHabitLog(ctx context.Context, userUID, habitID, date string) (int, error) {
	const op = "storage.RemoveHabitLog"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM habit_logs WHERE habit_id = $1 AND user_uid = $2 AND date = $3`
	result, err := s.DB.ExecContext(ctx, query, habitID, userUID, date)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// ListHabitLogs возвращает все отметки выполнения привычек пользователя.
func (s *Storage) ListHabitLogs(ctx context.Context, userUID string) ([]*models.HabitLog, error) {
	const op = "storage.ListHabitLogs"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, habit_id, user_uid, to_char(date, 'YYYY-MM-DD')
			  FROM habit_logs
			  WHERE user_uid = $1
			  ORDER BY date`
	rows, err := s.DB.QueryContext(ctx, query, userUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var result []*models.HabitLog
	for rows.Next() {
		var item models.HabitLog
		if err := rows.Scan(&item.ID, &item.HabitID, &item.UserUID, &item.Date); err != nil {
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
