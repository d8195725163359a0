package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/liferpg-tracker/internal/models"
	"github.com/magabrotheeeer/liferpg-tracker/internal/storage"
)

// CreateTask вставляет новую задачу и возвращает её ID.
func (s *Storage) CreateTask(ctx context.Context, task models.Task) (string, error) {
	const op = "storage.CreateTask"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO tasks (user_uid, title, priority, due_date)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id`
	var newID string
	err := s.DB.QueryRowContext(ctx, query,
		task.UserUID, task.Title, task.Priority, task.DueDate).Scan(&newID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListTasks возвращает список задач пользователя, сначала новые.
func (s *Storage) ListTasks(ctx context.Context, userUID string) ([]*models.Task, error) {
	const op = "storage.ListTasks"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_uid, title, priority, to_char(due_date, 'YYYY-MM-DD'),
				completed, completed_at, created_at
			  FROM tasks
			  WHERE user_uid = $1
			  ORDER BY created_at DESC`
	rows, err := s.DB.QueryContext(ctx, query, userUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var result []*models.Task
	for rows.Next() {
		var item models.Task
		var completedAt sql.NullTime
		if err := rows.Scan(&item.ID, &item.UserUID, &item.Title, &item.Priority,
			&item.DueDate, &item.Completed, &completedAt, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if completedAt.Valid {
			item.CompletedAt = &completedAt.Time
		}
		result = append(result, &item)
	}
	err = rows.Close()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// CompleteTask отмечает задачу завершённой. Возвращает true, если задача
// завершена этим вызовом, и false, если она уже была завершена ранее.
// Переход односторонний, обратного пути нет.
func (s *Storage) CompleteTask(ctx context.Context, userUID, id string) (bool, error) {
	const op = "storage.CompleteTask"
	select {
	case <-ctx.Done():
		return false, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE tasks
			  SET completed = TRUE, completed_at = now()
			  WHERE id = $1 AND user_uid = $2 AND NOT completed`
	result, err := s.DB.ExecContext(ctx, query, id, userUID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected > 0 {
		return true, nil
	}

	var completed bool
	query = `SELECT completed FROM tasks WHERE id = $1 AND user_uid = $2`
	if err := s.DB.QueryRowContext(ctx, query, id, userUID).Scan(&completed); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return false, nil
}

// RemoveTask удаляет задачу и возвращает количество удалённых строк.
func (s *Storage) RemoveTask(ctx context.Context, userUID, id string) (int, error) {
	const op = "storage.RemoveTask"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM tasks WHERE id = $1 AND user_uid = $2`
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
