package filestore

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/liferpg-tracker/internal/models"
	"github.com/magabrotheeeer/liferpg-tracker/internal/storage"
)

// CreateTask добавляет новую задачу и возвращает её ID.
func (s *Storage) CreateTask(ctx context.Context, task models.Task) (string, error) {
	const op = "storage.CreateTask"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task.ID = uuid.NewString()
	task.Completed = false
	task.CompletedAt = nil
	task.CreatedAt = time.Now()
	s.data.Tasks = append(s.data.Tasks, &task)

	if err := s.save(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return task.ID, nil
}

// ListTasks возвращает задачи пользователя, сначала новые.
func (s *Storage) ListTasks(ctx context.Context, userUID string) ([]*models.Task, error) {
	const op = "storage.ListTasks"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var result []*models.Task
	for _, t := range s.data.Tasks {
		if t.UserUID == userUID {
			item := *t
			result = append(result, &item)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// CompleteTask отмечает задачу завершённой. Возвращает true, если задача
// завершена этим вызовом, и false, если она уже была завершена ранее.
func (s *Storage) CompleteTask(ctx context.Context, userUID, id string) (bool, error) {
	const op = "storage.CompleteTask"
	select {
	case <-ctx.Done():
		return false, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.data.Tasks {
		if t.ID == id && t.UserUID == userUID {
			if t.Completed {
				return false, nil
			}
			now := time.Now()
			t.Completed = true
			t.CompletedAt = &now
			if err := s.save(); err != nil {
				return false, fmt.Errorf("%s: %w", op, err)
			}
			return true, nil
		}
	}
	return false, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
}

// RemoveTask удаляет задачу и возвращает количество удалённых записей.
func (s *Storage) RemoveTask(ctx context.Context, userUID, id string) (int, error) {
	const op = "storage.RemoveTask"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.data.Tasks {
		if t.ID == id && t.UserUID == userUID {
			s.data.Tasks = append(s.data.Tasks[:i], s.data.Tasks[i+1:]...)
			if err := s.save(); err != nil {
				return 0, fmt.Errorf("%s: %w", op, err)
			}
			return 1, nil
		}
	}
	return 0, nil
}
