package filestore

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/liferpg-tracker/internal/models"
	"github.com/magabrotheeeer/liferpg-tracker/internal/storage"
)

// CreateHabit добавляет новую привычку и возвращает её ID.
func (s *Storage) CreateHabit(ctx context.Context, habit models.Habit) (string, error) {
	const op = "storage.CreateHabit"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	habit.ID = uuid.NewString()
	habit.CreatedAt = time.Now()
	s.data.Habits = append(s.data.Habits, &habit)

	if err := s.save(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return habit.ID, nil
}

// ListHabits возвращает привычки пользователя в порядке создания.
func (s *Storage) ListHabits(ctx context.Context, userUID string) ([]*models.Habit, error) {
	const op = "storage.ListHabits"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var result []*models.Habit
	for _, h := range s.data.Habits {
		if h.UserUID == userUID {
			item := *h
			result = append(result, &item)
		}
	}
	return result, nil
}

// UpdateHabit обновляет данные привычки и возвращает количество
// изменённых записей.
func (s *Storage) UpdateHabit(ctx context.Context, userUID, id string, upd models.DummyHabit) (int, error) {
	const op = "storage.UpdateHabit"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, h := range s.data.Habits {
		if h.ID == id && h.UserUID == userUID {
			h.Title = upd.Title
			h.Frequency = upd.Frequency
			h.Category = upd.Category
			if err := s.save(); err != nil {
				return 0, fmt.Errorf("%s: %w", op, err)
			}
			return 1, nil
		}
	}
	return 0, nil
}

// RemoveHabit удаляет привычку и возвращает количество удалённых записей.
// Отметки выполнения остаются как история.
func (s *Storage) RemoveHabit(ctx context.Context, userUID, id string) (int, error) {
	const op = "storage.RemoveHabit"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, h := range s.data.Habits {
		if h.ID == id && h.UserUID == userUID {
			s.data.Habits = append(s.data.Habits[:i], s.data.Habits[i+1:]...)
			if err := s.save(); err != nil {
				return 0, fmt.Errorf("%s: %w", op, err)
			}
			return 1, nil
		}
	}
	return 0, nil
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

	s.mu.Lock()
	defer s.mu.Unlock()

	var owned bool
	for _, h := range s.data.Habits {
		if h.ID == habitLog.HabitID && h.UserUID == habitLog.UserUID {
			owned = true
			break
		}
	}
	if !owned {
		return false, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	for _, l := range s.data.HabitLogs {
		if l.HabitID == habitLog.HabitID && l.Date == habitLog.Date {
			return false, nil
		}
	}

	habitLog.ID = uuid.NewString()
	s.data.HabitLogs = append(s.data.HabitLogs, &habitLog)

	if err := s.save(); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return true, nil
}

// RemoveHabitLog снимает отметку выполнения привычки за день и
// возвращает количество удалённых записей.
func (s *Storage) RemoveHabitLog(ctx context.Context, userUID, habitID, date string) (int, error) {
	const op = "storage.RemoveHabitLog"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, l := range s.data.HabitLogs {
		if l.HabitID == habitID && l.UserUID == userUID && l.Date == date {
			s.data.HabitLogs = append(s.data.HabitLogs[:i], s.data.HabitLogs[i+1:]...)
			if err := s.save(); err != nil {
				return 0, fmt.Errorf("%s: %w", op, err)
			}
			return 1, nil
		}
	}
	return 0, nil
}

// ListHabitLogs возвращает все отметки выполнения привычек пользователя.
func (s *Storage) ListHabitLogs(ctx context.Context, userUID string) ([]*models.HabitLog, error) {
	const op = "storage.ListHabitLogs"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var result []*models.HabitLog
	for _, l := range s.data.HabitLogs {
		if l.UserUID == userUID {
			item := *l
			result = append(result, &item)
		}
	}
	return result, nil
}
