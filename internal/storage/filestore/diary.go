package filestore

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/liferpg-tracker/internal/models"
)

// CreateDiaryEntry добавляет запись дневника и возвращает её ID.
func (s *Storage) CreateDiaryEntry(ctx context.Context, entry models.DiaryEntry) (string, error) {
	const op = "storage.CreateDiaryEntry"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	entry.ID = uuid.NewString()
	entry.CreatedAt = now
	entry.UpdatedAt = now
	s.data.DiaryEntries = append(s.data.DiaryEntries, &entry)

	if err := s.save(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return entry.ID, nil
}

// ListDiaryEntrys возвращает записи дневника пользователя, сначала новые.
func (s *Storage) ListDiaryEntrys(ctx context.Context, userUID string) ([]*models.DiaryEntry, error) {
	const op = "storage.ListDiaryEntrys"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var result []*models.DiaryEntry
	for _, e := range s.data.DiaryEntries {
		if e.UserUID == userUID {
			item := *e
			result = append(result, &item)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// UpdateDiaryEntry обновляет запись дневника и возвращает количество
// изменённых записей.
func (s *Storage) UpdateDiaryEntry(ctx context.Context, userUID, id string, upd models.DummyDiaryEntry) (int, error) {
	const op = "storage.UpdateDiaryEntry"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.data.DiaryEntries {
		if e.ID == id && e.UserUID == userUID {
			e.Title = upd.Title
			e.Content = upd.Content
			e.UpdatedAt = time.Now()
			if err := s.save(); err != nil {
				return 0, fmt.Errorf("%s: %w", op, err)
			}
			return 1, nil
		}
	}
	return 0, nil
}

// RemoveDiaryEntry удаляет запись дневника и возвращает количество
// удалённых записей.
func (s *Storage) RemoveDiaryEntry(ctx context.Context, userUID, id string) (int, error) {
	const op = "storage.RemoveDiaryEntry"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.data.DiaryEntries {
		if e.ID == id && e.UserUID == userUID {
			s.data.DiaryEntries = append(s.data.DiaryEntries[:i], s.data.DiaryEntries[i+1:]...)
			if err := s.save(); err != nil {
				return 0, fmt.Errorf("%s: %w", op, err)
			}
			return 1, nil
		}
	}
	return 0, nil
}
