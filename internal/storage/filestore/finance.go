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

// CreateFinanceEntry добавляет финансовую запись и возвращает её ID.
func (s *Storage) CreateFinanceEntry(ctx context.Context, entry models.FinancialEntry) (string, error) {
	const op = "storage.CreateFinanceEntry"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry.ID = uuid.NewString()
	if entry.Attachments == nil {
		entry.Attachments = []string{}
	}
	entry.CreatedAt = time.Now()
	s.data.FinanceEntries = append(s.data.FinanceEntries, &entry)

	if err := s.save(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return entry.ID, nil
}

// ListFinanceEntrys возвращает финансовые записи пользователя, сначала новые.
func (s *Storage) ListFinanceEntrys(ctx context.Context, userUID string) ([]*models.FinancialEntry, error) {
	const op = "storage.ListFinanceEntrys"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var result []*models.FinancialEntry
	for _, e := range s.data.FinanceEntries {
		if e.UserUID == userUID {
			item := *e
			result = append(result, &item)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Date != result[j].Date {
			return result[i].Date > result[j].Date
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// RemoveFinanceEntry удаляет финансовую запись и возвращает количество
// удалённых записей.
func (s *Storage) RemoveFinanceEntry(ctx context.Context, userUID, id string) (int, error) {
	const op = "storage.RemoveFinanceEntry"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.data.FinanceEntries {
		if e.ID == id && e.UserUID == userUID {
			s.data.FinanceEntries = append(s.data.FinanceEntries[:i], s.data.FinanceEntries[i+1:]...)
			if err := s.save(); err != nil {
				return 0, fmt.Errorf("%s: %w", op, err)
			}
			return 1, nil
		}
	}
	return 0, nil
}

// AttachFileToFinanceEntry добавляет идентификатор файла в конец списка
// вложений записи. Повторное добавление того же файла не дублируется.
func (s *Storage) AttachFileToFinanceEntry(ctx context.Context, userUID, entryID, fileID string) error {
	const op = "storage.AttachFileToFinanceEntry"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.data.FinanceEntries {
		if e.ID == entryID && e.UserUID == userUID {
			for _, a := range e.Attachments {
				if a == fileID {
					return nil
				}
			}
			e.Attachments = append(e.Attachments, fileID)
			if err := s.save(); err != nil {
				return fmt.Errorf("%s: %w", op, err)
			}
			return nil
		}
	}
	return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
}
