package filestore

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/liferpg-tracker/internal/models"
)

// CreateUserFile добавляет загруженный файл и возвращает его ID.
func (s *Storage) CreateUserFile(ctx context.Context, file models.UserFile) (string, error) {
	const op = "storage.CreateUserFile"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file.ID = uuid.NewString()
	file.CreatedAt = time.Now()
	s.data.UserFiles = append(s.data.UserFiles, &file)

	if err := s.save(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return file.ID, nil
}

// ListUserFiles возвращает файлы пользователя, сначала новые.
func (s *Storage) ListUserFiles(ctx context.Context, userUID string) ([]*models.UserFile, error) {
	const op = "storage.ListUserFiles"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var result []*models.UserFile
	for _, f := range s.data.UserFiles {
		if f.UserUID == userUID {
			item := *f
			result = append(result, &item)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// RemoveUserFile удаляет файл и возвращает количество удалённых записей.
func (s *Storage) RemoveUserFile(ctx context.Context, userUID, id string) (int, error) {
	const op = "storage.RemoveUserFile"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, f := range s.data.UserFiles {
		if f.ID == id && f.UserUID == userUID {
			s.data.UserFiles = append(s.data.UserFiles[:i], s.data.UserFiles[i+1:]...)
			if err := s.save(); err != nil {
				return 0, fmt.Errorf("%s: %w", op, err)
			}
			return 1, nil
		}
	}
	return 0, nil
}
