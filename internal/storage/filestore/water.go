package filestore

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/liferpg-tracker/internal/models"
)

// CreateWaterLog добавляет запись о приёме воды и возвращает её ID.
func (s *Storage) CreateWaterLog(ctx context.Context, waterLog models.WaterLog) (string, error) {
	const op = "storage.CreateWaterLog"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	waterLog.ID = uuid.NewString()
	s.data.WaterLogs = append(s.data.WaterLogs, &waterLog)

	if err := s.save(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return waterLog.ID, nil
}

// ListWaterLogs возвращает записи о воде пользователя за календарный день
// в порядке добавления.
func (s *Storage) ListWaterLogs(ctx context.Context, userUID, date string) ([]*models.WaterLog, error) {
	const op = "storage.ListWaterLogs"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var result []*models.WaterLog
	for _, l := range s.data.WaterLogs {
		if l.UserUID == userUID && l.Date == date {
			item := *l
			result = append(result, &item)
		}
	}
	return result, nil
}
