package postgres

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/liferpg-tracker/internal/models"
)

// CreateWaterLog вставляет запись о приёме воды и возвращает её ID.
func (s *Storage) CreateWaterLog(ctx context.Context, waterLog models.WaterLog) (string, error) {
	const op = "storage.CreateWaterLog"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO water_logs (user_uid, amount, date)
			  VALUES ($1, $2, $3)
			  RETURNING id`
	var newID string
	err := s.DB.QueryRowContext(ctx, query,
		waterLog.UserUID, waterLog.Amount, waterLog.Date).Scan(&newID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
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

	query := `SELECT id, user_uid, amount, to_char(date, 'YYYY-MM-DD')
			  FROM water_logs
			  WHERE user_uid = $1 AND date = $2
			  ORDER BY id`
	rows, err := s.DB.QueryContext(ctx, query, userUID, date)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var result []*models.WaterLog
	for rows.Next() {
		var item models.WaterLog
		if err := rows.Scan(&item.ID, &item.UserUID, &item.Amount, &item.Date); err != nil {
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
