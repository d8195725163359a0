package postgres

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/liferpg-tracker/internal/models"
)

// ListXPLogs возвращает журнал начислений опыта пользователя
// в хронологическом порядке.
func (s *Storage) ListXPLogs(ctx context.Context, userUID string) ([]*models.XPLog, error) {
	const op = "storage.ListXPLogs"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_uid, amount, source, ts
			  FROM xp_logs
			  WHERE user_uid = $1
			  ORDER BY ts`
	rows, err := s.DB.QueryContext(ctx, query, userUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var result []*models.XPLog
	for rows.Next() {
		var item models.XPLog
		if err := rows.Scan(&item.ID, &item.UserUID, &item.Amount, &item.Source, &item.Timestamp); err != nil {
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
