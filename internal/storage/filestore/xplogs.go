package filestore

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

	s.mu.Lock()
	defer s.mu.Unlock()

	var result []*models.XPLog
	for _, l := range s.data.XPLogs {
		if l.UserUID == userUID {
			item := *l
			result = append(result, &item)
		}
	}
	return result, nil
}
