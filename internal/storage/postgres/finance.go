package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/magabrotheeeer/liferpg-tracker/internal/models"
	"github.com/magabrotheeeer/liferpg-tracker/internal/storage"
)

// CreateFinanceEntry вставляет новую финансовую запись и возвращает её ID.
func (s *Storage) CreateFinanceEntry(ctx context.Context, entry models.FinancialEntry) (string, error) {
	const op = "storage.CreateFinanceEntry"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO finance_entries (user_uid, type, amount, description, category, date)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id`
	var newID string
	err := s.DB.QueryRowContext(ctx, query,
		entry.UserUID, entry.Type, entry.Amount, entry.Description, entry.Category, entry.Date).Scan(&newID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListFinanceEntrys возвращает финансовые записи пользователя, сначала новые.
func (s *Storage) ListFinanceEntrys(ctx context.Context, userUID string) ([]*models.FinancialEntry, error) {
	const op = "storage.ListFinanceEntrys"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_uid, type, amount, description, category,
				to_char(date, 'YYYY-MM-DD'), attachments, created_at
			  FROM finance_entries
			  WHERE user_uid = $1
			  ORDER BY date DESC, created_at DESC`
	rows, err := s.DB.QueryContext(ctx, query, userUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var result []*models.FinancialEntry
	for rows.Next() {
		var item models.FinancialEntry
		var attachments []byte
		if err := rows.Scan(&item.ID, &item.UserUID, &item.Type, &item.Amount, &item.Description,
			&item.Category, &item.Date, &attachments, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if err := json.Unmarshal(attachments, &item.Attachments); err != nil {
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

// RemoveFinanceEntry удаляет финансовую запись и возвращает количество
// удалённых строк.
func (s *Storage) RemoveFinanceEntry(ctx context.Context, userUID, id string) (int, error) {
	const op = "storage.RemoveFinanceEntry"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM finance_entries WHERE id = $1 AND user_uid = $2`
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

// AttachFileToFinanceEntry добавляет идентификатор файла в конец списка
// вложений записи. Повторное добавление того же файла не дублируется.
func (s *Storage) AttachFileToFinanceEntry(ctx context.Context, userUID, entryID, fileID string) error {
	const op = "storage.AttachFileToFinanceEntry"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE finance_entries
			  SET attachments = CASE
			      WHEN attachments @> to_jsonb($1::text) THEN attachments
			      ELSE attachments || to_jsonb($1::text)
			  END
			  WHERE id = $2 AND user_uid = $3`
	result, err := s.DB.ExecContext(ctx, query, fileID, entryID, userUID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	return nil
}
