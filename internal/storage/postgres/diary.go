package postgres

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/liferpg-tracker/internal/models"
)

// CreateDiaryEntry вставляет запись дневника и возвращает её ID.
func (s *Storage) CreateDiaryEntry(ctx context.Context, entry models.DiaryEntry) (string, error) {
	const op = "storage.CreateDiaryEntry"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO diary_entries (user_uid, title, content)
			  VALUES ($1, $2, $3)
			  RETURNING id`
	var newID string
	err := s.DB.QueryRowContext(ctx, query,
		entry.UserUID, entry.Title, entry.Content).Scan(&newID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListDiaryEntrys возвращает записи дневника пользователя, сначала новые.
func (s *Storage) ListDiaryEntrys(ctx context.Context, userUID string) ([]*models.DiaryEntry, error) {
	const op = "storage.ListDiaryEntrys"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_uid, title, content, created_at, updated_at
			  FROM diary_entries
			  WHERE user_uid = $1
			  ORDER BY created_at DESC`
	rows, err := s.DB.QueryContext(ctx, query, userUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var result []*models.DiaryEntry
	for rows.Next() {
		var item models.DiaryEntry
		if err := rows.Scan(&item.ID, &item.UserUID, &item.Title, &item.Content,
			&item.CreatedAt, &item.UpdatedAt); err != nil {
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

// UpdateDiaryEntry обновляет запись дневника и возвращает количество
// изменённых строк.
func (s *Storage) UpdateDiaryEntry(ctx context.Context, userUID, id string, upd models.DummyDiaryEntry) (int, error) {
	const op = "storage.UpdateDiaryEntry"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE diary_entries
			  SET title = $1, content = $2, updated_at = now()
			  WHERE id = $3 AND user_uid = $4`
	result, err := s.DB.ExecContext(ctx, query, upd.Title, upd.Content, id, userUID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// RemoveDiaryEntry удаляет запись дневника и возвращает количество
// удалённых строк.
func (s *Storage) RemoveDiaryEntry(ctx context.Context, userUID, id string) (int, error) {
	const op = "storage.RemoveDiaryEntry"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM diary_entries WHERE id = $1 AND user_uid = $2`
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
