package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/magabrotheeeer/liferpg-tracker/internal/models"
)

// CreateUserFile вставляет загруженный файл и возвращает его ID.
func (s *Storage) CreateUserFile(ctx context.Context, file models.UserFile) (string, error) {
	const op = "storage.CreateUserFile"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var linkedType, linkedID sql.NullString
	if file.LinkedEntity != nil {
		linkedType = sql.NullString{String: file.LinkedEntity.Type, Valid: true}
		linkedID = sql.NullString{String: file.LinkedEntity.ID, Valid: true}
	}

	query := `INSERT INTO user_files (user_uid, file_name, data, mime_type, linked_entity_type, linked_entity_id)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id`
	var newID string
	err := s.DB.QueryRowContext(ctx, query,
		file.UserUID, file.FileName, file.Data, file.MimeType, linkedType, linkedID).Scan(&newID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListUserFiles возвращает файлы пользователя, сначала новые.
func (s *Storage) ListUserFiles(ctx context.Context, userUID string) ([]*models.UserFile, error) {
	const op = "storage.ListUserFiles"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_uid, file_name, data, mime_type, linked_entity_type, linked_entity_id, created_at
			  FROM user_files
			  WHERE user_uid = $1
			  ORDER BY created_at DESC`
	rows, err := s.DB.QueryContext(ctx, query, userUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var result []*models.UserFile
	for rows.Next() {
		var item models.UserFile
		var linkedType, linkedID sql.NullString
		if err := rows.Scan(&item.ID, &item.UserUID, &item.FileName, &item.Data,
			&item.MimeType, &linkedType, &linkedID, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if linkedType.Valid && linkedID.Valid {
			item.LinkedEntity = &models.LinkedEntity{Type: linkedType.String, ID: linkedID.String}
		}
		result = append(result, &item)
	}
	err = rows.Close()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// RemoveUserFile удаляет файл и возвращает количество удалённых строк.
func (s *Storage) RemoveUserFile(ctx context.Context, userUID, id string) (int, error) {
	const op = "storage.RemoveUserFile"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM user_files WHERE id = $1 AND user_uid = $2`
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
