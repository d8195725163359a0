// Package services содержит бизнес-логику загруженных файлов.
package services

import (
	"context"
	"encoding/base64"
	"errors"
	"log/slog"
	"strings"

	"github.com/magabrotheeeer/liferpg-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/liferpg-tracker/internal/models"
)

// ErrFileTooLarge возвращается, когда содержимое файла превышает лимит.
var ErrFileTooLarge = errors.New("file exceeds size limit")

// FileRepository определяет методы для работы с файлами в хранилище.
type FileRepository interface {
	// CreateUserFile добавляет файл и возвращает его ID.
	CreateUserFile(ctx context.Context, file models.UserFile) (string, error)
	// ListUserFiles возвращает файлы пользователя.
	ListUserFiles(ctx context.Context, userUID string) ([]*models.UserFile, error)
	// RemoveUserFile удаляет файл.
	RemoveUserFile(ctx context.Context, userUID, id string) (int, error)
	// AttachFileToFinanceEntry добавляет файл в список вложений записи.
	AttachFileToFinanceEntry(ctx context.Context, userUID, entryID, fileID string) error
}

// FileService реализует бизнес-логику загруженных файлов.
type FileService struct {
	repo FileRepository
	log  *slog.Logger
}

// NewFileService создает новый экземпляр FileService.
func NewFileService(repo FileRepository, log *slog.Logger) *FileService {
	return &FileService{
		repo: repo,
		log:  log,
	}
}

// Upload сохраняет файл пользователя. Содержимое приходит в base64,
// лимит применяется к размеру декодированных данных и проверяется до
// обращения к хранилищу. Если файл привязан к финансовой записи, его
// идентификатор добавляется в её вложения.
func (s *FileService) Upload(ctx context.Context, userUID string, req models.DummyUserFile) (string, error) {
	decodedSize := base64.RawStdEncoding.DecodedLen(len(strings.TrimRight(req.Data, "=")))
	if decodedSize > models.MaxFileSize {
		return "", ErrFileTooLarge
	}

	id, err := s.repo.CreateUserFile(ctx, models.UserFile{
		UserUID:      userUID,
		FileName:     req.FileName,
		Data:         req.Data,
		MimeType:     req.MimeType,
		LinkedEntity: req.LinkedEntity,
	})
	if err != nil {
		return "", err
	}
	s.log.Info("uploaded new file", slog.String("id", id), slog.String("file_name", req.FileName))

	if req.LinkedEntity != nil && req.LinkedEntity.Type == "finance_entry" {
		if err := s.repo.AttachFileToFinanceEntry(ctx, userUID, req.LinkedEntity.ID, id); err != nil {
			// файл сохранён, ссылка не критична
			s.log.Warn("failed to attach file to finance entry", sl.Err(err))
		}
	}
	return id, nil
}

// List возвращает файлы пользователя, сначала новые.
func (s *FileService) List(ctx context.Context, userUID string) ([]*models.UserFile, error) {
	return s.repo.ListUserFiles(ctx, userUID)
}

// Remove удаляет файл и возвращает количество удалённых записей.
func (s *FileService) Remove(ctx context.Context, userUID, id string) (int, error) {
	return s.repo.RemoveUserFile(ctx, userUID, id)
}
