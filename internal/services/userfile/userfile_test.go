package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/liferpg-tracker/internal/models"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) CreateUserFile(ctx context.Context, file models.UserFile) (string, error) {
	args := m.Called(ctx, file)
	return args.String(0), args.Error(1)
}
func (m *RepoMock) ListUserFiles(ctx context.Context, userUID string) ([]*models.UserFile, error) {
	args := m.Called(ctx, userUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.UserFile), args.Error(1)
}
func (m *RepoMock) RemoveUserFile(ctx context.Context, userUID, id string) (int, error) {
	args := m.Called(ctx, userUID, id)
	return args.Int(0), args.Error(1)
}
func (m *RepoMock) AttachFileToFinanceEntry(ctx context.Context, userUID, entryID, fileID string) error {
	return m.Called(ctx, userUID, entryID, fileID).Error(0)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

// encodedPayload возвращает base64 содержимого из n байт.
func encodedPayload(n int) string {
	return base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{0xab}, n))
}

func TestFileService_Upload(t *testing.T) {
	t.Run("oversized file is rejected before storage", func(t *testing.T) {
		repo := new(RepoMock)
		svc := NewFileService(repo, newNoopLogger())

		_, err := svc.Upload(context.Background(), "user-1", models.DummyUserFile{
			FileName: "big.pdf",
			MimeType: "application/pdf",
			Data:     encodedPayload(models.MaxFileSize + 1),
		})

		assert.ErrorIs(t, err, ErrFileTooLarge)
		repo.AssertNotCalled(t, "CreateUserFile", mock.Anything, mock.Anything)
	})

	t.Run("decoded size at the limit is accepted", func(t *testing.T) {
		// закодированная строка заметно длиннее лимита, решает
		// размер исходного содержимого
		data := encodedPayload(models.MaxFileSize)

		repo := new(RepoMock)
		repo.On("CreateUserFile", mock.Anything, mock.MatchedBy(func(f models.UserFile) bool {
			return f.UserUID == "user-1" && f.FileName == "receipt.jpg" && f.Data == data
		})).Return("file-1", nil).Once()

		svc := NewFileService(repo, newNoopLogger())
		id, err := svc.Upload(context.Background(), "user-1", models.DummyUserFile{
			FileName: "receipt.jpg",
			MimeType: "image/jpeg",
			Data:     data,
		})

		assert.NoError(t, err)
		assert.Equal(t, "file-1", id)
		repo.AssertExpectations(t)
	})

	t.Run("linked finance entry gets the attachment", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("CreateUserFile", mock.Anything, mock.Anything).Return("file-2", nil).Once()
		repo.On("AttachFileToFinanceEntry", mock.Anything, "user-1", "entry-1", "file-2").Return(nil).Once()

		svc := NewFileService(repo, newNoopLogger())
		id, err := svc.Upload(context.Background(), "user-1", models.DummyUserFile{
			FileName:     "receipt.jpg",
			MimeType:     "image/jpeg",
			Data:         "jpegdata",
			LinkedEntity: &models.LinkedEntity{Type: "finance_entry", ID: "entry-1"},
		})

		assert.NoError(t, err)
		assert.Equal(t, "file-2", id)
		repo.AssertExpectations(t)
	})

	t.Run("attach failure does not fail the upload", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("CreateUserFile", mock.Anything, mock.Anything).Return("file-3", nil).Once()
		repo.On("AttachFileToFinanceEntry", mock.Anything, "user-1", "entry-1", "file-3").
			Return(errors.New("entry not found")).Once()

		svc := NewFileService(repo, newNoopLogger())
		id, err := svc.Upload(context.Background(), "user-1", models.DummyUserFile{
			FileName:     "receipt.jpg",
			MimeType:     "image/jpeg",
			Data:         "jpegdata",
			LinkedEntity: &models.LinkedEntity{Type: "finance_entry", ID: "entry-1"},
		})

		assert.NoError(t, err)
		assert.Equal(t, "file-3", id)
		repo.AssertExpectations(t)
	})
}
