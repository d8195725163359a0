package toggle

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/liferpg-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/liferpg-tracker/internal/models"
	habitservice "github.com/magabrotheeeer/liferpg-tracker/internal/services/habit"
	"github.com/magabrotheeeer/liferpg-tracker/internal/storage"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Toggle(ctx context.Context, userUID, habitID, date string) (*habitservice.ToggleResult, error) {
	args := m.Called(ctx, userUID, habitID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*habitservice.ToggleResult), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestToggleHandler_ServeHTTP(t *testing.T) {
	logger := newNoopLogger()

	tests := []struct {
		name           string
		habitID        string
		userUID        string
		body           string
		setupMock      func(*ServiceMock)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "отметка поставлена",
			habitID: "habit-1",
			userUID: "user-1",
			body:    `{"date": "2026-08-28"}`,
			setupMock: func(m *ServiceMock) {
				m.On("Toggle", mock.Anything, "user-1", "habit-1", "2026-08-28").
					Return(&habitservice.ToggleResult{
						Completed: true,
						Award:     &models.XPAward{XP: 10, Level: 1, Streak: 1},
					}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"Completed":true`,
		},
		{
			name:    "отметка снята",
			habitID: "habit-1",
			userUID: "user-1",
			body:    `{"date": "2026-08-28"}`,
			setupMock: func(m *ServiceMock) {
				m.On("Toggle", mock.Anything, "user-1", "habit-1", "2026-08-28").
					Return(&habitservice.ToggleResult{Completed: false}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"Completed":false`,
		},
		{
			name:           "некорректный json",
			habitID:        "habit-1",
			userUID:        "user-1",
			body:           "not a json",
			setupMock:      func(_ *ServiceMock) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"invalid request body"`,
		},
		{
			name:           "дата в неверном формате",
			habitID:        "habit-1",
			userUID:        "user-1",
			body:           `{"date": "28.08.2026"}`,
			setupMock:      func(_ *ServiceMock) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `"status":"Error"`,
		},
		{
			name:           "нет пользователя в контексте",
			habitID:        "habit-1",
			userUID:        "",
			body:           `{"date": "2026-08-28"}`,
			setupMock:      func(_ *ServiceMock) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"error":"unauthorized"`,
		},
		{
			name:    "привычка не найдена",
			habitID: "ghost",
			userUID: "user-1",
			body:    `{"date": "2026-08-28"}`,
			setupMock: func(m *ServiceMock) {
				m.On("Toggle", mock.Anything, "user-1", "ghost", "2026-08-28").
					Return(nil, storage.ErrNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"error":"habit not found"`,
		},
		{
			name:    "ошибка сервиса",
			habitID: "habit-1",
			userUID: "user-1",
			body:    `{"date": "2026-08-28"}`,
			setupMock: func(m *ServiceMock) {
				m.On("Toggle", mock.Anything, "user-1", "habit-1", "2026-08-28").
					Return(nil, errors.New("db error")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"error":"could not toggle habit"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(ServiceMock)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/habits/"+tt.habitID+"/toggle",
				bytes.NewReader([]byte(tt.body)))
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.habitID)
			ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
			if tt.userUID != "" {
				ctx = context.WithValue(ctx, middlewarectx.UserUID, tt.userUID)
			}
			req = req.WithContext(ctx)

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
