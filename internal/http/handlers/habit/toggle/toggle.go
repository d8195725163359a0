// Package toggle реализует HTTP-обработчик переключения отметки привычки.
//
// Повторная отметка за тот же день снимает отметку, так что запрос
// работает как переключатель. Опыт начисляется только при постановке.
package toggle

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/magabrotheeeer/liferpg-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/liferpg-tracker/internal/http/response"
	"github.com/magabrotheeeer/liferpg-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/liferpg-tracker/internal/models"
	habitservice "github.com/magabrotheeeer/liferpg-tracker/internal/services/habit"
	"github.com/magabrotheeeer/liferpg-tracker/internal/storage"
)

// Handler управляет HTTP-запросами на переключение отметки привычки.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики привычек
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики переключения отметки.
type Service interface {
	Toggle(ctx context.Context, userUID, habitID, date string) (*habitservice.ToggleResult, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Переключить отметку привычки
// @Description Отмечает привычку выполненной за указанную дату или снимает отметку, если она уже стояла.
// @Tags Habits
// @Accept  json
// @Produce  json
// @Param id path string true "ID привычки"
// @Param request body models.DummyHabitToggle true "Дата отметки в формате 2006-01-02"
// @Success 200 {object} map[string]any "Результат переключения"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Привычка не найдена"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при переключении отметки"
// @Router /habits/{id}/toggle [post]
// @Security BearerAuth
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.habit.toggle"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	habitID := chi.URLParam(r, "id")
	if habitID == "" {
		log.Error("missing habit id")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("missing habit id"))
		return
	}

	var req models.DummyHabitToggle
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("useruid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	result, err := h.service.Toggle(r.Context(), userUID, habitID, req.Date)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Error("habit not found", sl.Err(err))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("habit not found"))
			return
		}
		log.Error("failed to toggle habit", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not toggle habit"))
		return
	}

	log.Info("success to toggle habit", slog.Bool("completed", result.Completed))
	render.JSON(w, r, response.StatusOKWithData(result))
}
