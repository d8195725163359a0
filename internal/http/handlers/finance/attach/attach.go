// Package attach реализует HTTP-обработчик привязки файла к финансовой
// записи. Повторная привязка того же файла идемпотентна.
package attach

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
	"github.com/magabrotheeeer/liferpg-tracker/internal/storage"
)

// Handler управляет HTTP-запросами на привязку файла.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики финансов
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики привязки файла.
type Service interface {
	Attach(ctx context.Context, userUID, entryID, fileID string) error
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
// @Summary Привязать файл к финансовой записи
// @Description Добавляет ID файла в список вложений записи. Повторная привязка идемпотентна.
// @Tags Finance
// @Accept  json
// @Produce  json
// @Param id path string true "ID финансовой записи"
// @Param request body models.DummyAttachment true "ID привязываемого файла"
// @Success 200 {object} response.Response "Файл привязан"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Запись не найдена"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при привязке файла"
// @Router /finance/{id}/attachments [post]
// @Security BearerAuth
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.finance.attach"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	entryID := chi.URLParam(r, "id")
	if entryID == "" {
		log.Error("missing entry id")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("missing entry id"))
		return
	}

	var req models.DummyAttachment
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

	if err := h.service.Attach(r.Context(), userUID, entryID, req.FileID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Error("finance entry not found", sl.Err(err))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("finance entry not found"))
			return
		}
		log.Error("failed to attach file", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not attach file"))
		return
	}

	log.Info("success to attach file", slog.String("file_id", req.FileID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"file_id": req.FileID,
	}))
}
