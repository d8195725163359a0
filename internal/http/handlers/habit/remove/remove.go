// Package remove реализует HTTP-обработчик удаления привычки.
// Отметки выполнения при удалении привычки сохраняются как история.
package remove

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/liferpg-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/liferpg-tracker/internal/http/response"
	"github.com/magabrotheeeer/liferpg-tracker/internal/lib/sl"
)

// Handler управляет HTTP-запросами на удаление привычки.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики привычек
}

// Service описывает интерфейс бизнес-логики удаления привычки.
type Service interface {
	Remove(ctx context.Context, userUID, id string) (int, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Удалить привычку
// @Description Удаляет привычку по её ID. Отметки выполнения остаются как история.
// @Tags Habits
// @Produce  json
// @Param id path string true "ID привычки"
// @Success 200 {object} map[string]any "Количество удалённых записей"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Привычка не найдена"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при удалении привычки"
// @Router /habits/{id} [delete]
// @Security BearerAuth
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.habit.remove"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	if id == "" {
		log.Error("missing habit id")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("missing habit id"))
		return
	}

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("useruid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	count, err := h.service.Remove(r.Context(), userUID, id)
	if err != nil {
		log.Error("failed to remove habit", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not remove habit"))
		return
	}
	if count == 0 {
		log.Error("habit not found")
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("habit not found"))
		return
	}

	log.Info("success to remove habit", slog.Int("count", count))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"deleted": count,
	}))
}
