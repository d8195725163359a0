// Package complete реализует HTTP-обработчик завершения задачи.
//
// Завершение необратимо. Повторный вызов по уже завершённой задаче
// возвращает успех без повторного начисления опыта.
package complete

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/liferpg-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/liferpg-tracker/internal/http/response"
	"github.com/magabrotheeeer/liferpg-tracker/internal/lib/sl"
	taskservice "github.com/magabrotheeeer/liferpg-tracker/internal/services/task"
	"github.com/magabrotheeeer/liferpg-tracker/internal/storage"
)

// Handler управляет HTTP-запросами на завершение задачи.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики задач
}

// Service описывает интерфейс бизнес-логики завершения задачи.
type Service interface {
	Complete(ctx context.Context, userUID, id string) (*taskservice.CompleteResult, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Завершить задачу
// @Description Помечает задачу завершённой и начисляет опыт. Повторный вызов идемпотентен.
// @Tags Tasks
// @Produce  json
// @Param id path string true "ID задачи"
// @Success 200 {object} map[string]any "Результат завершения"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Задача не найдена"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при завершении задачи"
// @Router /tasks/{id}/complete [post]
// @Security BearerAuth
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.task.complete"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	if id == "" {
		log.Error("missing task id")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("missing task id"))
		return
	}

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("useruid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	result, err := h.service.Complete(r.Context(), userUID, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Error("task not found", sl.Err(err))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("task not found"))
			return
		}
		log.Error("failed to complete task", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not complete task"))
		return
	}

	log.Info("success to complete task", slog.Bool("completed_now", result.CompletedNow))
	render.JSON(w, r, response.StatusOKWithData(result))
}
