// Package remove реализует HTTP-обработчик удаления записи дневника.
package remove

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
	diaryservice "github.com/magabrotheeeer/liferpg-tracker/internal/services/diary"
)

// Handler управляет HTTP-запросами на удаление записи дневника.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики дневника
}

// Service описывает интерфейс бизнес-логики удаления записи.
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
// @Summary Удалить запись дневника
// @Description Удаляет запись дневника по её ID. Требует открытого окна доступа.
// @Tags Diary
// @Produce  json
// @Param id path string true "ID записи дневника"
// @Success 200 {object} map[string]any "Количество удалённых записей"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 403 {object} response.ErrorResponse "Дневник заблокирован"
// @Failure 404 {object} response.ErrorResponse "Запись не найдена"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при удалении записи"
// @Router /diary/{id} [delete]
// @Security BearerAuth
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.diary.remove"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	if id == "" {
		log.Error("missing entry id")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("missing entry id"))
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
		if errors.Is(err, diaryservice.ErrLocked) {
			log.Error("diary is locked", sl.Err(err))
			w.WriteHeader(http.StatusForbidden)
			render.JSON(w, r, response.Error("diary is locked"))
			return
		}
		log.Error("failed to remove diary entry", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not remove diary entry"))
		return
	}
	if count == 0 {
		log.Error("diary entry not found")
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("diary entry not found"))
		return
	}

	log.Info("success to remove diary entry", slog.Int("count", count))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"deleted": count,
	}))
}
