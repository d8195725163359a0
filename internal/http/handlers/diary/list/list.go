// Package list реализует HTTP-обработчик чтения записей дневника.
package list

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/liferpg-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/liferpg-tracker/internal/http/response"
	"github.com/magabrotheeeer/liferpg-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/liferpg-tracker/internal/models"
	diaryservice "github.com/magabrotheeeer/liferpg-tracker/internal/services/diary"
)

// Handler управляет HTTP-запросами на чтение записей дневника.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики дневника
}

// Service описывает интерфейс бизнес-логики чтения записей.
type Service interface {
	List(ctx context.Context, userUID string) ([]*models.DiaryEntry, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список записей дневника
// @Description Возвращает записи дневника, новые первыми. Требует открытого окна доступа.
// @Tags Diary
// @Produce  json
// @Success 200 {object} response.Response "Список записей"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 403 {object} response.ErrorResponse "Дневник заблокирован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при чтении записей"
// @Router /diary [get]
// @Security BearerAuth
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.diary.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("useruid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	entries, err := h.service.List(r.Context(), userUID)
	if err != nil {
		if errors.Is(err, diaryservice.ErrLocked) {
			log.Error("diary is locked", sl.Err(err))
			w.WriteHeader(http.StatusForbidden)
			render.JSON(w, r, response.Error("diary is locked"))
			return
		}
		log.Error("failed to list diary entrys", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list diary entrys"))
		return
	}

	log.Info("success to list diary entrys", slog.Int("count", len(entries)))
	render.JSON(w, r, response.StatusOKWithData(entries))
}
