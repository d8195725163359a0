// Package stats реализует HTTP-обработчик сводной статистики сервиса.
// Доступен только администраторам.
package stats

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/liferpg-tracker/internal/http/response"
	"github.com/magabrotheeeer/liferpg-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/liferpg-tracker/internal/models"
)

// Handler управляет HTTP-запросами на чтение статистики.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики администрирования
}

// Service описывает интерфейс бизнес-логики статистики.
type Service interface {
	Stats(ctx context.Context) (*models.AdminStats, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Статистика сервиса
// @Description Возвращает сводные счётчики по пользователям, привычкам, задачам и опыту.
// @Tags Admin
// @Produce  json
// @Success 200 {object} response.Response "Сводная статистика"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при чтении статистики"
// @Router /admin/stats [get]
// @Security BearerAuth
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.stats"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	stats, err := h.service.Stats(r.Context())
	if err != nil {
		log.Error("failed to read stats", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read stats"))
		return
	}

	log.Info("success to read stats")
	render.JSON(w, r, response.StatusOKWithData(stats))
}
