// Package intake реализует HTTP-обработчик дневного итога по воде.
package intake

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/liferpg-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/liferpg-tracker/internal/http/response"
	"github.com/magabrotheeeer/liferpg-tracker/internal/lib/sl"
	waterservice "github.com/magabrotheeeer/liferpg-tracker/internal/services/water"
)

// Handler управляет HTTP-запросами на чтение дневного итога.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики учёта воды
}

// Service описывает интерфейс бизнес-логики дневного итога.
type Service interface {
	DailyIntake(ctx context.Context, userUID, date string) (*waterservice.Intake, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Дневной итог по воде
// @Description Возвращает сумму выпитого за день, дневную цель и список приёмов. Дата передаётся в query-параметре date, по умолчанию сегодня.
// @Tags Water
// @Produce  json
// @Param date query string false "День в формате 2006-01-02"
// @Success 200 {object} response.Response "Дневной итог"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при чтении итога"
// @Router /water/intake [get]
// @Security BearerAuth
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.water.intake"
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

	date := r.URL.Query().Get("date")

	intake, err := h.service.DailyIntake(r.Context(), userUID, date)
	if err != nil {
		log.Error("failed to read daily intake", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read daily intake"))
		return
	}

	log.Info("success to read daily intake", slog.Int("total", intake.Total))
	render.JSON(w, r, response.StatusOKWithData(intake))
}
