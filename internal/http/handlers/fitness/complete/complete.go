// Package complete реализует HTTP-обработчик завершения тренировки.
package complete

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/liferpg-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/liferpg-tracker/internal/http/response"
	"github.com/magabrotheeeer/liferpg-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/liferpg-tracker/internal/models"
)

// Handler управляет HTTP-запросами на завершение тренировки.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики тренировок
}

// Service описывает интерфейс бизнес-логики завершения тренировки.
type Service interface {
	CompleteWorkout(ctx context.Context, userUID string) (*models.XPAward, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Завершить тренировку
// @Description Начисляет опыт за выполненную тренировку и возвращает новые значения профиля.
// @Tags Fitness
// @Produce  json
// @Success 200 {object} response.Response "Новые значения профиля"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при завершении тренировки"
// @Router /fitness/complete [post]
// @Security BearerAuth
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.fitness.complete"
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

	award, err := h.service.CompleteWorkout(r.Context(), userUID)
	if err != nil {
		log.Error("failed to complete workout", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not complete workout"))
		return
	}

	log.Info("success to complete workout", slog.Int("xp", award.XP))
	render.JSON(w, r, response.StatusOKWithData(award))
}
