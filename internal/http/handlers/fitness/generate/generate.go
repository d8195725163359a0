// Package generate реализует HTTP-обработчик генерации плана тренировки
// через внешний языковой сервис. Неразборчивый ответ генератора
// транслируется в 502, а не в ошибку сервера.
package generate

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/magabrotheeeer/liferpg-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/liferpg-tracker/internal/http/response"
	"github.com/magabrotheeeer/liferpg-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/liferpg-tracker/internal/models"
	"github.com/magabrotheeeer/liferpg-tracker/internal/workoutgen"
)

// Handler управляет HTTP-запросами на генерацию плана тренировки.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики тренировок
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики генерации плана.
type Service interface {
	Generate(ctx context.Context, userUID, goal string) (*models.WorkoutPlan, error)
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
// @Summary Сгенерировать план тренировки
// @Description Генерирует план тренировки по текстовой цели и сохраняет его.
// @Tags Fitness
// @Accept  json
// @Produce  json
// @Param request body models.DummyGenerateWorkout true "Цель тренировки"
// @Success 200 {object} response.Response "Сгенерированный план"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при генерации плана"
// @Failure 502 {object} response.ErrorResponse "Генератор вернул непригодный план"
// @Router /fitness/plans/generate [post]
// @Security BearerAuth
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.fitness.generate"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyGenerateWorkout
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

	plan, err := h.service.Generate(r.Context(), userUID, req.Goal)
	if err != nil {
		if errors.Is(err, workoutgen.ErrBadPlan) {
			log.Error("generator returned unusable plan", sl.Err(err))
			w.WriteHeader(http.StatusBadGateway)
			render.JSON(w, r, response.Error("generator returned unusable plan"))
			return
		}
		log.Error("failed to generate workout plan", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not generate workout plan"))
		return
	}

	log.Info("success to generate workout plan", slog.String("id", plan.ID))
	render.JSON(w, r, response.StatusOKWithData(plan))
}
