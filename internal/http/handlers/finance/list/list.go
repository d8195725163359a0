// Package list реализует HTTP-обработчик чтения финансовых записей.
package list

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

// Handler управляет HTTP-запросами на чтение финансовых записей.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики финансов
}

// Service описывает интерфейс бизнес-логики чтения финансовых записей.
type Service interface {
	List(ctx context.Context, userUID string) ([]*models.FinancialEntry, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список финансовых записей
// @Description Возвращает финансовые записи текущего пользователя, новые первыми.
// @Tags Finance
// @Produce  json
// @Success 200 {object} response.Response "Список финансовых записей"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при чтении записей"
// @Router /finance [get]
// @Security BearerAuth
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.finance.list"
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
		log.Error("failed to list finance entrys", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list finance entrys"))
		return
	}

	log.Info("success to list finance entrys", slog.Int("count", len(entries)))
	render.JSON(w, r, response.StatusOKWithData(entries))
}
