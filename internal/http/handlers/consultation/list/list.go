// Package list реализует HTTP-обработчик списка консультаций пользователя.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/fitcoach/internal/http/middlewarectx"
	"github.com/magabrotheeeer/fitcoach/internal/http/response"
	"github.com/magabrotheeeer/fitcoach/internal/lib/sl"
	"github.com/magabrotheeeer/fitcoach/internal/models"
)

// Service описывает интерфейс бизнес-логики списка консультаций.
type Service interface {
	List(ctx context.Context, userID int) ([]*models.Consultation, error)
}

// Handler управляет HTTP-запросами списка консультаций.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список консультаций
// @Description Возвращает консультации текущего пользователя в порядке создания.
// @Tags Consultations
// @Produce  json
// @Security BearerAuth
// @Success 200 {array} models.Consultation "Консультации пользователя"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /consultations [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.consultation.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	user, ok := middlewarectx.UserFromContext(r.Context())
	if !ok {
		log.Error("user not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	res, err := h.service.List(r.Context(), user.ID)
	if err != nil {
		log.Error("failed to list consultations", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list consultations"))
		return
	}

	log.Info("list consultations", "count", len(res))
	render.JSON(w, r, res)
}
