// Package create реализует HTTP-обработчик записи на консультацию.
//
// Handler принимает JSON-запрос с данными консультации, валидирует их,
// извлекает пользователя из контекста и возвращает созданную запись.
package create

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/magabrotheeeer/fitcoach/internal/http/middlewarectx"
	"github.com/magabrotheeeer/fitcoach/internal/http/response"
	"github.com/magabrotheeeer/fitcoach/internal/lib/sl"
	"github.com/magabrotheeeer/fitcoach/internal/models"
)

// Service описывает интерфейс бизнес-логики записи на консультацию.
type Service interface {
	Create(ctx context.Context, userID int, req models.DummyConsultation) (*models.Consultation, error)
}

// Handler управляет HTTP-запросами на создание консультаций.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
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
// @Summary Записаться на консультацию
// @Description Создает запись на консультацию для текущего пользователя. Возвращает созданную запись.
// @Tags Consultations
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body models.DummyConsultation true "Данные консультации"
// @Success 200 {object} models.Consultation "Созданная запись"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или ошибка валидации"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при создании записи"
// @Router /consultations [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.consultation.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyConsultation
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	log.Info("all fields are validated")

	user, ok := middlewarectx.UserFromContext(r.Context())
	if !ok {
		log.Error("user not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	consultation, err := h.service.Create(r.Context(), user.ID, req)
	if err != nil {
		log.Error("failed to create consultation", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create consultation"))
		return
	}

	log.Info("consultation created", slog.Int("id", consultation.ID))
	render.JSON(w, r, consultation)
}
