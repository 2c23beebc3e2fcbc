// Package create реализует HTTP-обработчик добавления записи прогресса.
//
// Handler принимает JSON-запрос с измерениями, валидирует их,
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

// Service описывает интерфейс бизнес-логики добавления прогресса.
type Service interface {
	Create(ctx context.Context, userID int, req models.DummyProgress) (*models.Progress, error)
}

// Handler управляет HTTP-запросами на добавление записей прогресса.
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
// @Summary Добавить запись прогресса
// @Description Создает запись прогресса для текущего пользователя. Возвращает созданную запись.
// @Tags Progress
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body models.DummyProgress true "Данные записи прогресса"
// @Success 200 {object} models.Progress "Созданная запись"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или ошибка валидации"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при создании записи"
// @Router /progress [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.progress.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyProgress
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

	progress, err := h.service.Create(r.Context(), user.ID, req)
	if err != nil {
		log.Error("failed to create progress entry", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create progress entry"))
		return
	}

	log.Info("progress entry created", slog.Int("id", progress.ID))
	render.JSON(w, r, progress)
}
