// Package assignpackage реализует административный HTTP-обработчик
// назначения тренировочного пакета пользователю.
package assignpackage

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/magabrotheeeer/fitcoach/internal/http/response"
	"github.com/magabrotheeeer/fitcoach/internal/lib/sl"
	"github.com/magabrotheeeer/fitcoach/internal/models"
	"github.com/magabrotheeeer/fitcoach/internal/services/user"
)

// Request — входные данные для назначения пакета.
type Request struct {
	PackageID string `json:"packageId" validate:"required,oneof=monthly quarterly halfYearly yearly"`
}

// Service описывает интерфейс бизнес-логики назначения пакета.
type Service interface {
	AssignPackage(ctx context.Context, userID int, packageID string) (*models.User, error)
}

// Handler управляет административными запросами назначения пакетов.
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
// @Summary Назначить пакет пользователю
// @Description Назначает пользователю тариф из каталога со сроком действия от текущего момента. Доступно только администратору.
// @Tags Admin
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param id path int true "ID пользователя"
// @Param request body Request true "Идентификатор пакета"
// @Success 200 {object} models.User "Обновленный пользователь"
// @Failure 400 {object} response.ErrorResponse "Некорректный запрос"
// @Failure 401 {object} response.ErrorResponse "Нет прав доступа"
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /admin/users/{id}/package [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.assignpackage"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		log.Error("invalid id format", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid id"))
		return
	}

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	updated, err := h.service.AssignPackage(r.Context(), id, req.PackageID)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUnknownPackage):
			log.Error("unknown package", slog.String("package", req.PackageID))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("unknown package"))
		case errors.Is(err, user.ErrUserNotFound):
			log.Error("user not found", slog.Int("user_id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("user not found"))
		default:
			log.Error("failed to assign package", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to assign package"))
		}
		return
	}

	log.Info("package assigned", slog.Int("user_id", id), slog.String("package", req.PackageID))
	render.JSON(w, r, updated)
}
