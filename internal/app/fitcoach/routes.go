// Package fitcoach предоставляет маршруты для основного приложения.
package fitcoach

import (
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/fitcoach/internal/http/handlers/admin/assignpackage"
	"github.com/magabrotheeeer/fitcoach/internal/http/handlers/admin/userlist"
	"github.com/magabrotheeeer/fitcoach/internal/http/handlers/admin/userremove"
	"github.com/magabrotheeeer/fitcoach/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/fitcoach/internal/http/handlers/auth/logout"
	"github.com/magabrotheeeer/fitcoach/internal/http/handlers/auth/me"
	"github.com/magabrotheeeer/fitcoach/internal/http/handlers/auth/register"
	consultationcreate "github.com/magabrotheeeer/fitcoach/internal/http/handlers/consultation/create"
	consultationlist "github.com/magabrotheeeer/fitcoach/internal/http/handlers/consultation/list"
	"github.com/magabrotheeeer/fitcoach/internal/http/handlers/health"
	progresscreate "github.com/magabrotheeeer/fitcoach/internal/http/handlers/progress/create"
	progresslist "github.com/magabrotheeeer/fitcoach/internal/http/handlers/progress/list"
	"github.com/magabrotheeeer/fitcoach/internal/http/middlewarectx"
	"github.com/magabrotheeeer/fitcoach/internal/services/auth"
	consultationservice "github.com/magabrotheeeer/fitcoach/internal/services/consultation"
	progressservice "github.com/magabrotheeeer/fitcoach/internal/services/progress"
	userservice "github.com/magabrotheeeer/fitcoach/internal/services/user"

	"log/slog"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, authService *auth.AuthService, consultationService *consultationservice.Service, progressService *progressservice.Service, userService *userservice.Service) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/register", register.New(logger, authService).ServeHTTP)
		r.Post("/login", login.New(logger, authService).ServeHTTP)

		// Группа с аутентификацией по токену
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.AuthMiddleware(authService, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Post("/logout", logout.New(logger, authService).ServeHTTP)
			r.Get("/user", me.New(logger).ServeHTTP)
			r.Post("/consultations", consultationcreate.New(logger, consultationService).ServeHTTP)
			r.Get("/consultations", consultationlist.New(logger, consultationService).ServeHTTP)
			r.Post("/progress", progresscreate.New(logger, progressService).ServeHTTP)
			r.Get("/progress", progresslist.New(logger, progressService).ServeHTTP)

			// Административная группа
			r.Route("/admin", func(r chi.Router) {
				r.Use(middlewarectx.AdminMiddleware(logger))
				r.Get("/users", userlist.New(logger, userService).ServeHTTP)
				r.Delete("/users/{id}", userremove.New(logger, userService).ServeHTTP)
				r.Post("/users/{id}/package", assignpackage.New(logger, userService).ServeHTTP)
			})
		})
	})

	r.Get("/health", health.New(logger).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
