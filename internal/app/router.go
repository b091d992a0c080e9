package app

import (
	"github.com/avc-dev/shortlink/internal/config"
	"github.com/avc-dev/shortlink/internal/handler"
	"github.com/avc-dev/shortlink/internal/middleware"
	"github.com/avc-dev/shortlink/internal/service"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// newRouter создает и настраивает роутер приложения
func newRouter(h *handler.Handler, logger *zap.Logger, cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.GzipMiddleware(logger))

	// Auth
	authService := service.NewAuthService(cfg.JWTSecret)
	authMiddleware := middleware.NewAuthMiddleware(authService, logger)

	// Routes
	r.Get("/ping", h.Ping)
	r.Get("/{code}", h.Resolve)

	// Создание ссылок - владелец определяется по куке (создаётся при необходимости)
	r.With(authMiddleware.OptionalAuth).Post("/api/shorten", h.CreateLink)

	// Ссылки владельца - требует аутентификации
	r.With(authMiddleware.RequireAuth).Get("/api/user/urls", h.GetUserLinks)

	return r
}
