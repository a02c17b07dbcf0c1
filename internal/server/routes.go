package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"articledash/internal/dashboard"
	"articledash/internal/handlers"
	"articledash/internal/handlers/api"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(ctrl *dashboard.Controller) {
	// Initialize handlers
	dashboardHandler := handlers.NewDashboardHandler(ctrl, s.Cfg, s.Theme)
	healthHandler := handlers.NewHealthHandler(ctrl)
	articleAPI := api.NewArticleHandler(ctrl)
	themeAPI := api.NewThemeHandler(s.Theme)

	// Ops
	s.App.Get("/health", healthHandler.Check)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Frontend routes
	s.App.Get("/", dashboardHandler.Index)
	s.App.Get("/sort", dashboardHandler.Sort)
	s.App.Get("/category/:name", dashboardHandler.Category)
	s.App.Get("/articles/:id", dashboardHandler.ReadMore)
	s.App.Post("/articles/:id/open", dashboardHandler.Open)
	s.App.Post("/theme/toggle", dashboardHandler.ToggleTheme)

	// JSON API
	apiGroup := s.App.Group("/api")
	apiGroup.Get("/articles", articleAPI.List)
	apiGroup.Get("/articles/:id", articleAPI.Get)
	apiGroup.Post("/articles/:id/views", articleAPI.View)
	apiGroup.Get("/categories", articleAPI.Categories)
	apiGroup.Get("/popular", articleAPI.Popular)
	apiGroup.Get("/theme", themeAPI.Get)
	apiGroup.Put("/theme", themeAPI.Set)
}
