package handlers

import (
	"github.com/gofiber/fiber/v3"

	"articledash/internal/dashboard"
)

// HealthHandler reports whether the article collection loaded.
type HealthHandler struct {
	ctrl *dashboard.Controller
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(ctrl *dashboard.Controller) *HealthHandler {
	return &HealthHandler{ctrl: ctrl}
}

// Check returns 200 with the article count, or 503 if the startup load failed.
func (h *HealthHandler) Check(c fiber.Ctx) error {
	if err := h.ctrl.LoadError(); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status":   "unhealthy",
			"articles": 0,
			"error":    err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"status":   "healthy",
		"articles": h.ctrl.Store().Len(),
	})
}
