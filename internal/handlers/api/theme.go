package api

import (
	"encoding/json"

	"github.com/gofiber/fiber/v3"

	"articledash/internal/metrics"
	"articledash/internal/middleware"
	"articledash/internal/models"
)

// ThemeHandler reads and sets the theme preference.
type ThemeHandler struct {
	theme *middleware.ThemeMiddleware
}

// NewThemeHandler creates a new API theme handler.
func NewThemeHandler(theme *middleware.ThemeMiddleware) *ThemeHandler {
	return &ThemeHandler{theme: theme}
}

// Get returns the current theme.
func (h *ThemeHandler) Get(c fiber.Ctx) error {
	return jsonSuccess(c, fiber.Map{"theme": middleware.Theme(c)})
}

// Set stores the theme named in the body.
func (h *ThemeHandler) Set(c fiber.Ctx) error {
	var body struct {
		Theme string `json:"theme"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if !models.IsValidTheme(body.Theme) {
		return jsonError(c, fiber.StatusBadRequest, `theme must be "light" or "dark"`)
	}

	if body.Theme != middleware.Theme(c) {
		metrics.RecordAction(metrics.ActionThemeToggled)
	}
	h.theme.Persist(c, body.Theme)
	return jsonSuccess(c, fiber.Map{"theme": body.Theme})
}
