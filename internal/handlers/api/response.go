package api

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"articledash/internal/store"
)

// jsonSuccess wraps data in the {"status":"ok"} envelope.
func jsonSuccess(c fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"data":   data,
	})
}

// jsonError writes the {"status":"error"} envelope with status.
func jsonError(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"status": "error",
		"error":  message,
	})
}

// articleError answers 404 for an unknown article and 500 with fallback otherwise.
func articleError(c fiber.Ctx, err error, fallback string) error {
	if errors.Is(err, store.ErrArticleNotFound) {
		return jsonError(c, fiber.StatusNotFound, "article not found")
	}
	return jsonError(c, fiber.StatusInternalServerError, fallback)
}

// parseArticleID reads the :id route parameter.
func parseArticleID(c fiber.Ctx) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params("id"))
	return id, err == nil
}
