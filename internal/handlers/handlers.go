package handlers

import (
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"articledash/internal/dashboard"
	"articledash/internal/middleware"
	"articledash/internal/store"
)

// isHTMX reports whether the request came from an HTMX swap.
func isHTMX(c fiber.Ctx) bool {
	return c.Get("HX-Request") == "true"
}

// requestState reads the UI state carried by the request.
func requestState(c fiber.Ctx) dashboard.State {
	return dashboard.State{
		Sort:     c.Query("sort"),
		Category: c.Query("category"),
		Theme:    middleware.Theme(c),
		Lang:     c.Get(fiber.HeaderAcceptLanguage),
	}
}

// articleID parses the :id route parameter.
func articleID(c fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "invalid article id")
	}
	return id, nil
}

// notFoundOr maps store.ErrArticleNotFound to a 404 and passes other errors through.
func notFoundOr(err error) error {
	if errors.Is(err, store.ErrArticleNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "article not found")
	}
	return err
}

// dashboardURL builds the bookmarkable URL for a state.
func dashboardURL(state dashboard.State) string {
	q := url.Values{}
	q.Set("sort", state.Sort)
	q.Set("category", state.Category)
	return "/?" + q.Encode()
}
