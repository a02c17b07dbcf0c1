package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"articledash/internal/models"
)

// ThemeCookie is the cookie holding the display theme.
const ThemeCookie = "theme"

// ThemeLocal is the c.Locals key the resolved theme is stored under.
const ThemeLocal = "theme"

const themeCookieMaxAge = 365 * 24 * time.Hour

// ThemeMiddleware resolves the user's theme preference from its cookie.
type ThemeMiddleware struct {
	defaultTheme string
	secure       bool
}

// NewThemeMiddleware creates a new theme middleware. Invalid defaults fall back to light.
func NewThemeMiddleware(defaultTheme string, secure bool) *ThemeMiddleware {
	if !models.IsValidTheme(defaultTheme) {
		defaultTheme = models.ThemeLight
	}
	return &ThemeMiddleware{defaultTheme: defaultTheme, secure: secure}
}

// Resolve stores the theme in c.Locals, ignoring unknown cookie values.
func (m *ThemeMiddleware) Resolve(c fiber.Ctx) error {
	theme := c.Cookies(ThemeCookie)
	if !models.IsValidTheme(theme) {
		theme = m.defaultTheme
	}
	c.Locals(ThemeLocal, theme)
	return c.Next()
}

// Persist writes theme to the cookie for a year.
func (m *ThemeMiddleware) Persist(c fiber.Ctx, theme string) {
	c.Cookie(&fiber.Cookie{
		Name:     ThemeCookie,
		Value:    theme,
		Path:     "/",
		Expires:  time.Now().Add(themeCookieMaxAge),
		MaxAge:   int(themeCookieMaxAge.Seconds()),
		Secure:   m.secure,
		HTTPOnly: true,
		SameSite: "Lax",
	})
	c.Locals(ThemeLocal, theme)
}

// Theme returns the theme resolved for this request.
func Theme(c fiber.Ctx) string {
	theme, _ := c.Locals(ThemeLocal).(string)
	return theme
}
