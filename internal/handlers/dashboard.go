package handlers

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v3"

	"articledash/internal/config"
	"articledash/internal/dashboard"
	"articledash/internal/metrics"
	"articledash/internal/middleware"
	"articledash/internal/models"
)

// DashboardHandler renders the dashboard and handles its interactions.
type DashboardHandler struct {
	ctrl  *dashboard.Controller
	cfg   *config.Config
	theme *middleware.ThemeMiddleware
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(ctrl *dashboard.Controller, cfg *config.Config, theme *middleware.ThemeMiddleware) *DashboardHandler {
	return &DashboardHandler{ctrl: ctrl, cfg: cfg, theme: theme}
}

// Index renders the full dashboard page.
func (h *DashboardHandler) Index(c fiber.Ctx) error {
	page := h.ctrl.Page(requestState(c))
	return c.Render("index", MergeBranding(fiber.Map{
		"Title": "Dashboard",
		"Page":  page,
	}, h.cfg))
}

// Sort re-renders the grid in a new order, keeping the category filter.
func (h *DashboardHandler) Sort(c fiber.Ctx) error {
	state := requestState(c)
	state, page := h.ctrl.SortChanged(state, c.Query("sort"))
	metrics.RecordAction(metrics.ActionSortChanged)

	if !isHTMX(c) {
		return c.Redirect().To(dashboardURL(state))
	}
	c.Set("HX-Push-Url", dashboardURL(state))
	return c.Render("partials/grid", fiber.Map{"Page": page}, "")
}

// Category re-renders the grid filtered to one category and marks it active in the nav.
func (h *DashboardHandler) Category(c fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid category")
	}

	state, page := h.ctrl.CategoryClicked(requestState(c), name)
	metrics.RecordAction(metrics.ActionCategoryClicked)

	if !isHTMX(c) {
		return c.Redirect().To(dashboardURL(state))
	}
	c.Set("HX-Push-Url", dashboardURL(state))
	return c.Render("partials/category_swap", fiber.Map{"Page": page}, "")
}

// Open counts a view and shows the article in the modal. The popular panel
// is swapped out of band because the count may have changed the leader. A
// grid ordered by views is swapped too since the order may have changed.
func (h *DashboardHandler) Open(c fiber.Ctx) error {
	id, err := articleID(c)
	if err != nil {
		return err
	}

	detail, popular, err := h.ctrl.CardClicked(id, c.Get(fiber.HeaderAcceptLanguage))
	if err != nil {
		return notFoundOr(err)
	}
	metrics.RecordAction(metrics.ActionCardClicked)

	if !isHTMX(c) {
		return c.Render("article", MergeBranding(fiber.Map{
			"Title":   detail.Title,
			"Article": detail,
			"Page":    dashboard.Page{Theme: middleware.Theme(c)},
		}, h.cfg))
	}
	bind := fiber.Map{
		"Article": detail,
		"Popular": popular,
	}
	if c.FormValue("sort") == models.SortByViews {
		bind["Page"] = h.ctrl.Page(dashboard.State{
			Sort:     models.SortByViews,
			Category: c.FormValue("category"),
			Theme:    middleware.Theme(c),
			Lang:     c.Get(fiber.HeaderAcceptLanguage),
		})
		bind["OOB"] = true
	}
	return c.Render("partials/article_opened", bind, "")
}

// ReadMore shows the article in the modal without counting a view.
func (h *DashboardHandler) ReadMore(c fiber.Ctx) error {
	id, err := articleID(c)
	if err != nil {
		return err
	}

	detail, err := h.ctrl.ReadMore(id, c.Get(fiber.HeaderAcceptLanguage))
	if err != nil {
		return notFoundOr(err)
	}
	metrics.RecordAction(metrics.ActionReadMore)

	if !isHTMX(c) {
		return c.Render("article", MergeBranding(fiber.Map{
			"Title":   detail.Title,
			"Article": detail,
			"Page":    dashboard.Page{Theme: middleware.Theme(c)},
		}, h.cfg))
	}
	return c.Render("partials/modal", fiber.Map{"Article": detail}, "")
}

// ToggleTheme flips the theme and persists it in the theme cookie.
func (h *DashboardHandler) ToggleTheme(c fiber.Ctx) error {
	theme := h.ctrl.ThemeToggled(middleware.Theme(c))
	h.theme.Persist(c, theme)
	metrics.RecordAction(metrics.ActionThemeToggled)

	if isHTMX(c) {
		c.Set("HX-Refresh", "true")
		return c.SendString("")
	}

	return c.Redirect().To(localPath(c.Get(fiber.HeaderReferer)))
}

// localPath keeps only the path and query of ref so redirects stay on this site.
func localPath(ref string) string {
	u, err := url.Parse(ref)
	if err != nil || !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(u.Path, "//") {
		return "/"
	}
	if u.RawQuery != "" {
		return u.Path + "?" + u.RawQuery
	}
	return u.Path
}
