package api

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"articledash/internal/dashboard"
	"articledash/internal/metrics"
	"articledash/internal/models"
)

// ArticleResponse is the JSON shape of an article.
type ArticleResponse struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Category       string    `json:"category"`
	Content        string    `json:"content"`
	Date           string    `json:"date"`
	WordCount      int       `json:"word_count"`
	Views          int64     `json:"views"`
	ReadingMinutes int       `json:"reading_minutes"`
}

// ListResponse is the JSON shape of a derived article list.
type ListResponse struct {
	Articles []ArticleResponse `json:"articles"`
	Sort     string            `json:"sort"`
	Category string            `json:"category"`
	Total    int               `json:"total"`
}

// ArticleHandler serves articles as JSON.
type ArticleHandler struct {
	ctrl *dashboard.Controller
}

// NewArticleHandler creates a new API article handler.
func NewArticleHandler(ctrl *dashboard.Controller) *ArticleHandler {
	return &ArticleHandler{ctrl: ctrl}
}

func (h *ArticleHandler) toResponse(a models.Article) ArticleResponse {
	return ArticleResponse{
		ID:             a.ID,
		Title:          a.Title,
		Category:       a.Category,
		Content:        a.Content,
		Date:           a.Date.Format("2006-01-02"),
		WordCount:      a.WordCount,
		Views:          a.Views,
		ReadingMinutes: models.ReadingMinutes(a.WordCount, h.ctrl.Projector().WordsPerMinute),
	}
}

// List returns the articles ordered by ?sort= and filtered by ?category=.
func (h *ArticleHandler) List(c fiber.Ctx) error {
	if err := h.ctrl.LoadError(); err != nil {
		return jsonError(c, fiber.StatusServiceUnavailable, "articles could not be loaded")
	}

	sortKey := c.Query("sort", models.SortByDate)
	if !models.IsValidSortKey(sortKey) {
		return jsonError(c, fiber.StatusBadRequest, `sort must be "date" or "views"`)
	}
	category := c.Query("category", models.CategoryAll)

	articles := h.ctrl.Articles(dashboard.State{Sort: sortKey, Category: category})
	res := ListResponse{
		Articles: make([]ArticleResponse, 0, len(articles)),
		Sort:     sortKey,
		Category: category,
		Total:    len(articles),
	}
	for _, a := range articles {
		res.Articles = append(res.Articles, h.toResponse(a))
	}
	return jsonSuccess(c, res)
}

// Get returns a single article without counting a view.
func (h *ArticleHandler) Get(c fiber.Ctx) error {
	id, ok := parseArticleID(c)
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid article id")
	}

	a, err := h.ctrl.Article(id)
	if err != nil {
		return articleError(c, err, "failed to fetch article")
	}
	return jsonSuccess(c, h.toResponse(a))
}

// View counts one view of an article and returns it with the new count.
func (h *ArticleHandler) View(c fiber.Ctx) error {
	id, ok := parseArticleID(c)
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid article id")
	}

	a, err := h.ctrl.OpenArticle(id)
	if err != nil {
		return articleError(c, err, "failed to record view")
	}
	metrics.RecordAction(metrics.ActionCardClicked)
	return jsonSuccess(c, h.toResponse(a))
}

// Categories returns the distinct categories in first-seen order.
func (h *ArticleHandler) Categories(c fiber.Ctx) error {
	categories := h.ctrl.Categories()
	if categories == nil {
		categories = []string{}
	}
	return jsonSuccess(c, categories)
}

// Popular returns the most viewed article, or null when there are none.
func (h *ArticleHandler) Popular(c fiber.Ctx) error {
	a, ok := h.ctrl.MostPopular()
	if !ok {
		return jsonSuccess(c, nil)
	}
	return jsonSuccess(c, h.toResponse(a))
}
