package dashboard

import (
	"sync"

	"github.com/google/uuid"

	"articledash/internal/models"
	"articledash/internal/store"
)

// Controller applies user actions to the store. Every action holds one lock
// for its whole duration, so actions never interleave.
type Controller struct {
	mu      sync.Mutex
	store   *store.Store
	view    *Projector
	loadErr error
}

// NewController creates a controller over a loaded store.
func NewController(s *store.Store, view *Projector) *Controller {
	return &Controller{store: s, view: view}
}

// NewFailedController creates a controller whose initial load failed. It
// serves an empty dashboard that reports loadErr.
func NewFailedController(view *Projector, loadErr error) *Controller {
	return &Controller{store: store.New(nil), view: view, loadErr: loadErr}
}

// LoadError returns the error of the initial load, if any.
func (c *Controller) LoadError() error {
	return c.loadErr
}

// Store returns the underlying store.
func (c *Controller) Store() *store.Store {
	return c.store
}

// Projector returns the view projector.
func (c *Controller) Projector() *Projector {
	return c.view
}

// Page renders the dashboard for state.
func (c *Controller) Page(state State) Page {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page(state)
}

func (c *Controller) page(state State) Page {
	page := c.view.Page(c.store.All(), c.store.Categories(), state)
	if c.loadErr != nil {
		page.LoadError = "Articles could not be loaded. Please try again later."
	}
	return page
}

// SortChanged re-renders with a new sort key and the same filter.
func (c *Controller) SortChanged(state State, key string) (State, Page) {
	c.mu.Lock()
	defer c.mu.Unlock()

	state.Sort = key
	state = state.Normalize(c.view.DefaultTheme)
	return state, c.page(state)
}

// CategoryClicked re-renders filtered to category. The nav marks only that
// category active.
func (c *Controller) CategoryClicked(state State, category string) (State, Page) {
	c.mu.Lock()
	defer c.mu.Unlock()

	state.Category = category
	state = state.Normalize(c.view.DefaultTheme)
	return state, c.page(state)
}

// CardClicked counts a view, then returns the article detail and the
// recomputed popular panel.
func (c *Controller) CardClicked(id uuid.UUID, lang string) (Detail, *Card, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	a, err := c.store.IncrementViews(id)
	if err != nil {
		return Detail{}, nil, err
	}
	return c.view.Detail(a, lang), c.view.Popular(c.store.All(), lang), nil
}

// ReadMore returns the article detail without counting a view.
func (c *Controller) ReadMore(id uuid.UUID, lang string) (Detail, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	a, err := c.store.Get(id)
	if err != nil {
		return Detail{}, err
	}
	return c.view.Detail(a, lang), nil
}

// ThemeToggled returns the theme that replaces current.
func (c *Controller) ThemeToggled(current string) string {
	if !models.IsValidTheme(current) {
		current = c.view.DefaultTheme
	}
	return models.OtherTheme(current)
}

// Articles returns the derived article list for state.
func (c *Controller) Articles(state State) []models.Article {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Derive(c.store.All(), state)
}

// Article returns a single article without counting a view.
func (c *Controller) Article(id uuid.UUID) (models.Article, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.Get(id)
}

// OpenArticle counts a view and returns the updated article.
func (c *Controller) OpenArticle(id uuid.UUID) (models.Article, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.IncrementViews(id)
}

// Categories returns the distinct categories in first-seen order.
func (c *Controller) Categories() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.Categories()
}

// MostPopular returns the article with the most views.
func (c *Controller) MostPopular() (models.Article, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return MostPopular(c.store.All())
}
