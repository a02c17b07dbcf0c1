package dashboard

import (
	"html/template"
	"log/slog"

	"github.com/google/uuid"

	"articledash/internal/models"
)

// Default excerpt lengths, in characters.
const (
	GridExcerptLen    = 100
	PopularExcerptLen = 200
)

// DefaultBadge is the badge class used when nothing else is configured.
const DefaultBadge = "bg-primary"

// CategoryStyle controls how a category is labeled in the nav and on badges.
type CategoryStyle struct {
	Label string
	Badge string // CSS class for the badge, e.g. "bg-success"
}

// Card is one article as shown in the grid or the popular panel.
type Card struct {
	ID             uuid.UUID
	Category       string
	CategoryLabel  string
	Badge          string
	Title          string
	Excerpt        string
	Published      string
	ReadingMinutes int
	Views          int64
}

// Detail is the full article as shown in the modal.
type Detail struct {
	Card
	Body template.HTML
}

// NavEntry is one item of the category navigation.
type NavEntry struct {
	Name   string
	Label  string
	Active bool
}

// SortOption is one item of the sort selector.
type SortOption struct {
	Value    string
	Label    string
	Selected bool
}

// Page is everything the dashboard template needs.
type Page struct {
	Cards       []Card
	Popular     *Card
	Categories  []NavEntry
	SortOptions []SortOption
	Sort        string
	Category    string
	Theme       string
	LoadError   string
}

// Projector turns articles and UI state into view-models. It has no side effects.
type Projector struct {
	GridExcerptLen    int
	PopularExcerptLen int
	WordsPerMinute    int
	DefaultTheme      string
	DefaultBadge      string // badge class for categories without a style of their own
	Styles            map[string]CategoryStyle
}

// NewProjector creates a projector with the default lengths and reading speed.
func NewProjector(styles map[string]CategoryStyle) *Projector {
	return &Projector{
		GridExcerptLen:    GridExcerptLen,
		PopularExcerptLen: PopularExcerptLen,
		WordsPerMinute:    models.DefaultWordsPerMinute,
		DefaultTheme:      models.ThemeLight,
		DefaultBadge:      DefaultBadge,
		Styles:            styles,
	}
}

// Card projects a single article with an excerpt of excerptLen characters.
func (p *Projector) Card(a models.Article, excerptLen int, lang string) Card {
	excerpt, cut := a.Excerpt(excerptLen)
	if cut {
		excerpt += "..."
	}

	label, badge := a.Category, p.DefaultBadge
	if badge == "" {
		badge = DefaultBadge
	}
	if style, ok := p.Styles[a.Category]; ok {
		if style.Label != "" {
			label = style.Label
		}
		if style.Badge != "" {
			badge = style.Badge
		}
	}

	return Card{
		ID:             a.ID,
		Category:       a.Category,
		CategoryLabel:  label,
		Badge:          badge,
		Title:          a.Title,
		Excerpt:        excerpt,
		Published:      FormatDate(a.Date, lang),
		ReadingMinutes: models.ReadingMinutes(a.WordCount, p.WordsPerMinute),
		Views:          a.Views,
	}
}

// Popular projects the most popular article, or nil when there are no articles.
func (p *Projector) Popular(articles []models.Article, lang string) *Card {
	top, ok := MostPopular(articles)
	if !ok {
		return nil
	}
	card := p.Card(top, p.PopularExcerptLen, lang)
	return &card
}

// Detail projects the full article for the modal.
func (p *Projector) Detail(a models.Article, lang string) Detail {
	card := p.Card(a, -1, lang)
	card.Excerpt = ""

	body, err := RenderContent(a.Content)
	if err != nil {
		slog.Warn("failed to render article body as markdown", "article_id", a.ID, "error", err)
		body = template.HTML(template.HTMLEscapeString(a.Content))
	}
	return Detail{Card: card, Body: body}
}

// Nav builds the category navigation: "all" first, then each category once.
func (p *Projector) Nav(categories []string, active string) []NavEntry {
	if active == "" {
		active = models.CategoryAll
	}
	nav := make([]NavEntry, 0, len(categories)+1)
	nav = append(nav, NavEntry{Name: models.CategoryAll, Label: "All", Active: active == models.CategoryAll})
	for _, c := range categories {
		label := c
		if style, ok := p.Styles[c]; ok && style.Label != "" {
			label = style.Label
		}
		nav = append(nav, NavEntry{Name: c, Label: label, Active: active == c})
	}
	return nav
}

// Page projects the whole dashboard for state. articles is the store
// snapshot in load order; categories its distinct categories.
func (p *Projector) Page(articles []models.Article, categories []string, state State) Page {
	state = state.Normalize(p.DefaultTheme)

	derived := Derive(articles, state)
	cards := make([]Card, 0, len(derived))
	for _, a := range derived {
		cards = append(cards, p.Card(a, p.GridExcerptLen, state.Lang))
	}

	return Page{
		Cards:      cards,
		Popular:    p.Popular(articles, state.Lang),
		Categories: p.Nav(categories, state.Category),
		SortOptions: []SortOption{
			{Value: models.SortByDate, Label: "Newest first", Selected: state.Sort == models.SortByDate},
			{Value: models.SortByViews, Label: "Most viewed", Selected: state.Sort == models.SortByViews},
		},
		Sort:     state.Sort,
		Category: state.Category,
		Theme:    state.Theme,
	}
}
