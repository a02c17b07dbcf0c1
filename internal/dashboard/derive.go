// Package dashboard derives what the dashboard shows from the article store:
// ordering, filtering, the most popular article and the page view-model.
package dashboard

import (
	"sort"

	"articledash/internal/models"
)

// State is the UI state a page is rendered for. It lives in the request
// (query string and theme cookie), never on the server.
type State struct {
	Sort     string
	Category string
	Theme    string
	Lang     string // Accept-Language header value
}

// Normalize fills defaults: unknown sort keys fall back to date, an empty
// category means all, an unknown theme becomes defaultTheme.
func (s State) Normalize(defaultTheme string) State {
	if !models.IsValidSortKey(s.Sort) {
		s.Sort = models.SortByDate
	}
	if s.Category == "" {
		s.Category = models.CategoryAll
	}
	if !models.IsValidTheme(s.Theme) {
		s.Theme = defaultTheme
	}
	return s
}

// Sort returns a new slice ordered by key, descending. Ties keep input order.
// Any key other than views orders by date.
func Sort(articles []models.Article, key string) []models.Article {
	out := make([]models.Article, len(articles))
	copy(out, articles)

	if key == models.SortByViews {
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Views > out[j].Views
		})
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// Filter returns the articles in category, preserving order.
// "all" and the empty string match everything.
func Filter(articles []models.Article, category string) []models.Article {
	if category == "" || category == models.CategoryAll {
		out := make([]models.Article, len(articles))
		copy(out, articles)
		return out
	}

	out := make([]models.Article, 0, len(articles))
	for _, a := range articles {
		if a.Category == category {
			out = append(out, a)
		}
	}
	return out
}

// Derive filters by the state's category and then orders by its sort key.
func Derive(articles []models.Article, state State) []models.Article {
	return Sort(Filter(articles, state.Category), state.Sort)
}

// MostPopular returns the first article with the highest view count.
// ok is false for an empty collection.
func MostPopular(articles []models.Article) (models.Article, bool) {
	if len(articles) == 0 {
		return models.Article{}, false
	}
	best := 0
	for i := 1; i < len(articles); i++ {
		if articles[i].Views > articles[best].Views {
			best = i
		}
	}
	return articles[best], true
}
