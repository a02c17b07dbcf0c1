package dashboard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"articledash/internal/models"
)

func TestProjector_Card(t *testing.T) {
	p := NewProjector(nil)
	a := article("Long read", "Tech", "2024-01-01", 5, 201)
	a.Content = strings.Repeat("x", 150)

	card := p.Card(a, GridExcerptLen, "en-US")
	assert.Equal(t, a.ID, card.ID)
	assert.Equal(t, "Tech", card.CategoryLabel)
	assert.Equal(t, "bg-primary", card.Badge)
	assert.Equal(t, strings.Repeat("x", 100)+"...", card.Excerpt)
	assert.Equal(t, "January 1, 2024", card.Published)
	assert.Equal(t, 2, card.ReadingMinutes)
	assert.Equal(t, int64(5), card.Views)
}

func TestProjector_CardShortContentHasNoEllipsis(t *testing.T) {
	p := NewProjector(nil)
	a := article("Short", "Tech", "2024-01-01", 0, 150)
	a.Content = "tiny"

	card := p.Card(a, GridExcerptLen, "")
	assert.Equal(t, "tiny", card.Excerpt)
	assert.Equal(t, 1, card.ReadingMinutes)
}

func TestProjector_CategoryStyles(t *testing.T) {
	p := NewProjector(map[string]CategoryStyle{
		"Tech": {Label: "Technology", Badge: "bg-success"},
	})
	a := article("A", "Tech", "2024-01-01", 0, 100)

	card := p.Card(a, GridExcerptLen, "")
	assert.Equal(t, "Technology", card.CategoryLabel)
	assert.Equal(t, "bg-success", card.Badge)

	nav := p.Nav([]string{"Tech", "Life"}, "Life")
	require.Len(t, nav, 3)
	assert.Equal(t, NavEntry{Name: models.CategoryAll, Label: "All", Active: false}, nav[0])
	assert.Equal(t, NavEntry{Name: "Tech", Label: "Technology", Active: false}, nav[1])
	assert.Equal(t, NavEntry{Name: "Life", Label: "Life", Active: true}, nav[2])
}

func TestProjector_DefaultBadgeForUnlistedCategory(t *testing.T) {
	p := NewProjector(map[string]CategoryStyle{
		"Tech": {Label: "Technology", Badge: "bg-success"},
	})
	p.DefaultBadge = "bg-secondary"

	life := p.Card(article("B", "Life", "2024-01-01", 0, 100), GridExcerptLen, "")
	assert.Equal(t, "Life", life.CategoryLabel)
	assert.Equal(t, "bg-secondary", life.Badge)

	tech := p.Card(article("A", "Tech", "2024-01-01", 0, 100), GridExcerptLen, "")
	assert.Equal(t, "bg-success", tech.Badge, "a category's own badge wins")

	p.DefaultBadge = ""
	assert.Equal(t, DefaultBadge, p.Card(article("C", "Life", "2024-01-01", 0, 100), GridExcerptLen, "").Badge)
}

func TestProjector_Popular(t *testing.T) {
	p := NewProjector(nil)
	assert.Nil(t, p.Popular(nil, ""), "empty collection renders no panel")

	articles := exampleArticles()
	articles[1].Content = strings.Repeat("y", 250)
	popular := p.Popular(articles, "")
	require.NotNil(t, popular)
	assert.Equal(t, "B", popular.Title)
	assert.Equal(t, strings.Repeat("y", 200)+"...", popular.Excerpt)
	assert.Equal(t, int64(10), popular.Views)
}

func TestProjector_Detail(t *testing.T) {
	p := NewProjector(nil)
	a := article("A", "Tech", "2024-01-01", 5, 100)
	a.Content = "Full text of the article."

	d := p.Detail(a, "")
	assert.Equal(t, "A", d.Title)
	assert.Empty(t, d.Excerpt)
	assert.Contains(t, string(d.Body), "Full text of the article.")
	assert.Equal(t, 1, d.ReadingMinutes)
}

func TestProjector_Page(t *testing.T) {
	p := NewProjector(nil)
	articles := exampleArticles()

	page := p.Page(articles, []string{"Tech", "Life"}, State{Sort: models.SortByViews})
	require.Len(t, page.Cards, 2)
	assert.Equal(t, "B", page.Cards[0].Title)
	assert.Equal(t, "A", page.Cards[1].Title)
	require.NotNil(t, page.Popular)
	assert.Equal(t, "B", page.Popular.Title)
	assert.Equal(t, models.SortByViews, page.Sort)
	assert.Equal(t, models.CategoryAll, page.Category)
	assert.Equal(t, models.ThemeLight, page.Theme)
	assert.True(t, page.Categories[0].Active)
	assert.True(t, page.SortOptions[1].Selected)
	assert.False(t, page.SortOptions[0].Selected)

	filtered := p.Page(articles, []string{"Tech", "Life"}, State{Category: "Tech"})
	require.Len(t, filtered.Cards, 1)
	assert.Equal(t, "A", filtered.Cards[0].Title)
	require.NotNil(t, filtered.Popular)
	assert.Equal(t, "B", filtered.Popular.Title, "popular panel ignores the filter")

	activeCount := 0
	for _, n := range filtered.Categories {
		if n.Active {
			activeCount++
			assert.Equal(t, "Tech", n.Name)
		}
	}
	assert.Equal(t, 1, activeCount, "exactly one nav entry is active")
}

func TestProjector_PageEmpty(t *testing.T) {
	p := NewProjector(nil)
	page := p.Page(nil, nil, State{})
	assert.Empty(t, page.Cards)
	assert.Nil(t, page.Popular)
	require.Len(t, page.Categories, 1)
	assert.Equal(t, models.CategoryAll, page.Categories[0].Name)
}
