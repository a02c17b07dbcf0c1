package dashboard

import (
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"articledash/internal/models"
)

func article(title, category, date string, views int64, words int) models.Article {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return models.Article{
		ID:        uuid.New(),
		Title:     title,
		Category:  category,
		Content:   title + " body",
		Date:      d,
		WordCount: words,
		Views:     views,
	}
}

func titles(articles []models.Article) []string {
	out := make([]string, len(articles))
	for i, a := range articles {
		out[i] = a.Title
	}
	return out
}

func exampleArticles() []models.Article {
	return []models.Article{
		article("A", "Tech", "2024-01-01", 5, 100),
		article("B", "Life", "2024-02-01", 10, 300),
	}
}

func randomArticles(r *rand.Rand, n int) []models.Article {
	categories := []string{"Tech", "Life", "Sport"}
	out := make([]models.Article, n)
	for i := range out {
		out[i] = models.Article{
			ID:        uuid.New(),
			Title:     uuid.NewString(),
			Category:  categories[r.Intn(len(categories))],
			Date:      time.Date(2020+r.Intn(5), time.Month(1+r.Intn(12)), 1+r.Intn(28), 0, 0, 0, 0, time.UTC),
			WordCount: 1 + r.Intn(2000),
			Views:     int64(r.Intn(20)),
		}
	}
	return out
}

func TestSort_ExampleCollection(t *testing.T) {
	articles := exampleArticles()
	assert.Equal(t, []string{"B", "A"}, titles(Sort(articles, models.SortByViews)))
	assert.Equal(t, []string{"B", "A"}, titles(Sort(articles, models.SortByDate)))
}

func TestSort_ViewsNonIncreasing(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for round := 0; round < 50; round++ {
		sorted := Sort(randomArticles(r, 1+r.Intn(30)), models.SortByViews)
		for i := 0; i+1 < len(sorted); i++ {
			require.GreaterOrEqual(t, sorted[i].Views, sorted[i+1].Views)
		}
	}
}

func TestSort_DateNonIncreasing(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for round := 0; round < 50; round++ {
		sorted := Sort(randomArticles(r, 1+r.Intn(30)), models.SortByDate)
		for i := 0; i+1 < len(sorted); i++ {
			require.False(t, sorted[i].Date.Before(sorted[i+1].Date), "dates must not increase")
		}
	}
}

func TestSort_StableOnTies(t *testing.T) {
	articles := []models.Article{
		article("first", "Tech", "2024-01-01", 3, 100),
		article("second", "Tech", "2024-01-01", 3, 100),
		article("third", "Tech", "2024-01-01", 3, 100),
	}
	assert.Equal(t, []string{"first", "second", "third"}, titles(Sort(articles, models.SortByViews)))
	assert.Equal(t, []string{"first", "second", "third"}, titles(Sort(articles, models.SortByDate)))
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	articles := []models.Article{
		article("old", "Tech", "2020-01-01", 1, 100),
		article("new", "Tech", "2024-01-01", 9, 100),
	}
	_ = Sort(articles, models.SortByViews)
	_ = Sort(articles, models.SortByDate)
	assert.Equal(t, []string{"old", "new"}, titles(articles))
}

func TestSort_UnknownKeyOrdersByDate(t *testing.T) {
	articles := exampleArticles()
	assert.Equal(t, titles(Sort(articles, models.SortByDate)), titles(Sort(articles, "title")))
}

func TestFilter(t *testing.T) {
	articles := []models.Article{
		article("A", "Tech", "2024-01-01", 5, 100),
		article("B", "Life", "2024-02-01", 10, 300),
		article("C", "Tech", "2023-01-01", 1, 100),
	}

	tests := []struct {
		name     string
		category string
		want     []string
	}{
		{"all", models.CategoryAll, []string{"A", "B", "C"}},
		{"empty means all", "", []string{"A", "B", "C"}},
		{"tech keeps order", "Tech", []string{"A", "C"}},
		{"life", "Life", []string{"B"}},
		{"no matches", "Sport", []string{}},
		{"case sensitive", "tech", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, titles(Filter(articles, tt.category)))
		})
	}
}

func TestFilter_EmptyCollection(t *testing.T) {
	assert.Empty(t, Filter(nil, models.CategoryAll))
	assert.Empty(t, Filter(nil, "Tech"))
}

func TestDerive(t *testing.T) {
	articles := []models.Article{
		article("A", "Tech", "2024-01-01", 5, 100),
		article("B", "Life", "2024-02-01", 10, 300),
		article("C", "Tech", "2023-01-01", 7, 100),
	}
	got := Derive(articles, State{Sort: models.SortByViews, Category: "Tech"})
	assert.Equal(t, []string{"C", "A"}, titles(got))
}

func TestMostPopular(t *testing.T) {
	_, ok := MostPopular(nil)
	assert.False(t, ok, "empty collection has no most popular article")

	top, ok := MostPopular(exampleArticles())
	require.True(t, ok)
	assert.Equal(t, "B", top.Title)

	tied := []models.Article{
		article("first", "Tech", "2024-01-01", 4, 100),
		article("second", "Tech", "2024-01-01", 4, 100),
	}
	top, _ = MostPopular(tied)
	assert.Equal(t, "first", top.Title, "ties go to the earlier article")
}

func TestState_Normalize(t *testing.T) {
	s := State{Sort: "bogus", Theme: "purple"}.Normalize(models.ThemeLight)
	assert.Equal(t, models.SortByDate, s.Sort)
	assert.Equal(t, models.CategoryAll, s.Category)
	assert.Equal(t, models.ThemeLight, s.Theme)

	s = State{Sort: models.SortByViews, Category: "Tech", Theme: models.ThemeDark}.Normalize(models.ThemeLight)
	assert.Equal(t, State{Sort: models.SortByViews, Category: "Tech", Theme: models.ThemeDark}, s)
}
