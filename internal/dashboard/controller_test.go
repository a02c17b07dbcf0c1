package dashboard

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"articledash/internal/models"
	"articledash/internal/store"
)

func newTestController(articles []models.Article) *Controller {
	return NewController(store.New(articles), NewProjector(nil))
}

func TestController_EndToEnd(t *testing.T) {
	articles := exampleArticles()
	a, b := articles[0], articles[1]
	c := newTestController(articles)

	state, page := c.SortChanged(State{}, models.SortByViews)
	assert.Equal(t, models.SortByViews, state.Sort)
	assert.Equal(t, []string{"B", "A"}, cardTitles(page.Cards))

	state, page = c.SortChanged(state, models.SortByDate)
	assert.Equal(t, []string{"B", "A"}, cardTitles(page.Cards))

	state, page = c.CategoryClicked(state, "Tech")
	assert.Equal(t, "Tech", state.Category)
	assert.Equal(t, []string{"A"}, cardTitles(page.Cards))
	require.NotNil(t, page.Popular)
	assert.Equal(t, "B", page.Popular.Title)

	for i := 1; i <= 6; i++ {
		detail, popular, err := c.CardClicked(a.ID, "")
		require.NoError(t, err)
		assert.Equal(t, int64(5+i), detail.Views)
		require.NotNil(t, popular)
		if i < 6 {
			assert.Equal(t, "B", popular.Title, "click %d", i)
		} else {
			assert.Equal(t, "A", popular.Title, "A leads after its sixth click")
			assert.Equal(t, int64(11), popular.Views)
		}
	}

	unchanged, err := c.Article(b.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), unchanged.Views)
}

func TestController_SortKeepsFilter(t *testing.T) {
	articles := []models.Article{
		article("A", "Tech", "2024-01-01", 5, 100),
		article("B", "Life", "2024-02-01", 10, 300),
		article("C", "Tech", "2023-01-01", 7, 100),
	}
	c := newTestController(articles)

	state, _ := c.CategoryClicked(State{}, "Tech")
	_, page := c.SortChanged(state, models.SortByViews)
	assert.Equal(t, []string{"C", "A"}, cardTitles(page.Cards))
}

func TestController_CardClickedUnknownArticle(t *testing.T) {
	c := newTestController(exampleArticles())
	_, _, err := c.CardClicked(uuid.New(), "")
	assert.ErrorIs(t, err, store.ErrArticleNotFound)
}

func TestController_ReadMoreDoesNotCount(t *testing.T) {
	articles := exampleArticles()
	c := newTestController(articles)

	d, err := c.ReadMore(articles[1].ID, "")
	require.NoError(t, err)
	assert.Equal(t, int64(10), d.Views)

	again, err := c.Article(articles[1].ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), again.Views)
}

func TestController_ThemeToggled(t *testing.T) {
	c := newTestController(nil)
	assert.Equal(t, models.ThemeDark, c.ThemeToggled(models.ThemeLight))
	assert.Equal(t, models.ThemeLight, c.ThemeToggled(models.ThemeDark))
	assert.Equal(t, models.ThemeDark, c.ThemeToggled(""), "missing theme counts as the default light theme")
}

func TestController_LoadFailure(t *testing.T) {
	c := NewFailedController(NewProjector(nil), errors.New("boom"))
	require.Error(t, c.LoadError())

	page := c.Page(State{})
	assert.NotEmpty(t, page.LoadError)
	assert.Empty(t, page.Cards)
	assert.Nil(t, page.Popular)
}

func TestController_ConcurrentClicks(t *testing.T) {
	articles := exampleArticles()
	c := newTestController(articles)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := c.CardClicked(articles[0].ID, "")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	a, err := c.Article(articles[0].ID)
	require.NoError(t, err)
	assert.Equal(t, int64(105), a.Views)
}

func cardTitles(cards []Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.Title
	}
	return out
}
