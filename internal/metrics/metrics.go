package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"articledash/internal/store"
)

// Action label values
const (
	ActionSortChanged     = "sort_changed"
	ActionCategoryClicked = "category_clicked"
	ActionCardClicked     = "card_clicked"
	ActionReadMore        = "read_more"
	ActionThemeToggled    = "theme_toggled"
)

var (
	articleViewsDesc = prometheus.NewDesc(
		"articledash_article_views_total",
		"Current view count per article",
		[]string{"id", "title", "category"},
		nil,
	)
	articlesLoadedDesc = prometheus.NewDesc(
		"articledash_articles_loaded",
		"Number of articles loaded at startup",
		nil,
		nil,
	)
	loadFailedDesc = prometheus.NewDesc(
		"articledash_load_failed",
		"1 if the startup article load failed",
		nil,
		nil,
	)

	actionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "articledash_actions_total",
			Help: "Dashboard user actions by kind",
		},
		[]string{"action"},
	)
)

// ArticleCollector is a custom Prometheus collector that reads view counts
// from the store on each scrape.
type ArticleCollector struct {
	store      *store.Store
	loadFailed bool
}

// NewArticleCollector creates a collector over s.
func NewArticleCollector(s *store.Store, loadFailed bool) *ArticleCollector {
	return &ArticleCollector{store: s, loadFailed: loadFailed}
}

// Describe sends the metric descriptors to the channel.
func (c *ArticleCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- articleViewsDesc
	ch <- articlesLoadedDesc
	ch <- loadFailedDesc
}

// Collect emits one counter per article plus the load gauges.
func (c *ArticleCollector) Collect(ch chan<- prometheus.Metric) {
	articles := c.store.All()
	for _, a := range articles {
		ch <- prometheus.MustNewConstMetric(
			articleViewsDesc,
			prometheus.CounterValue,
			float64(a.Views),
			a.ID.String(),
			a.Title,
			a.Category,
		)
	}
	ch <- prometheus.MustNewConstMetric(articlesLoadedDesc, prometheus.GaugeValue, float64(len(articles)))

	failed := 0.0
	if c.loadFailed {
		failed = 1
	}
	ch <- prometheus.MustNewConstMetric(loadFailedDesc, prometheus.GaugeValue, failed)
}

var initOnce sync.Once

// Init registers the collectors with the default registry.
// Must be called once at startup.
func Init(s *store.Store, loadFailed bool) {
	initOnce.Do(func() {
		prometheus.MustRegister(NewArticleCollector(s, loadFailed))
		prometheus.MustRegister(actionsTotal)
	})
}

// RecordAction counts one user action.
func RecordAction(action string) {
	actionsTotal.WithLabelValues(action).Inc()
}
