// Package testutil provides test utilities and helpers.
package testutil

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"articledash/internal/dashboard"
	"articledash/internal/models"
	"articledash/internal/store"
)

// Fixed IDs for the sample articles so tests can address them directly.
var (
	AlphaID = uuid.MustParse("0b7f6a52-3f0e-4c6a-9d0e-1a2b3c4d5e01")
	BetaID  = uuid.MustParse("0b7f6a52-3f0e-4c6a-9d0e-1a2b3c4d5e02")
)

// Date parses a YYYY-MM-DD date or fails the test.
func Date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

// SampleArticles returns two articles: Alpha (Tech, older, 5 views) and
// Beta (Life, newer, 10 views).
func SampleArticles(t *testing.T) []models.Article {
	t.Helper()
	return []models.Article{
		{
			ID:        AlphaID,
			Title:     "Alpha",
			Category:  "Tech",
			Content:   "Alpha **body** text.",
			Date:      Date(t, "2024-01-01"),
			WordCount: 100,
			Views:     5,
		},
		{
			ID:        BetaID,
			Title:     "Beta",
			Category:  "Life",
			Content:   "Beta body text.",
			Date:      Date(t, "2024-02-01"),
			WordCount: 300,
			Views:     10,
		},
	}
}

// NewController returns a controller over the sample articles with default styling.
func NewController(t *testing.T) *dashboard.Controller {
	t.Helper()
	return dashboard.NewController(store.New(SampleArticles(t)), dashboard.NewProjector(nil))
}
