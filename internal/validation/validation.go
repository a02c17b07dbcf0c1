package validation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"articledash/internal/models"
)

// ErrInvalidRecord is wrapped by every RecordError.
var ErrInvalidRecord = errors.New("invalid article record")

// RecordError reports which record and field failed validation.
type RecordError struct {
	Index int
	Field string
	Msg   string
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("article %d: %s %s", e.Index, e.Field, e.Msg)
}

func (e *RecordError) Unwrap() error {
	return ErrInvalidRecord
}

// Accepted date layouts, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
}

// ParseDate parses an ISO 8601 date or timestamp.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// ValidateRecord checks one source record and converts it to an Article.
// Records without an id get a fresh one.
func ValidateRecord(index int, rec models.ArticleRecord) (models.Article, error) {
	fail := func(field, msg string) (models.Article, error) {
		return models.Article{}, &RecordError{Index: index, Field: field, Msg: msg}
	}

	if rec.Title == nil || strings.TrimSpace(*rec.Title) == "" {
		return fail("title", "is required")
	}
	if rec.Category == nil || strings.TrimSpace(*rec.Category) == "" {
		return fail("category", "is required")
	}
	if !ValidateCategory(*rec.Category) {
		return fail("category", "must not be the reserved name \"all\"")
	}
	if rec.Content == nil || strings.TrimSpace(*rec.Content) == "" {
		return fail("content", "is required")
	}
	if rec.Date == nil {
		return fail("date", "is required")
	}
	date, err := ParseDate(*rec.Date)
	if err != nil {
		return fail("date", "must be an ISO 8601 date")
	}
	if rec.WordCount == nil {
		return fail("wordCount", "is required")
	}
	if *rec.WordCount <= 0 {
		return fail("wordCount", "must be positive")
	}
	if rec.Views == nil {
		return fail("views", "is required")
	}
	if *rec.Views < 0 {
		return fail("views", "must not be negative")
	}

	id := uuid.New()
	if rec.ID != nil && *rec.ID != uuid.Nil {
		id = *rec.ID
	}

	return models.Article{
		ID:        id,
		Title:     *rec.Title,
		Category:  *rec.Category,
		Content:   *rec.Content,
		Date:      date,
		WordCount: *rec.WordCount,
		Views:     *rec.Views,
	}, nil
}

// ValidateDocument validates every record, stopping at the first failure.
// Ids must be unique across the document.
func ValidateDocument(doc models.ArticleDocument) ([]models.Article, error) {
	articles := make([]models.Article, 0, len(doc.Articles))
	seen := make(map[uuid.UUID]int, len(doc.Articles))
	for i, rec := range doc.Articles {
		a, err := ValidateRecord(i, rec)
		if err != nil {
			return nil, err
		}
		if first, ok := seen[a.ID]; ok {
			return nil, &RecordError{Index: i, Field: "id", Msg: fmt.Sprintf("duplicates article %d", first)}
		}
		seen[a.ID] = i
		articles = append(articles, a)
	}
	return articles, nil
}

// ValidateCategory checks a category label is usable. "all" is reserved for the nav.
func ValidateCategory(category string) bool {
	category = strings.TrimSpace(category)
	if category == "" || len(category) > 100 {
		return false
	}
	return category != models.CategoryAll
}
