package models

import (
	"time"

	"github.com/google/uuid"
)

// Sort key constants
const (
	SortByDate  = "date"
	SortByViews = "views"
)

// CategoryAll selects every article.
const CategoryAll = "all"

// Theme constants
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Article is a single content record with a mutable view counter.
// ID comes from the record when present, otherwise it is assigned on load.
type Article struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Content   string    `json:"content"`
	Date      time.Time `json:"date"`
	WordCount int       `json:"word_count"`
	Views     int64     `json:"views"`
}

// ArticleRecord is the shape of one entry in the source document.
// Pointer fields distinguish a missing key from a zero value.
type ArticleRecord struct {
	ID        *uuid.UUID `json:"id,omitempty"`
	Title     *string    `json:"title"`
	Category  *string    `json:"category"`
	Content   *string    `json:"content"`
	Date      *string    `json:"date"`
	WordCount *int       `json:"wordCount"`
	Views     *int64     `json:"views"`
}

// ArticleDocument is the top-level source document.
type ArticleDocument struct {
	Articles []ArticleRecord `json:"articles"`
}
