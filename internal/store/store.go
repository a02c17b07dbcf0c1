// Package store holds the session's in-memory article collection.
package store

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"articledash/internal/models"
)

// ErrArticleNotFound is returned when an id does not name a loaded article.
var ErrArticleNotFound = errors.New("article not found")

// Store owns the loaded articles. Order is the load order and never changes.
type Store struct {
	mu       sync.RWMutex
	articles []models.Article
	index    map[uuid.UUID]int
}

// New creates a store from already validated articles. The slice is copied.
// An article whose id was already seen is dropped so every id names exactly
// one article.
func New(articles []models.Article) *Store {
	s := &Store{
		articles: make([]models.Article, 0, len(articles)),
		index:    make(map[uuid.UUID]int, len(articles)),
	}
	for _, a := range articles {
		if _, dup := s.index[a.ID]; dup {
			continue
		}
		s.index[a.ID] = len(s.articles)
		s.articles = append(s.articles, a)
	}
	return s
}

// All returns a snapshot of every article in load order.
func (s *Store) All() []models.Article {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Article, len(s.articles))
	copy(out, s.articles)
	return out
}

// Len returns the number of loaded articles.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.articles)
}

// Get returns a copy of the article with the given id.
func (s *Store) Get(id uuid.UUID) (models.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return models.Article{}, ErrArticleNotFound
	}
	return s.articles[i], nil
}

// IncrementViews adds one view to the article and returns its new state.
func (s *Store) IncrementViews(id uuid.UUID) (models.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return models.Article{}, ErrArticleNotFound
	}
	s.articles[i].Views++
	return s.articles[i], nil
}

// Categories returns the distinct categories in first-seen order.
func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	var categories []string
	for _, a := range s.articles {
		if _, ok := seen[a.Category]; ok {
			continue
		}
		seen[a.Category] = struct{}{}
		categories = append(categories, a.Category)
	}
	return categories
}

// TotalViews sums the view counters of every article.
func (s *Store) TotalViews() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total int64
	for _, a := range s.articles {
		total += a.Views
	}
	return total
}
