package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"articledash/internal/models"
)

// ListArticleRecords returns every article row in load order as source records,
// so they pass through the same validation as the JSON document.
func (d *DB) ListArticleRecords(ctx context.Context) ([]models.ArticleRecord, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT id, title, category, content, to_char(published, 'YYYY-MM-DD'), word_count, views
		FROM articles
		ORDER BY position, created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.ArticleRecord
	for rows.Next() {
		var a models.Article
		var date string
		if err := rows.Scan(&a.ID, &a.Title, &a.Category, &a.Content, &date, &a.WordCount, &a.Views); err != nil {
			return nil, err
		}
		records = append(records, models.ArticleRecord{
			ID:        &a.ID,
			Title:     &a.Title,
			Category:  &a.Category,
			Content:   &a.Content,
			Date:      &date,
			WordCount: &a.WordCount,
			Views:     &a.Views,
		})
	}
	return records, rows.Err()
}

// SeedArticles inserts validated articles, keeping their order. Articles that
// already exist (same title and date) are updated in place, so seeding twice
// is harmless. Returns the number of rows written.
func (d *DB) SeedArticles(ctx context.Context, articles []models.Article) (int, error) {
	query := `
		INSERT INTO articles (id, title, category, content, published, word_count, views, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (title, published) DO UPDATE
		SET category = EXCLUDED.category,
		    content = EXCLUDED.content,
		    word_count = EXCLUDED.word_count,
		    views = EXCLUDED.views,
		    position = EXCLUDED.position
	`

	batch := &pgx.Batch{}
	for i, a := range articles {
		batch.Queue(query, a.ID, a.Title, a.Category, a.Content, a.Date, a.WordCount, a.Views, i)
	}

	results := d.Pool.SendBatch(ctx, batch)
	defer results.Close()

	for i := range articles {
		if _, err := results.Exec(); err != nil {
			return i, fmt.Errorf("failed to seed article %q: %w", articles[i].Title, err)
		}
	}
	return len(articles), nil
}

// CountArticles returns the number of stored articles.
func (d *DB) CountArticles(ctx context.Context) (int, error) {
	var n int
	err := d.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM articles`).Scan(&n)
	return n, err
}
