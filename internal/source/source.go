// Package source loads the article collection from where it is kept.
package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"articledash/internal/db"
	"articledash/internal/models"
	"articledash/internal/validation"
)

// Source kinds
const (
	KindFile     = "file"
	KindURL      = "url"
	KindPostgres = "postgres"
)

// ErrUnknownSource is returned for an unsupported source kind.
var ErrUnknownSource = errors.New("unknown article source")

// Source produces the validated article collection.
type Source interface {
	Load(ctx context.Context) ([]models.Article, error)
	String() string
}

// Decode reads an article document and validates every record.
func Decode(r io.Reader) ([]models.Article, error) {
	var doc models.ArticleDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse article document: %w", err)
	}
	if doc.Articles == nil {
		return nil, fmt.Errorf("article document has no %q key", "articles")
	}
	return validation.ValidateDocument(doc)
}

// FileSource reads the document from a local file.
type FileSource struct {
	Path string
}

// Load reads and validates the file.
func (s *FileSource) Load(ctx context.Context) ([]models.Article, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", s.Path, err)
	}
	defer f.Close()
	return Decode(f)
}

func (s *FileSource) String() string {
	return "file:" + s.Path
}

// URLSource fetches the document over HTTP.
type URLSource struct {
	URL    string
	Client *http.Client
}

// NewURLSource creates a URL source with a bounded client timeout.
func NewURLSource(url string, timeout time.Duration) *URLSource {
	return &URLSource{
		URL:    url,
		Client: &http.Client{Timeout: timeout},
	}
}

// Load fetches and validates the document.
func (s *URLSource) Load(ctx context.Context) ([]models.Article, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid articles URL: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "ArticleDash/1.0")

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch articles: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch articles: unexpected status %d", resp.StatusCode)
	}
	return Decode(resp.Body)
}

func (s *URLSource) String() string {
	return "url:" + s.URL
}

// PostgresSource reads the articles table.
type PostgresSource struct {
	DB *db.DB
}

// Load reads every row and validates it like a document record.
func (s *PostgresSource) Load(ctx context.Context) ([]models.Article, error) {
	records, err := s.DB.ListArticleRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query articles: %w", err)
	}
	return validation.ValidateDocument(models.ArticleDocument{Articles: records})
}

func (s *PostgresSource) String() string {
	return KindPostgres
}

// Options selects and configures a source.
type Options struct {
	Kind    string
	Path    string
	URL     string
	Timeout time.Duration
	DB      *db.DB
}

// New builds the source named by opts.Kind.
func New(opts Options) (Source, error) {
	switch opts.Kind {
	case "", KindFile:
		return &FileSource{Path: opts.Path}, nil
	case KindURL:
		if opts.URL == "" {
			return nil, errors.New("ARTICLES_URL is required for the url source")
		}
		return NewURLSource(opts.URL, opts.Timeout), nil
	case KindPostgres:
		if opts.DB == nil {
			return nil, errors.New("a database connection is required for the postgres source")
		}
		return &PostgresSource{DB: opts.DB}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, opts.Kind)
	}
}

// Load runs src once under timeout.
func Load(ctx context.Context, src Source, timeout time.Duration) ([]models.Article, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	articles, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load from %s: %w", src, err)
	}
	return articles, nil
}
