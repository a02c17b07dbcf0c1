package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string
	ViewsDir   string
	StaticDir  string

	// Article source
	ArticlesSource string        // "file", "url" or "postgres"
	ArticlesFile   string        // path for the file source
	ArticlesURL    string        // document URL for the url source
	LoadTimeout    time.Duration // bound on the single startup load

	// Database (postgres source and `seed`)
	DatabaseURL string

	// Redis backs the rate limiter when set
	RedisURL string

	// Cookies
	SessionSecret string // Used to derive the cookie encryption key (min 32 chars)

	// CORS
	CORSOrigins string // Comma-separated allowed origins

	// Rate limiting
	RateLimitMax int // requests per minute per IP

	// Dashboard
	WordsPerMinute int
	DefaultTheme   string

	// Site Branding
	SiteTitle   string // env: SITE_TITLE, default: "Article Dashboard"
	SiteTagline string // env: SITE_TAGLINE
	SiteFooter  string // env: SITE_FOOTER
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:            getEnv("ENV", "development"),
		ServerAddr:     getEnv("SERVER_ADDR", ":3000"),
		BaseURL:        getEnv("BASE_URL", "http://localhost:3000"),
		ViewsDir:       getEnv("VIEWS_DIR", "./views"),
		StaticDir:      getEnv("STATIC_DIR", "./static"),
		ArticlesSource: getEnv("ARTICLES_SOURCE", "file"),
		ArticlesFile:   getEnv("ARTICLES_FILE", "Articles.json"),
		ArticlesURL:    getEnv("ARTICLES_URL", ""),
		LoadTimeout:    getEnvDuration("LOAD_TIMEOUT", 10*time.Second),
		DatabaseURL:    getEnv("DATABASE_URL", "postgres://localhost:5432/articledash?sslmode=disable"),
		RedisURL:       getEnv("REDIS_URL", ""),
		SessionSecret:  getEnv("SESSION_SECRET", "change-me-in-production-min-32-chars"),
		CORSOrigins:    getEnv("CORS_ORIGINS", ""),
		RateLimitMax:   getEnvInt("RATE_LIMIT_MAX", 100),
		WordsPerMinute: getEnvInt("WORDS_PER_MINUTE", 200),
		DefaultTheme:   getEnv("DEFAULT_THEME", "light"),

		SiteTitle:   getEnv("SITE_TITLE", "Article Dashboard"),
		SiteTagline: getEnv("SITE_TAGLINE", "What people are reading"),
		SiteFooter:  getEnv("SITE_FOOTER", "Article Dashboard"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// UsesPostgres returns true if articles are read from the database.
func (c *Config) UsesPostgres() bool {
	return c.ArticlesSource == "postgres"
}
