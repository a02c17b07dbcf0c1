package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"articledash/internal/config"
	"articledash/internal/dashboard"
	"articledash/internal/db"
	"articledash/internal/metrics"
	"articledash/internal/server"
	"articledash/internal/source"
	"articledash/internal/store"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "server",
		Short:        "Article dashboard server",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	root.AddCommand(newServeCmd(), newCheckCmd(), newSeedCmd())
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Load the articles and serve the dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func newCheckCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate an article document without serving it",
		RunE: func(cmd *cobra.Command, args []string) error {
			articles, err := source.Load(cmd.Context(), &source.FileSource{Path: file}, 0)
			if err != nil {
				return err
			}
			s := store.New(articles)
			fmt.Fprintf(cmd.OutOrStdout(), "%d articles, %d categories, %d views\n", s.Len(), len(s.Categories()), s.TotalViews())
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "Articles.json", "article document to validate")
	return cmd
}

func newSeedCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load an article document into Postgres",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			setupLogger(cfg)
			ctx := cmd.Context()

			articles, err := source.Load(ctx, &source.FileSource{Path: file}, cfg.LoadTimeout)
			if err != nil {
				return err
			}

			database, err := openDatabase(ctx, cfg)
			if err != nil {
				return err
			}
			defer database.Close()

			n, err := database.SeedArticles(ctx, articles)
			if err != nil {
				return err
			}
			slog.Info("seeded articles", "count", n, "file", file)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "Articles.json", "article document to import")
	return cmd
}

func runServe(ctx context.Context) error {
	cfg := config.Load()
	setupLogger(cfg)

	yamlCfg, err := config.LoadYAMLConfig()
	if err != nil {
		return fmt.Errorf("failed to load config file: %w", err)
	}
	projector := newProjector(cfg, yamlCfg)

	ctrl := loadArticles(ctx, cfg, projector)
	metrics.Init(ctrl.Store(), ctrl.LoadError() != nil)

	srv := server.New(cfg)
	srv.RegisterRoutes(ctrl)

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("server error", "error", err)
		}
	}()

	slog.Info("server started", "addr", cfg.ServerAddr, "env", cfg.Env)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	if err := srv.Shutdown(); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	slog.Info("server exited")
	return nil
}

// loadArticles opens the database when the articles live there and loads
// them once. The pool is closed afterwards since the store owns the articles
// from then on. An unreachable database is a load failure like any other.
func loadArticles(ctx context.Context, cfg *config.Config, projector *dashboard.Projector) *dashboard.Controller {
	if !cfg.UsesPostgres() {
		return loadController(ctx, cfg, nil, projector)
	}

	database, err := openDatabase(ctx, cfg)
	if err != nil {
		slog.Error("error loading articles", "source", source.KindPostgres, "error", err)
		return dashboard.NewFailedController(projector, err)
	}
	defer database.Close()

	return loadController(ctx, cfg, database, projector)
}

// loadController loads the articles once. A failed load is logged and yields
// a controller that serves an empty dashboard with an error banner.
func loadController(ctx context.Context, cfg *config.Config, database *db.DB, projector *dashboard.Projector) *dashboard.Controller {
	src, err := source.New(source.Options{
		Kind:    cfg.ArticlesSource,
		Path:    cfg.ArticlesFile,
		URL:     cfg.ArticlesURL,
		Timeout: cfg.LoadTimeout,
		DB:      database,
	})
	if err != nil {
		slog.Error("error loading articles", "error", err)
		return dashboard.NewFailedController(projector, err)
	}

	articles, err := source.Load(ctx, src, cfg.LoadTimeout)
	if err != nil {
		slog.Error("error loading articles", "source", src.String(), "error", err)
		return dashboard.NewFailedController(projector, err)
	}

	s := store.New(articles)
	slog.Info("articles loaded", "source", src.String(), "count", s.Len(), "categories", len(s.Categories()))
	return dashboard.NewController(s, projector)
}

// openDatabase connects within LOAD_TIMEOUT and applies the migrations.
func openDatabase(ctx context.Context, cfg *config.Config) (*db.DB, error) {
	connectCtx := ctx
	if cfg.LoadTimeout > 0 {
		var cancel context.CancelFunc
		connectCtx, cancel = context.WithTimeout(ctx, cfg.LoadTimeout)
		defer cancel()
	}

	database, err := db.New(connectCtx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	slog.Info("migrations completed successfully")
	return database, nil
}

func setupLogger(cfg *config.Config) {
	var handler slog.Handler
	if cfg.IsDev() {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	slog.SetDefault(slog.New(handler))
}

// newProjector applies the env settings and the optional category config.
func newProjector(cfg *config.Config, yamlCfg *config.YAMLConfig) *dashboard.Projector {
	projector := dashboard.NewProjector(categoryStyles(yamlCfg))
	projector.WordsPerMinute = cfg.WordsPerMinute
	projector.DefaultTheme = cfg.DefaultTheme
	if yamlCfg != nil && yamlCfg.Defaults.Badge != "" {
		projector.DefaultBadge = yamlCfg.Defaults.Badge
	}
	return projector
}

func categoryStyles(yamlCfg *config.YAMLConfig) map[string]dashboard.CategoryStyle {
	if yamlCfg == nil {
		return nil
	}
	styles := make(map[string]dashboard.CategoryStyle, len(yamlCfg.Categories))
	for _, c := range yamlCfg.Categories {
		styles[c.Name] = dashboard.CategoryStyle{Label: c.Label, Badge: c.Badge}
	}
	return styles
}
