// Package main is the entry point for the Rich Grad Student API server.
// It loads configuration, connects to services, rebuilds the search index,
// sets up routing, and starts the HTTP server with graceful shutdown.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"richgradstudent/internal/cache"
	"richgradstudent/internal/config"
	"richgradstudent/internal/database"
	"richgradstudent/internal/handlers"
	"richgradstudent/internal/models"
	"richgradstudent/internal/recommend"
	"richgradstudent/internal/router"
	"richgradstudent/internal/search"
	"richgradstudent/internal/storage"
	"richgradstudent/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"site", cfg.SiteURL,
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey. The cache is optional: without it every derived
	// document is rebuilt per request, which is slow but correct.
	var docCache *cache.DocCache
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Warn("valkey unavailable, derived-document caching disabled", "error", err)
	} else {
		defer valkeyClient.Close()
		docCache = cache.NewDocCache(valkeyClient, cache.DefaultDocTTL)
	}

	// Initialize data stores.
	contentStore := store.NewContentStore(db)
	cardStore := store.NewCardStore(db)
	subscriberStore := store.NewSubscriberStore(db)

	// Open the bleve search index and rebuild it from the content table so
	// it never drifts from the system of record.
	searchIndex, err := search.Open(cfg.SearchIndexPath)
	if err != nil {
		slog.Error("failed to open search index", "error", err, "path", cfg.SearchIndexPath)
		os.Exit(1)
	}
	defer searchIndex.Close()

	if err := rebuildSearchIndex(searchIndex, contentStore); err != nil {
		slog.Error("failed to rebuild search index", "error", err)
		os.Exit(1)
	}

	// Connect to S3-compatible object storage (optional — the service works
	// without it, images just aren't mirrored).
	storageClient, err := storage.New(
		cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
		cfg.S3Bucket, cfg.S3PublicURL,
	)
	if err != nil {
		slog.Error("failed to initialize S3 storage", "error", err)
		os.Exit(1)
	}
	if storageClient != nil {
		slog.Info("s3 storage connected", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)
	} else {
		slog.Warn("s3 storage not configured, image mirroring disabled")
	}

	// Recommendation engine over the content store.
	engine := recommend.New(contentStore)

	api := handlers.NewAPI(contentStore, cardStore, subscriberStore, engine, searchIndex, docCache, storageClient, cfg.SiteURL)

	r, limiter := router.New(api, cfg.WebhookSecret)
	defer limiter.Stop()

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}

// rebuildSearchIndex batch-indexes every content row.
func rebuildSearchIndex(idx *search.Index, contents *store.ContentStore) error {
	var all []models.Content
	for _, typ := range []models.ContentType{
		models.ContentTypeArticle,
		models.ContentTypePost,
		models.ContentTypeCreditCard,
	} {
		items, err := contents.ListByType(typ)
		if err != nil {
			return err
		}
		all = append(all, items...)
	}
	if err := idx.IndexAll(all); err != nil {
		return err
	}
	count, err := idx.Count()
	if err != nil {
		return err
	}
	slog.Info("search index rebuilt", "documents", count)
	return nil
}
