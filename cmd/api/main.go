// ABOUTME: Main entry point for the football news API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"football-news-api/api"
	"football-news-api/api/handlers"
	"football-news-api/core/interfaces"
	"football-news-api/core/news"
	"football-news-api/infrastructure/cache/memory"
	"football-news-api/infrastructure/cache/redis"
	"football-news-api/infrastructure/cache/sqlite"
	stdhttp "football-news-api/infrastructure/http/standard"
	logrusim "football-news-api/infrastructure/logger/logrus"
	"football-news-api/infrastructure/storage/postgres"
	"football-news-api/infrastructure/storage/supabase"
	"football-news-api/pkg/config"
	"football-news-api/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logrusim.NewLogger(cfg.LogLevel)
	logger.Info("starting football news API", map[string]interface{}{
		"addr":       cfg.Server.Addr,
		"cache_type": cfg.Cache.Type,
		"storage":    cfg.Storage.Type,
	})

	cache := buildCache(cfg, logger)
	storage := buildStorage(cfg, logger)

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: stdhttp.NewStandardHTTPClient(30 * time.Second),
		Logger:     logger,
		Storage:    storage,
	}

	service := news.NewService(deps,
		news.Config{
			MaxArticles:   cfg.News.MaxArticles,
			SourceTimeout: time.Duration(cfg.News.SourceTimeoutSeconds) * time.Second,
		},
		news.NewSearchSource(deps, news.SearchConfig{
			APIKey:   cfg.News.Search.APIKey,
			Endpoint: cfg.News.Search.Endpoint,
			Queries:  cfg.News.Search.Queries,
			PageSize: cfg.News.Search.PageSize,
		}),
		news.NewRSSSource(deps, news.RSSConfig{
			Feeds:    rssFeeds(cfg),
			ProxyURL: cfg.News.RSS.ProxyURL,
			CacheTTL: time.Duration(cfg.News.RSS.CacheTTLSeconds) * time.Second,
		}),
		news.NewStoreSource(deps, news.StoreConfig{
			Limit: cfg.News.StoreLimit,
		}),
	)

	apiConfig := api.Config{
		Logger:     logger,
		RateLimit:  cfg.Server.RateLimit,
		RateWindow: time.Duration(cfg.Server.RateWindowSeconds) * time.Second,
	}

	if cfg.Metrics.Enabled {
		manager := metrics.NewManager()
		service.SetRecorder(manager)
		apiConfig.Metrics = manager.Handler()
	}

	router := api.NewRouter(apiConfig,
		handlers.NewNewsHandler(service, logger),
		handlers.NewHealthHandler(),
	)

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("server stopped", nil)
}

// buildCache selects the cache backend, falling back to memory when the
// configured backend cannot be reached.
func buildCache(cfg *config.Config, logger interfaces.Logger) interfaces.Cache {
	memoryExpiration := time.Duration(cfg.Cache.Memory.DefaultExpirationSeconds) * time.Second

	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("failed to create redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memory.NewMemoryCache(memoryExpiration)
		}
		logger.Info("using redis cache", map[string]interface{}{
			"address": cfg.Cache.Redis.Address,
		})
		return redisCache

	case "sqlite":
		sqliteCache, err := sqlite.NewSQLiteCache(cfg.Cache.SQLite.Path)
		if err != nil {
			logger.Error("failed to create sqlite cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memory.NewMemoryCache(memoryExpiration)
		}
		logger.Info("using sqlite cache", map[string]interface{}{
			"path": cfg.Cache.SQLite.Path,
		})
		return sqliteCache

	default:
		logger.Info("using memory cache", nil)
		return memory.NewMemoryCache(memoryExpiration)
	}
}

// buildStorage selects the news storage backend. A nil result means the
// service runs without persistence and the scraped source stays empty.
func buildStorage(cfg *config.Config, logger interfaces.Logger) interfaces.NewsStorage {
	switch cfg.Storage.Type {
	case "supabase":
		storage, err := supabase.NewStorage(cfg.Storage.Supabase.URL, cfg.Storage.Supabase.Key)
		if err != nil {
			logger.Error("failed to create supabase storage, continuing without persistence", map[string]interface{}{
				"error": err.Error(),
			})
			return nil
		}
		return storage

	case "postgres":
		storage, err := postgres.NewStorage(context.Background(), cfg.Storage.Postgres.DSN)
		if err != nil {
			logger.Error("failed to create postgres storage, continuing without persistence", map[string]interface{}{
				"error": err.Error(),
			})
			return nil
		}
		return storage

	default:
		return nil
	}
}

func rssFeeds(cfg *config.Config) []news.RSSFeed {
	feeds := make([]news.RSSFeed, 0, len(cfg.News.RSS.Feeds))
	for _, f := range cfg.News.RSS.Feeds {
		feeds = append(feeds, news.RSSFeed{Name: f.Name, URL: f.URL})
	}
	return feeds
}
