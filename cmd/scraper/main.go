// ABOUTME: One-shot scraper entry point filling the pre-scraped articles table
// ABOUTME: Intended to run on a schedule (cron, systemd timer) alongside the API

package main

import (
	"context"
	"log"
	"time"

	"football-news-api/core/interfaces"
	"football-news-api/core/scraper"
	stdhttp "football-news-api/infrastructure/http/standard"
	logrusim "football-news-api/infrastructure/logger/logrus"
	"football-news-api/infrastructure/storage/postgres"
	"football-news-api/infrastructure/storage/supabase"
	"football-news-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logrusim.NewLogger(cfg.LogLevel)

	storage, err := buildStorage(cfg)
	if err != nil {
		log.Fatalf("Scraper requires a storage backend: %v", err)
	}

	deps := interfaces.Dependencies{
		HTTPClient: stdhttp.NewStandardHTTPClient(30 * time.Second),
		Logger:     logger,
		Storage:    storage,
	}

	service := scraper.NewService(deps, scraper.Config{
		Sites:      scraperSites(cfg),
		MaxPerSite: cfg.Scraper.MaxPerSite,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	count, err := service.Run(ctx)
	if err != nil {
		log.Fatalf("Scrape run failed: %v", err)
	}

	logger.Info("scrape run complete", map[string]interface{}{
		"articles": count,
	})
}

func buildStorage(cfg *config.Config) (interfaces.NewsStorage, error) {
	if cfg.Storage.Type == "postgres" {
		return postgres.NewStorage(context.Background(), cfg.Storage.Postgres.DSN)
	}
	return supabase.NewStorage(cfg.Storage.Supabase.URL, cfg.Storage.Supabase.Key)
}

func scraperSites(cfg *config.Config) []scraper.Site {
	sites := make([]scraper.Site, 0, len(cfg.Scraper.Sites))
	for _, s := range cfg.Scraper.Sites {
		sites = append(sites, scraper.Site{
			Name:         s.Name,
			URL:          s.URL,
			LinkSelector: s.LinkSelector,
		})
	}
	return sites
}
