// ABOUTME: Storage interfaces for persisting domain entities
// ABOUTME: Defines contracts for the durable news store backends

package interfaces

import (
	"context"

	"football-news-api/core/domain"
)

// NewsStorage defines the interface for the durable news store.
// Implementations can be Supabase REST or a direct Postgres connection.
type NewsStorage interface {
	// UpsertArticles writes articles into the canonical table.
	// The conflict target is the article title; last write wins per title.
	UpsertArticles(ctx context.Context, articles []domain.Article) error

	// LatestScraped returns the most recent pre-scraped rows,
	// ordered by scrape time descending, at most limit rows.
	LatestScraped(ctx context.Context, limit int) ([]domain.ScrapedArticle, error)

	// SaveScraped writes rows into the pre-scraped table,
	// keyed by source URL so re-crawls do not duplicate stories.
	SaveScraped(ctx context.Context, articles []domain.ScrapedArticle) error
}
