// ABOUTME: Pre-scraped store source adapter reading the newest rows of the scraped table
// ABOUTME: Trusts the upstream scraper's filtering and maps rows straight to articles

package news

import (
	"context"

	"football-news-api/core/domain"
	"football-news-api/core/enrich"
	coreerrors "football-news-api/core/errors"
	"football-news-api/core/interfaces"
)

const defaultStoreLimit = 20

// StoreConfig configures the pre-scraped store adapter.
type StoreConfig struct {
	// Limit bounds how many of the newest rows are read per cycle.
	Limit int
}

// StoreSource reads articles the scraper already collected.
type StoreSource struct {
	deps interfaces.Dependencies
	cfg  StoreConfig
}

// NewStoreSource creates the pre-scraped store adapter.
func NewStoreSource(deps interfaces.Dependencies, cfg StoreConfig) *StoreSource {
	if cfg.Limit <= 0 {
		cfg.Limit = defaultStoreLimit
	}
	return &StoreSource{deps: deps, cfg: cfg}
}

// Name identifies the adapter.
func (s *StoreSource) Name() string { return "Scraped" }

// Fetch reads the newest scraped rows. The upstream scraper already
// applied the relevance filter, so rows are not re-checked here.
func (s *StoreSource) Fetch(ctx context.Context) ([]domain.Article, error) {
	if s.deps.Storage == nil {
		s.deps.Logger.Info("news storage not configured, skipping scraped source", nil)
		return nil, nil
	}

	rows, err := s.deps.Storage.LatestScraped(ctx, s.cfg.Limit)
	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to read scraped articles")
	}

	articles := make([]domain.Article, 0, len(rows))
	for _, row := range rows {
		if !row.IsValid() {
			continue
		}
		articles = append(articles, s.normalize(row))
	}

	return articles, nil
}

// normalize maps a scraped row to the canonical article shape, keeping the
// scraper's category hint when it is a known label.
func (s *StoreSource) normalize(row domain.ScrapedArticle) domain.Article {
	source := row.Source
	if source == "" {
		source = s.Name()
	}

	category := row.Category
	if !domain.ValidCategory(category) {
		category = enrich.Categorize(row.Title, row.Excerpt)
	}

	content := row.Content
	if content == "" {
		content = row.Excerpt
	}

	excerpt := row.Excerpt
	if excerpt == "" {
		excerpt = enrich.Excerpt(content, excerptLength)
	}

	return domain.Article{
		ID:              articleID("scraped", row.SourceURL, row.Title, source, row.ScrapedAt),
		Title:           row.Title,
		Content:         content,
		Excerpt:         excerpt,
		ImageURL:        row.ImageURL,
		Source:          source,
		SourceURL:       row.SourceURL,
		Category:        category,
		Tags:            enrich.ExtractTags(row.Title, row.Excerpt),
		PublishedAt:     row.ScrapedAt,
		ReadTime:        enrich.ReadTime(content),
		EngagementScore: 0,
	}
}
