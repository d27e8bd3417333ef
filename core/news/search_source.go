// ABOUTME: Structured-search source adapter fetching from a NewsAPI-style endpoint
// ABOUTME: Issues parallel whole-phrase queries and scores results for ranking

package news

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"sync"
	"time"

	"football-news-api/core/domain"
	"football-news-api/core/enrich"
	coreerrors "football-news-api/core/errors"
	"football-news-api/core/interfaces"
	"football-news-api/core/relevance"
	htmlutil "football-news-api/pkg/utils/html"
)

const (
	// SearchSourceName labels articles produced by this adapter.
	SearchSourceName = "NewsAPI"

	defaultSearchEndpoint = "https://newsapi.org/v2/everything"
	defaultSearchPageSize = 20
	excerptLength         = 200
)

// defaultSearchQueries are whole-phrase OR-combinations of football
// entity names, one request per query.
var defaultSearchQueries = []string{
	`"Premier League" OR "Champions League" OR "Europa League"`,
	`"Arsenal" OR "Chelsea" OR "Liverpool" OR "Manchester United"`,
	`"La Liga" OR "Serie A" OR "Bundesliga"`,
	`"AFCON" OR "CAF" OR "Kenya football" OR "Gor Mahia"`,
}

// SearchConfig configures the structured-search adapter.
type SearchConfig struct {
	// APIKey authenticates against the search endpoint. An empty key is
	// a valid "feature disabled" state, not an error.
	APIKey string

	// Endpoint overrides the search API base URL.
	Endpoint string

	// Queries overrides the default query set.
	Queries []string

	// PageSize bounds results per query.
	PageSize int
}

// SearchSource fetches candidates from the structured search endpoint.
type SearchSource struct {
	deps interfaces.Dependencies
	cfg  SearchConfig
}

// NewSearchSource creates the structured-search adapter.
func NewSearchSource(deps interfaces.Dependencies, cfg SearchConfig) *SearchSource {
	if cfg.Endpoint == "" {
		cfg.Endpoint = defaultSearchEndpoint
	}
	if len(cfg.Queries) == 0 {
		cfg.Queries = defaultSearchQueries
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = defaultSearchPageSize
	}
	return &SearchSource{deps: deps, cfg: cfg}
}

// Name identifies the adapter.
func (s *SearchSource) Name() string { return SearchSourceName }

// searchResponse is the raw endpoint payload.
type searchResponse struct {
	Status   string         `json:"status"`
	Articles []searchRecord `json:"articles"`
}

// searchRecord is one raw candidate from the search endpoint.
type searchRecord struct {
	Source struct {
		Name string `json:"name"`
	} `json:"source"`
	Author      string `json:"author"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	URLToImage  string `json:"urlToImage"`
	PublishedAt string `json:"publishedAt"`
	Content     string `json:"content"`
}

// Fetch issues all configured queries concurrently and merges their
// results in query order. Without an API key it returns an empty list,
// keeping the pipeline degrading gracefully instead of failing hard.
func (s *SearchSource) Fetch(ctx context.Context) ([]domain.Article, error) {
	if s.cfg.APIKey == "" {
		s.deps.Logger.Info("search API key not configured, skipping search source", nil)
		return nil, nil
	}

	results := make([][]domain.Article, len(s.cfg.Queries))
	var wg sync.WaitGroup

	for i, query := range s.cfg.Queries {
		wg.Add(1)
		go func(idx int, q string) {
			defer wg.Done()

			articles, err := s.fetchQuery(ctx, q)
			if err != nil {
				s.deps.Logger.Error("search query failed", map[string]interface{}{
					"query": q,
					"error": err.Error(),
				})
				return
			}
			results[idx] = articles
		}(i, query)
	}

	wg.Wait()

	merged := make([]domain.Article, 0)
	for _, batch := range results {
		merged = append(merged, batch...)
	}

	return merged, nil
}

// fetchQuery runs a single search request and normalizes its candidates.
func (s *SearchSource) fetchQuery(ctx context.Context, query string) ([]domain.Article, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("language", "en")
	params.Set("sortBy", "publishedAt")
	params.Set("pageSize", fmt.Sprintf("%d", s.cfg.PageSize))
	params.Set("apiKey", s.cfg.APIKey)

	resp, err := s.deps.HTTPClient.Get(ctx, s.cfg.Endpoint+"?"+params.Encode())
	if err != nil {
		return nil, coreerrors.WrapError(err, "search request failed")
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    "unexpected status",
			API:        SearchSourceName,
		}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to read search response")
	}

	var payload searchResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, coreerrors.WrapError(err, "failed to parse search response")
	}

	articles := make([]domain.Article, 0, len(payload.Articles))
	for _, record := range payload.Articles {
		article, ok := s.normalize(record)
		if !ok {
			continue
		}
		articles = append(articles, article)
	}

	return articles, nil
}

// normalize maps a raw search record to the canonical article shape.
// Returns false when the record is irrelevant or carries a broken date.
func (s *SearchSource) normalize(record searchRecord) (domain.Article, bool) {
	if record.Title == "" {
		return domain.Article{}, false
	}

	if !relevance.IsRelevant(record.Title, record.Description) {
		return domain.Article{}, false
	}

	published, err := time.Parse(time.RFC3339, record.PublishedAt)
	if err != nil {
		s.deps.Logger.Warn("dropping search result with unparseable date", map[string]interface{}{
			"title": record.Title,
			"date":  record.PublishedAt,
		})
		return domain.Article{}, false
	}

	content := htmlutil.StripHTML(record.Content)
	if content == "" {
		content = htmlutil.StripHTML(record.Description)
	}

	excerpt := htmlutil.StripHTML(record.Description)
	if excerpt == "" {
		excerpt = enrich.Excerpt(content, excerptLength)
	}

	return domain.Article{
		ID:          articleID("search", record.URL, record.Title, SearchSourceName, published),
		Title:       record.Title,
		Content:     content,
		Excerpt:     excerpt,
		ImageURL:    record.URLToImage,
		Source:      SearchSourceName,
		SourceURL:   record.URL,
		Category:    enrich.Categorize(record.Title, record.Description),
		Tags:        enrich.ExtractTags(record.Title, record.Description),
		PublishedAt: published,
		Author:      record.Author,
		ReadTime:    enrich.ReadTime(content),
		// The credibility bonus keys off the upstream outlet, not the
		// adapter label.
		EngagementScore: enrich.EngagementScore(record.Title, content, record.URLToImage, record.Source.Name),
	}, true
}
