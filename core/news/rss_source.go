// ABOUTME: RSS source adapter fetching named feeds through a CORS relay proxy
// ABOUTME: Parses the proxy's JSON envelope, then the inner XML with gofeed

package news

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"football-news-api/core/domain"
	"football-news-api/core/enrich"
	coreerrors "football-news-api/core/errors"
	"football-news-api/core/interfaces"
	"football-news-api/core/relevance"
	htmlutil "football-news-api/pkg/utils/html"

	"github.com/mmcdole/gofeed"
)

const defaultProxyURL = "https://api.allorigins.win/get?url="

// RSSFeed names one feed endpoint.
type RSSFeed struct {
	Name string
	URL  string
}

// defaultFeeds are the fixed feed endpoints the pipeline watches.
var defaultFeeds = []RSSFeed{
	{Name: "BBC Sport Football", URL: "https://feeds.bbci.co.uk/sport/football/rss.xml"},
	{Name: "Sky Sports Football", URL: "https://www.skysports.com/rss/12040"},
	{Name: "Goal.com", URL: "https://www.goal.com/feeds/en/news"},
	{Name: "The Guardian Football", URL: "https://www.theguardian.com/football/rss"},
}

// RSSConfig configures the RSS adapter.
type RSSConfig struct {
	// Feeds overrides the default feed list.
	Feeds []RSSFeed

	// ProxyURL is the CORS relay endpoint; the target feed URL is
	// appended query-escaped.
	ProxyURL string

	// CacheTTL caches raw feed documents when positive. Zero disables
	// caching so every refresh rebuilds from the origin.
	CacheTTL time.Duration
}

// RSSSource fetches candidates from the configured feeds.
type RSSSource struct {
	deps   interfaces.Dependencies
	cfg    RSSConfig
	parser *gofeed.Parser
}

// NewRSSSource creates the RSS adapter.
func NewRSSSource(deps interfaces.Dependencies, cfg RSSConfig) *RSSSource {
	if len(cfg.Feeds) == 0 {
		cfg.Feeds = defaultFeeds
	}
	if cfg.ProxyURL == "" {
		cfg.ProxyURL = defaultProxyURL
	}
	return &RSSSource{
		deps:   deps,
		cfg:    cfg,
		parser: gofeed.NewParser(),
	}
}

// Name identifies the adapter.
func (s *RSSSource) Name() string { return "RSS" }

// proxyEnvelope is the relay proxy's JSON wrapper around the feed XML.
type proxyEnvelope struct {
	Contents string `json:"contents"`
}

// Fetch retrieves every configured feed in order. Per-feed failures are
// logged and skipped so one dead feed cannot take down the others.
func (s *RSSSource) Fetch(ctx context.Context) ([]domain.Article, error) {
	articles := make([]domain.Article, 0)

	for _, feed := range s.cfg.Feeds {
		items, err := s.fetchFeed(ctx, feed)
		if err != nil {
			s.deps.Logger.Error("failed to fetch feed", map[string]interface{}{
				"feed":  feed.Name,
				"url":   feed.URL,
				"error": err.Error(),
			})
			continue
		}
		articles = append(articles, items...)
	}

	return articles, nil
}

// fetchFeed retrieves one feed document and normalizes its items.
func (s *RSSSource) fetchFeed(ctx context.Context, feed RSSFeed) ([]domain.Article, error) {
	document, err := s.fetchDocument(ctx, feed)
	if err != nil {
		return nil, err
	}

	parsed, err := s.parser.Parse(strings.NewReader(document))
	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to parse feed XML")
	}

	articles := make([]domain.Article, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		article, ok := s.normalize(item, feed)
		if !ok {
			continue
		}
		articles = append(articles, article)
	}

	return articles, nil
}

// fetchDocument loads the raw feed XML through the relay proxy, using the
// cache when a TTL is configured.
func (s *RSSSource) fetchDocument(ctx context.Context, feed RSSFeed) (string, error) {
	cacheKey := fmt.Sprintf("feed:%s", feed.URL)

	if s.cacheEnabled() {
		if data, err := s.deps.Cache.Get(ctx, cacheKey); err == nil && data != nil {
			return string(data), nil
		}
	}

	resp, err := s.deps.HTTPClient.Get(ctx, s.cfg.ProxyURL+url.QueryEscape(feed.URL))
	if err != nil {
		return "", coreerrors.WrapError(err, "proxy request failed")
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return "", &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    "unexpected status",
			API:        feed.Name,
		}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return "", coreerrors.WrapError(err, "failed to read proxy response")
	}

	var envelope proxyEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return "", coreerrors.WrapError(err, "failed to parse proxy envelope")
	}

	if envelope.Contents == "" {
		return "", &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    "proxy envelope carried no contents",
			API:        feed.Name,
		}
	}

	if s.cacheEnabled() {
		_ = s.deps.Cache.Set(ctx, cacheKey, []byte(envelope.Contents), s.cfg.CacheTTL)
	}

	return envelope.Contents, nil
}

func (s *RSSSource) cacheEnabled() bool {
	return s.deps.Cache != nil && s.cfg.CacheTTL > 0
}

// normalize maps one feed item to the canonical article shape. Items that
// fail the relevance filter or carry no parseable date are dropped.
func (s *RSSSource) normalize(item *gofeed.Item, feed RSSFeed) (domain.Article, bool) {
	if item.Title == "" {
		return domain.Article{}, false
	}

	description := htmlutil.StripHTML(item.Description)

	if !relevance.IsRelevant(item.Title, description) {
		return domain.Article{}, false
	}

	if item.PublishedParsed == nil {
		s.deps.Logger.Warn("dropping feed item with unparseable date", map[string]interface{}{
			"feed":  feed.Name,
			"title": item.Title,
			"date":  item.Published,
		})
		return domain.Article{}, false
	}
	published := *item.PublishedParsed

	content := htmlutil.StripHTML(item.Content)
	if content == "" {
		content = description
	}

	excerpt := description
	if excerpt == "" {
		excerpt = enrich.Excerpt(content, excerptLength)
	}

	author := ""
	if item.Author != nil {
		author = item.Author.Name
	}

	return domain.Article{
		ID:          articleID("rss", item.Link, item.Title, feed.Name, published),
		Title:       item.Title,
		Content:     content,
		Excerpt:     excerpt,
		ImageURL:    itemImage(item),
		Source:      feed.Name,
		SourceURL:   item.Link,
		Category:    enrich.Categorize(item.Title, description),
		Tags:        enrich.ExtractTags(item.Title, description),
		PublishedAt: published,
		Author:      author,
		ReadTime:    enrich.ReadTime(content),
		// RSS items stay unscored; zero sorts stably below scored
		// articles under trending/popular.
		EngagementScore: 0,
	}, true
}

// itemImage picks a thumbnail from the item image or an image enclosure.
func itemImage(item *gofeed.Item) string {
	if item.Image != nil && item.Image.URL != "" {
		return item.Image.URL
	}

	for _, enc := range item.Enclosures {
		if enc.URL != "" && strings.HasPrefix(enc.Type, "image/") {
			return enc.URL
		}
	}

	return ""
}
