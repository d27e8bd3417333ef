// ABOUTME: Scraper service crawls football news sites and fills the pre-scraped store
// ABOUTME: Collects article links with colly, extracts content with go-readability

package scraper

import (
	"context"
	"errors"
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

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly"
	readability "github.com/go-shiori/go-readability"
	"github.com/google/uuid"
)

const (
	scraperUserAgent  = "FootballNewsBot/1.0"
	defaultMaxPerSite = 10
	excerptLength     = 200
)

// Site names one listing page to crawl and the selector that finds its
// article links.
type Site struct {
	Name         string
	URL          string
	LinkSelector string
}

// defaultSites are the listing pages crawled when none are configured.
var defaultSites = []Site{
	{Name: "BBC Sport Football", URL: "https://www.bbc.com/sport/football", LinkSelector: "a[href*='/sport/football/']"},
	{Name: "Goal.com", URL: "https://www.goal.com/en/news", LinkSelector: "a[href*='/lists/'], a[href*='/news/']"},
}

// Config tunes the scraper.
type Config struct {
	// Sites overrides the default crawl targets.
	Sites []Site

	// MaxPerSite bounds how many articles one site contributes per run.
	MaxPerSite int
}

// Service crawls the configured sites and persists what it finds.
type Service struct {
	deps interfaces.Dependencies
	cfg  Config
}

// NewService creates a scraper service.
func NewService(deps interfaces.Dependencies, cfg Config) *Service {
	if len(cfg.Sites) == 0 {
		cfg.Sites = defaultSites
	}
	if cfg.MaxPerSite <= 0 {
		cfg.MaxPerSite = defaultMaxPerSite
	}
	return &Service{deps: deps, cfg: cfg}
}

// Run crawls every configured site once and stores the relevant articles.
// Returns how many rows were written. Per-site failures are logged and
// skipped; a storage failure is fatal because the run exists to persist.
func (s *Service) Run(ctx context.Context) (int, error) {
	if s.deps.Storage == nil {
		return 0, errors.New("scraper requires a configured news storage")
	}

	scraped := make([]domain.ScrapedArticle, 0)

	for _, site := range s.cfg.Sites {
		links, err := s.collectLinks(site)
		if err != nil {
			s.deps.Logger.Error("failed to crawl listing page", map[string]interface{}{
				"site":  site.Name,
				"error": err.Error(),
			})
			continue
		}

		count := 0
		for _, link := range links {
			if count >= s.cfg.MaxPerSite {
				break
			}

			row, err := s.scrapeArticle(ctx, site, link)
			if err != nil {
				s.deps.Logger.Warn("failed to scrape article", map[string]interface{}{
					"url":   link,
					"error": err.Error(),
				})
				continue
			}

			if !relevance.IsRelevant(row.Title, row.Excerpt) {
				continue
			}

			scraped = append(scraped, row)
			count++
		}
	}

	if len(scraped) == 0 {
		return 0, nil
	}

	if err := s.deps.Storage.SaveScraped(ctx, scraped); err != nil {
		return 0, coreerrors.WrapError(err, "failed to store scraped articles")
	}

	return len(scraped), nil
}

// collectLinks gathers unique article URLs from a site's listing page,
// preserving their page order.
func (s *Service) collectLinks(site Site) ([]string, error) {
	links := make([]string, 0)
	seen := make(map[string]struct{})

	c := colly.NewCollector(colly.UserAgent(scraperUserAgent))

	c.OnHTML(site.LinkSelector, func(e *colly.HTMLElement) {
		link := e.Request.AbsoluteURL(e.Attr("href"))
		if link == "" || link == site.URL {
			return
		}
		if _, dup := seen[link]; dup {
			return
		}
		seen[link] = struct{}{}
		links = append(links, link)
	})

	if err := c.Visit(site.URL); err != nil {
		return nil, err
	}

	return links, nil
}

// scrapeArticle fetches one article page, extracting readable content and
// Open Graph metadata.
func (s *Service) scrapeArticle(ctx context.Context, site Site, link string) (domain.ScrapedArticle, error) {
	resp, err := s.deps.HTTPClient.Get(ctx, link)
	if err != nil {
		return domain.ScrapedArticle{}, err
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return domain.ScrapedArticle{}, &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    "unexpected status",
			API:        site.Name,
		}
	}

	// Listing selectors occasionally match PDFs or media links.
	if ct := resp.Header("Content-Type"); ct != "" && !strings.Contains(ct, "html") {
		return domain.ScrapedArticle{}, &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    "not an HTML page: " + ct,
			API:        site.Name,
		}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return domain.ScrapedArticle{}, err
	}

	pageURL, err := url.Parse(link)
	if err != nil {
		return domain.ScrapedArticle{}, err
	}

	article, err := readability.FromReader(strings.NewReader(string(body)), pageURL)
	if err != nil {
		return domain.ScrapedArticle{}, coreerrors.WrapError(err, "readability extraction failed")
	}

	imageURL, ogDescription := openGraphMeta(string(body))
	if imageURL == "" {
		imageURL = article.Image
	}

	content := htmlutil.StripHTML(article.Content)

	excerpt := ogDescription
	if excerpt == "" {
		excerpt = article.Excerpt
	}
	if excerpt == "" {
		excerpt = enrich.Excerpt(content, excerptLength)
	}

	return domain.ScrapedArticle{
		ID:        uuid.New().String(),
		Title:     article.Title,
		Content:   content,
		Excerpt:   excerpt,
		ImageURL:  imageURL,
		Source:    site.Name,
		SourceURL: link,
		Category:  enrich.Categorize(article.Title, excerpt),
		ScrapedAt: time.Now().UTC(),
	}, nil
}

// openGraphMeta pulls og:image and og:description from the page head.
func openGraphMeta(page string) (image, description string) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return "", ""
	}

	doc.Find("meta").Each(func(_ int, sel *goquery.Selection) {
		property, _ := sel.Attr("property")
		content, _ := sel.Attr("content")
		switch property {
		case "og:image":
			if image == "" {
				image = content
			}
		case "og:description":
			if description == "" {
				description = content
			}
		}
	})

	return image, description
}
