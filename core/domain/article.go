// ABOUTME: Article domain model represents one normalized football news story
// ABOUTME: Provides the canonical shape produced by every source adapter

package domain

import (
	"errors"
	"time"
)

// Category labels assigned by the enrichment rules, in priority order.
const (
	CategoryUEFA          = "UEFA"
	CategoryPremierLeague = "Premier League"
	CategoryLaLiga        = "La Liga"
	CategorySerieA        = "Serie A"
	CategoryBundesliga    = "Bundesliga"
	CategoryAfrican       = "African"
	CategoryKenyan        = "Kenyan"
	CategoryTransferNews  = "Transfer News"
	CategoryPlayerNews    = "Player News"
	CategoryMatchReport   = "Match Report"
	CategoryGeneral       = "General"
)

// Categories lists every valid category label.
var Categories = []string{
	CategoryUEFA,
	CategoryPremierLeague,
	CategoryLaLiga,
	CategorySerieA,
	CategoryBundesliga,
	CategoryAfrican,
	CategoryKenyan,
	CategoryTransferNews,
	CategoryPlayerNews,
	CategoryMatchReport,
	CategoryGeneral,
}

// MaxTags caps how many tags a single article may carry.
const MaxTags = 5

// Article is the canonical post-normalization news story
type Article struct {
	// ID is a deterministic identifier derived from the source URL,
	// or from title/source/published time when no URL exists
	ID string `json:"id"`

	// Title is the headline and the natural dedup/persistence key
	Title string `json:"title"`

	// Content is the full body if available, else the description fallback
	Content string `json:"content"`

	// Excerpt is a short summary, possibly a truncation of Content
	Excerpt string `json:"excerpt"`

	// ImageUrl is an optional thumbnail/lead image URL
	ImageURL string `json:"imageUrl,omitempty"`

	// Source names the origin feed, API, or store
	Source string `json:"source"`

	// SourceURL links back to the origin article
	SourceURL string `json:"sourceUrl,omitempty"`

	// Category is one of the fixed labels in Categories
	Category string `json:"category"`

	// Tags holds at most MaxTags keywords found in the text, discovery order
	Tags []string `json:"tags"`

	// PublishedAt is normalized at the adapter boundary; articles whose
	// origin date cannot be parsed never reach this struct
	PublishedAt time.Time `json:"publishedAt"`

	// Author is optional
	Author string `json:"author,omitempty"`

	// ReadTime is a human readable estimate, e.g. "3 min read"
	ReadTime string `json:"readTime"`

	// EngagementScore is a heuristic ranking score; 0 means unscored
	EngagementScore int `json:"engagementScore"`
}

// Validate checks the invariants every surfaced article must hold.
func (a *Article) Validate() error {
	if a.Title == "" {
		return errors.New("article title cannot be empty")
	}

	if a.Source == "" {
		return errors.New("article source cannot be empty")
	}

	if len(a.Tags) > MaxTags {
		return errors.New("article cannot carry more than 5 tags")
	}

	if !ValidCategory(a.Category) {
		return errors.New("article category is not a known label")
	}

	if a.PublishedAt.IsZero() {
		return errors.New("article published time cannot be zero")
	}

	return nil
}

// ValidCategory reports whether category is one of the fixed labels.
func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// ScrapedArticle is one row of the pre-scraped store. The upstream scraper
// already applied the relevance filter, so the store adapter trusts it.
type ScrapedArticle struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Excerpt   string    `json:"excerpt"`
	ImageURL  string    `json:"image_url"`
	Source    string    `json:"source"`
	SourceURL string    `json:"source_url"`
	Category  string    `json:"category"`
	ScrapedAt time.Time `json:"scraped_at"`
}

// IsValid reports whether a scraped row has the fields the pipeline needs.
func (s *ScrapedArticle) IsValid() bool {
	if s.Title == "" {
		return false
	}

	if s.SourceURL == "" {
		return false
	}

	return true
}
