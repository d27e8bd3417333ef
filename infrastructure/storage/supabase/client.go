// ABOUTME: Supabase REST implementation of the NewsStorage interface
// ABOUTME: Upserts canonical articles and reads the pre-scraped table via PostgREST

package supabase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"football-news-api/core/domain"

	"github.com/supabase-community/postgrest-go"
	supabase "github.com/supabase-community/supabase-go"
)

const (
	articlesTable = "news_articles"
	scrapedTable  = "scraped_articles"

	// systemAuthorID is the fixed placeholder owner of service-written rows.
	systemAuthorID = "00000000-0000-0000-0000-000000000000"
	defaultAuthor  = "News Service"
)

// Storage implements interfaces.NewsStorage against a Supabase project.
type Storage struct {
	client *supabase.Client
}

// NewStorage creates a Supabase-backed news storage.
func NewStorage(projectURL, apiKey string) (*Storage, error) {
	if projectURL == "" || apiKey == "" {
		return nil, errors.New("supabase URL and key are required")
	}

	client, err := supabase.NewClient(projectURL, apiKey, nil)
	if err != nil {
		return nil, err
	}

	return &Storage{client: client}, nil
}

// articleRow mirrors the news_articles columns.
type articleRow struct {
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Excerpt     string   `json:"excerpt"`
	ImageURL    string   `json:"image_url,omitempty"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Source      string   `json:"source"`
	SourceURL   string   `json:"source_url,omitempty"`
	PublishedAt string   `json:"published_at"`
	Author      string   `json:"author"`
	IsPublished bool     `json:"is_published"`
	AuthorID    string   `json:"author_id"`
}

// scrapedRow mirrors the scraped_articles columns.
type scrapedRow struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Excerpt   string `json:"excerpt"`
	ImageURL  string `json:"image_url"`
	Source    string `json:"source"`
	SourceURL string `json:"source_url"`
	Category  string `json:"category"`
	ScrapedAt string `json:"scraped_at"`
}

// UpsertArticles writes articles with the title as conflict target.
func (s *Storage) UpsertArticles(ctx context.Context, articles []domain.Article) error {
	rows := make([]articleRow, 0, len(articles))
	for _, a := range articles {
		author := a.Author
		if author == "" {
			author = defaultAuthor
		}

		rows = append(rows, articleRow{
			Title:       a.Title,
			Content:     a.Content,
			Excerpt:     a.Excerpt,
			ImageURL:    a.ImageURL,
			Category:    a.Category,
			Tags:        a.Tags,
			Source:      a.Source,
			SourceURL:   a.SourceURL,
			PublishedAt: a.PublishedAt.UTC().Format(time.RFC3339),
			Author:      author,
			IsPublished: true,
			AuthorID:    systemAuthorID,
		})
	}

	_, _, err := s.client.From(articlesTable).
		Insert(rows, true, "title", "minimal", "").
		ExecuteWithContext(ctx)
	return err
}

// LatestScraped reads the newest scraped rows ordered by scrape time.
func (s *Storage) LatestScraped(ctx context.Context, limit int) ([]domain.ScrapedArticle, error) {
	data, _, err := s.client.From(scrapedTable).
		Select("*", "", false).
		Order("scraped_at", &postgrest.OrderOpts{Ascending: false}).
		Limit(limit, "").
		ExecuteWithContext(ctx)
	if err != nil {
		return nil, err
	}

	var rows []scrapedRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, err
	}

	articles := make([]domain.ScrapedArticle, 0, len(rows))
	for _, row := range rows {
		scrapedAt, err := time.Parse(time.RFC3339, row.ScrapedAt)
		if err != nil {
			// A row with a broken timestamp cannot be ordered; skip it
			continue
		}

		articles = append(articles, domain.ScrapedArticle{
			ID:        row.ID,
			Title:     row.Title,
			Content:   row.Content,
			Excerpt:   row.Excerpt,
			ImageURL:  row.ImageURL,
			Source:    row.Source,
			SourceURL: row.SourceURL,
			Category:  row.Category,
			ScrapedAt: scrapedAt,
		})
	}

	return articles, nil
}

// SaveScraped upserts rows keyed by source URL so re-crawls refresh the
// existing story instead of duplicating it.
func (s *Storage) SaveScraped(ctx context.Context, articles []domain.ScrapedArticle) error {
	rows := make([]scrapedRow, 0, len(articles))
	for _, a := range articles {
		rows = append(rows, scrapedRow{
			ID:        a.ID,
			Title:     a.Title,
			Content:   a.Content,
			Excerpt:   a.Excerpt,
			ImageURL:  a.ImageURL,
			Source:    a.Source,
			SourceURL: a.SourceURL,
			Category:  a.Category,
			ScrapedAt: a.ScrapedAt.UTC().Format(time.RFC3339),
		})
	}

	_, _, err := s.client.From(scrapedTable).
		Insert(rows, true, "source_url", "minimal", "").
		ExecuteWithContext(ctx)
	return err
}
