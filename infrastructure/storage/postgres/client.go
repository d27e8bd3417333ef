// ABOUTME: Direct Postgres implementation of the NewsStorage interface
// ABOUTME: Uses database/sql over the pgx stdlib driver for self-hosted deployments

package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"football-news-api/core/domain"
)

const (
	systemAuthorID = "00000000-0000-0000-0000-000000000000"
	defaultAuthor  = "News Service"
)

const upsertArticleSQL = `
INSERT INTO news_articles
	(title, content, excerpt, image_url, category, tags, source, source_url,
	 published_at, author, is_published, author_id)
VALUES ($1, $2, $3, $4, $5, $6::jsonb, $7, $8, $9, $10, $11, $12)
ON CONFLICT (title) DO UPDATE SET
	content      = EXCLUDED.content,
	excerpt      = EXCLUDED.excerpt,
	image_url    = EXCLUDED.image_url,
	category     = EXCLUDED.category,
	tags         = EXCLUDED.tags,
	source       = EXCLUDED.source,
	source_url   = EXCLUDED.source_url,
	published_at = EXCLUDED.published_at,
	author       = EXCLUDED.author,
	is_published = EXCLUDED.is_published`

const upsertScrapedSQL = `
INSERT INTO scraped_articles
	(id, title, content, excerpt, image_url, source, source_url, category, scraped_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (source_url) DO UPDATE SET
	title      = EXCLUDED.title,
	content    = EXCLUDED.content,
	excerpt    = EXCLUDED.excerpt,
	image_url  = EXCLUDED.image_url,
	category   = EXCLUDED.category,
	scraped_at = EXCLUDED.scraped_at`

const latestScrapedSQL = `
SELECT id, title, content, excerpt, image_url, source, source_url, category, scraped_at
FROM scraped_articles
ORDER BY scraped_at DESC
LIMIT $1`

// Storage implements interfaces.NewsStorage on a Postgres connection.
type Storage struct {
	db *sql.DB
}

// NewStorage opens a Postgres connection using the pgx driver.
func NewStorage(ctx context.Context, dsn string) (*Storage, error) {
	if dsn == "" {
		return nil, errors.New("postgres DSN cannot be empty")
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, err
	}

	return &Storage{db: db}, nil
}

// UpsertArticles writes articles with the title as conflict target,
// all rows in one transaction.
func (s *Storage) UpsertArticles(ctx context.Context, articles []domain.Article) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, upsertArticleSQL)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, a := range articles {
		author := a.Author
		if author == "" {
			author = defaultAuthor
		}

		tags, err := json.Marshal(a.Tags)
		if err != nil {
			return err
		}

		if _, err := stmt.ExecContext(ctx,
			a.Title, a.Content, a.Excerpt, nullable(a.ImageURL), a.Category,
			string(tags), a.Source, nullable(a.SourceURL),
			a.PublishedAt.UTC(), author, true, systemAuthorID,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// LatestScraped reads the newest scraped rows ordered by scrape time.
func (s *Storage) LatestScraped(ctx context.Context, limit int) ([]domain.ScrapedArticle, error) {
	rows, err := s.db.QueryContext(ctx, latestScrapedSQL, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	articles := make([]domain.ScrapedArticle, 0, limit)
	for rows.Next() {
		var a domain.ScrapedArticle
		var imageURL, content, excerpt sql.NullString

		if err := rows.Scan(&a.ID, &a.Title, &content, &excerpt, &imageURL,
			&a.Source, &a.SourceURL, &a.Category, &a.ScrapedAt); err != nil {
			return nil, err
		}

		a.Content = content.String
		a.Excerpt = excerpt.String
		a.ImageURL = imageURL.String
		articles = append(articles, a)
	}

	return articles, rows.Err()
}

// SaveScraped upserts rows keyed by source URL.
func (s *Storage) SaveScraped(ctx context.Context, articles []domain.ScrapedArticle) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, upsertScrapedSQL)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, a := range articles {
		if _, err := stmt.ExecContext(ctx,
			a.ID, a.Title, a.Content, a.Excerpt, nullable(a.ImageURL),
			a.Source, a.SourceURL, a.Category, a.ScrapedAt.UTC(),
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Close closes the connection pool.
func (s *Storage) Close() error {
	return s.db.Close()
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
