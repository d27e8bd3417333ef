// ABOUTME: Response DTOs for the news endpoints
// ABOUTME: Maps the domain article onto the wire shape clients consume

package responses

import (
	"time"

	"football-news-api/core/domain"
)

// ArticleResponse is one article as returned to clients.
type ArticleResponse struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Content         string   `json:"content"`
	Excerpt         string   `json:"excerpt"`
	ImageURL        string   `json:"imageUrl,omitempty"`
	Source          string   `json:"source"`
	SourceURL       string   `json:"sourceUrl,omitempty"`
	Category        string   `json:"category"`
	Tags            []string `json:"tags"`
	PublishedAt     string   `json:"publishedAt"`
	Author          string   `json:"author,omitempty"`
	ReadTime        string   `json:"readTime"`
	EngagementScore int      `json:"engagementScore"`
}

// NewsResponse is the envelope for article lists.
type NewsResponse struct {
	Articles    []ArticleResponse `json:"articles"`
	Count       int               `json:"count"`
	LastUpdated string            `json:"lastUpdated"`
}

// NewArticleResponse maps one domain article onto the wire shape.
func NewArticleResponse(a domain.Article) ArticleResponse {
	return ArticleResponse{
		ID:              a.ID,
		Title:           a.Title,
		Content:         a.Content,
		Excerpt:         a.Excerpt,
		ImageURL:        a.ImageURL,
		Source:          a.Source,
		SourceURL:       a.SourceURL,
		Category:        a.Category,
		Tags:            a.Tags,
		PublishedAt:     a.PublishedAt.UTC().Format(time.RFC3339),
		Author:          a.Author,
		ReadTime:        a.ReadTime,
		EngagementScore: a.EngagementScore,
	}
}

// NewNewsResponse maps domain articles into the response envelope.
func NewNewsResponse(articles []domain.Article, lastUpdated time.Time) NewsResponse {
	out := make([]ArticleResponse, 0, len(articles))
	for _, a := range articles {
		out = append(out, NewArticleResponse(a))
	}

	return NewsResponse{
		Articles:    out,
		Count:       len(out),
		LastUpdated: lastUpdated.UTC().Format(time.RFC3339),
	}
}
