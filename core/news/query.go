// ABOUTME: Client-contract filtering and sorting over an already aggregated list
// ABOUTME: Owns no enrichment; it only narrows and orders what the aggregator produced

package news

import (
	"sort"
	"strings"

	"football-news-api/core/domain"
)

// Sort modes accepted by FilterArticles.
const (
	SortLatest   = "latest"
	SortTrending = "trending"
	SortPopular  = "popular"
)

// DefaultPageSize bounds the visible slice when no limit is given.
const DefaultPageSize = 20

// FilterOptions are the independent client-side filters.
type FilterOptions struct {
	// Query is a free-text search across title, content and tags.
	Query string

	// Category keeps only articles with this exact category.
	Category string

	// Source keeps only articles from this exact source.
	Source string

	// Sort is one of SortLatest, SortTrending, SortPopular.
	Sort string

	// Limit bounds the result; DefaultPageSize when zero.
	Limit int
}

// FilterArticles applies the presentation consumer contract: three
// independent filters, one sort mode, and a bounded slice.
func FilterArticles(articles []domain.Article, opts FilterOptions) []domain.Article {
	if opts.Limit <= 0 {
		opts.Limit = DefaultPageSize
	}

	query := strings.ToLower(strings.TrimSpace(opts.Query))

	filtered := make([]domain.Article, 0, len(articles))
	for _, article := range articles {
		if opts.Category != "" && article.Category != opts.Category {
			continue
		}
		if opts.Source != "" && article.Source != opts.Source {
			continue
		}
		if query != "" && !matchesQuery(article, query) {
			continue
		}
		filtered = append(filtered, article)
	}

	switch opts.Sort {
	case SortTrending, SortPopular:
		// Stable, so unscored articles keep their relative order below
		// every scored one.
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].EngagementScore > filtered[j].EngagementScore
		})
	default:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].PublishedAt.After(filtered[j].PublishedAt)
		})
	}

	if len(filtered) > opts.Limit {
		filtered = filtered[:opts.Limit]
	}

	return filtered
}

func matchesQuery(article domain.Article, query string) bool {
	if strings.Contains(strings.ToLower(article.Title), query) {
		return true
	}

	if strings.Contains(strings.ToLower(article.Content), query) {
		return true
	}

	for _, tag := range article.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}

	return false
}
