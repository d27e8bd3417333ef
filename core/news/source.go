// ABOUTME: Source contract shared by the three news adapters
// ABOUTME: Provides the deterministic article identifier derivation

package news

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"football-news-api/core/domain"
)

// Source produces normalized articles from one origin, encapsulating that
// origin's protocol and failure modes. A source that is not configured
// returns an empty list and no error.
type Source interface {
	// Name identifies the source in logs and metrics.
	Name() string

	// Fetch retrieves, filters and normalizes the origin's current
	// candidates. Item order from the origin is preserved.
	Fetch(ctx context.Context) ([]domain.Article, error)
}

// articleID derives a stable identifier from the source URL, falling back
// to a content hash of title, source and published time when the origin
// provides no URL. No wall-clock component: two fetches of the same story
// agree on the ID.
func articleID(prefix, sourceURL, title, source string, published time.Time) string {
	basis := sourceURL
	if basis == "" {
		basis = title + "|" + source + "|" + published.UTC().Format(time.RFC3339)
	}

	sum := sha256.Sum256([]byte(basis))
	return prefix + "-" + hex.EncodeToString(sum[:8])
}
