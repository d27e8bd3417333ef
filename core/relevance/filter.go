// ABOUTME: Relevance filter decides whether a raw candidate belongs to the football domain
// ABOUTME: Pure keyword-membership predicate over title and description

package relevance

import "strings"

// IsRelevant reports whether the title/description pair mentions at least
// one vocabulary keyword. Matching is case-insensitive substring matching
// with no word-boundary enforcement; a partial word hit counts.
func IsRelevant(title, description string) bool {
	text := strings.ToLower(title + " " + description)

	for _, keyword := range Vocabulary() {
		if strings.Contains(text, strings.ToLower(keyword)) {
			return true
		}
	}

	return false
}
