// ABOUTME: Enrichment derives category, tags, read time and engagement score for an article
// ABOUTME: Pure functions applied by every source adapter during normalization

package enrich

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"football-news-api/core/domain"
	"football-news-api/core/relevance"
)

// genericTerms are scanned for tags after the keyword vocabulary.
// They are stored lowercase and capitalized on output.
var genericTerms = []string{
	"transfer",
	"injury",
	"goal",
	"assist",
	"red card",
	"yellow card",
	"penalty",
}

// credibleSources gets a flat engagement bonus when the source name
// matches one of these outlets.
var credibleSources = []string{
	"BBC",
	"ESPN",
	"Goal.com",
	"Sky Sports",
	"The Guardian",
}

// wordsPerMinute is the reading speed assumed by ReadTime.
const wordsPerMinute = 200

// categoryRule pairs a category label with the terms that select it.
type categoryRule struct {
	category string
	terms    []string
}

// categoryRules are checked in order; the first matching rule wins.
var categoryRules = []categoryRule{
	{domain.CategoryUEFA, []string{"champions league", "europa league", "uefa"}},
	{domain.CategoryPremierLeague, []string{"premier league"}},
	{domain.CategoryLaLiga, []string{"la liga"}},
	{domain.CategorySerieA, []string{"serie a"}},
	{domain.CategoryBundesliga, []string{"bundesliga"}},
	{domain.CategoryAfrican, []string{"caf", "afcon"}},
	{domain.CategoryKenyan, []string{"kenya", "gor mahia", "afc leopards"}},
	{domain.CategoryTransferNews, []string{"transfer", "signing"}},
	{domain.CategoryPlayerNews, []string{"injury", "suspension"}},
	{domain.CategoryMatchReport, []string{"match", "result"}},
}

// Categorize assigns one of the fixed category labels from the article
// title and description. Rules are mutually exclusive by priority order,
// not by content exclusivity.
func Categorize(title, description string) string {
	text := strings.ToLower(title + " " + description)

	for _, rule := range categoryRules {
		for _, term := range rule.terms {
			if strings.Contains(text, term) {
				return rule.category
			}
		}
	}

	return domain.CategoryGeneral
}

// ExtractTags scans the text against the keyword vocabulary and the
// generic football terms, preserving discovery order and capping the
// result at domain.MaxTags.
func ExtractTags(title, description string) []string {
	text := strings.ToLower(title + " " + description)
	tags := make([]string, 0, domain.MaxTags)
	seen := make(map[string]struct{})

	appendTag := func(tag string) {
		if len(tags) >= domain.MaxTags {
			return
		}
		if _, dup := seen[tag]; dup {
			return
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}

	for _, keyword := range relevance.Vocabulary() {
		if strings.Contains(text, strings.ToLower(keyword)) {
			appendTag(keyword)
		}
	}

	for _, term := range genericTerms {
		if strings.Contains(text, term) {
			appendTag(capitalize(term))
		}
	}

	return tags
}

// ReadTime estimates reading time from the content word count at
// wordsPerMinute, never reporting less than one minute.
func ReadTime(content string) string {
	words := len(strings.Fields(content))

	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}

	return fmt.Sprintf("%d min read", minutes)
}

// EngagementScore computes the weighted ranking heuristic. A zero score
// is the valid "unscored" value used by adapters that skip scoring.
func EngagementScore(title, content, imageURL, source string) int {
	score := 0

	switch titleLen := len(title); {
	case titleLen >= 30 && titleLen <= 80:
		score += 10
	case titleLen > 80:
		score += 5
	}

	switch contentLen := len(content); {
	case contentLen >= 200:
		score += 15
	case contentLen >= 100:
		score += 10
	}

	if imageURL != "" {
		score += 10
	}

	for _, outlet := range credibleSources {
		if strings.Contains(strings.ToLower(source), strings.ToLower(outlet)) {
			score += 20
			break
		}
	}

	return score
}

// Excerpt truncates plain text content to a short summary, cutting on a
// word boundary where one exists and never splitting a rune.
func Excerpt(content string, max int) string {
	if len(content) <= max {
		return content
	}

	cut := content[:max]
	if idx := strings.LastIndex(cut, " "); idx > 0 {
		cut = cut[:idx]
	} else {
		for len(cut) > 0 {
			r, size := utf8.DecodeLastRuneInString(cut)
			if r != utf8.RuneError || size != 1 {
				break
			}
			cut = cut[:len(cut)-1]
		}
	}

	return cut + "..."
}

// capitalize upper-cases the first letter of each word of a generic term.
func capitalize(term string) string {
	words := strings.Fields(term)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
