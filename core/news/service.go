// ABOUTME: News service aggregates the source adapters into one ranked article list
// ABOUTME: Provides business logic for fetch, dedup, sort, truncate and persistence

package news

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"football-news-api/core/domain"
	coreerrors "football-news-api/core/errors"
	"football-news-api/core/interfaces"
)

const (
	// DefaultMaxArticles caps one end-to-end aggregation.
	DefaultMaxArticles = 50

	defaultSourceTimeout = 10 * time.Second
	persistTimeout       = 30 * time.Second
)

// Recorder receives pipeline measurements. A nil Recorder disables them.
type Recorder interface {
	// ObserveFetch records one source fetch with its article count,
	// duration and outcome.
	ObserveFetch(source string, articles int, duration time.Duration, err error)

	// AddPersisted counts articles written to the durable store.
	AddPersisted(count int)
}

// Config tunes the aggregator.
type Config struct {
	// MaxArticles caps the merged result; DefaultMaxArticles when zero.
	MaxArticles int

	// SourceTimeout bounds each adapter's fetch; 10s when zero.
	SourceTimeout time.Duration
}

// Service aggregates news from all configured sources.
type Service struct {
	deps     interfaces.Dependencies
	cfg      Config
	sources  []Source
	recorder Recorder
}

// NewService creates a news service over the given sources. Source order
// is significant: it fixes the dedup tie-break, first source wins.
func NewService(deps interfaces.Dependencies, cfg Config, sources ...Source) *Service {
	if cfg.MaxArticles <= 0 {
		cfg.MaxArticles = DefaultMaxArticles
	}
	if cfg.SourceTimeout <= 0 {
		cfg.SourceTimeout = defaultSourceTimeout
	}
	return &Service{deps: deps, cfg: cfg, sources: sources}
}

// SetRecorder attaches a metrics recorder.
func (s *Service) SetRecorder(r Recorder) {
	s.recorder = r
}

// FetchAllNews runs every source concurrently, waits for all of them to
// settle, and merges the successful results. A failing source contributes
// an empty batch; it never aborts the aggregation.
func (s *Service) FetchAllNews(ctx context.Context) ([]domain.Article, error) {
	results := make([][]domain.Article, len(s.sources))
	var wg sync.WaitGroup

	for i, source := range s.sources {
		wg.Add(1)
		go func(idx int, src Source) {
			defer wg.Done()

			fetchCtx, cancel := context.WithTimeout(ctx, s.cfg.SourceTimeout)
			defer cancel()

			start := time.Now()
			articles, err := src.Fetch(fetchCtx)
			if s.recorder != nil {
				s.recorder.ObserveFetch(src.Name(), len(articles), time.Since(start), err)
			}

			if err != nil {
				s.deps.Logger.Error("source fetch failed", map[string]interface{}{
					"source": src.Name(),
					"error":  err.Error(),
				})
				return
			}

			results[idx] = articles
		}(i, source)
	}

	wg.Wait()

	// Merge in fixed source order so the first-seen dedup winner is
	// deterministic regardless of which fetch finished first.
	merged := make([]domain.Article, 0)
	for _, batch := range results {
		merged = append(merged, batch...)
	}

	merged = Deduplicate(merged)

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].PublishedAt.After(merged[j].PublishedAt)
	})

	if len(merged) > s.cfg.MaxArticles {
		merged = merged[:s.cfg.MaxArticles]
	}

	s.deps.Logger.Info("aggregation complete", map[string]interface{}{
		"articles": len(merged),
		"sources":  len(s.sources),
	})

	return merged, nil
}

// dedupKey identifies an article for duplicate detection. A struct key
// keeps distinct (title, source) pairs distinct even when a title
// contains separator characters.
type dedupKey struct {
	title  string
	source string
}

// Deduplicate removes duplicates by (lower(title), source), keeping the
// first occurrence.
func Deduplicate(articles []domain.Article) []domain.Article {
	seen := make(map[dedupKey]struct{}, len(articles))
	out := make([]domain.Article, 0, len(articles))

	for _, article := range articles {
		key := dedupKey{title: strings.ToLower(article.Title), source: article.Source}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, article)
	}

	return out
}

// SaveNews upserts the given articles into the durable store, keyed by
// title. With no storage configured it is a no-op.
func (s *Service) SaveNews(ctx context.Context, articles []domain.Article) error {
	if s.deps.Storage == nil {
		s.deps.Logger.Debug("news storage not configured, skipping persistence", nil)
		return nil
	}

	if len(articles) == 0 {
		return nil
	}

	if err := s.deps.Storage.UpsertArticles(ctx, articles); err != nil {
		return coreerrors.WrapError(err, "failed to persist articles")
	}

	if s.recorder != nil {
		s.recorder.AddPersisted(len(articles))
	}

	return nil
}

// SaveNewsAsync persists articles in the background. Failures reach the
// logging sink only; the caller's result is never unwound by them.
func (s *Service) SaveNewsAsync(articles []domain.Article) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()

		if err := s.SaveNews(ctx, articles); err != nil {
			s.deps.Logger.Error("background persistence failed", map[string]interface{}{
				"articles": len(articles),
				"error":    err.Error(),
			})
		}
	}()
}
