// ABOUTME: Hand-rolled test doubles for the news package tests
// ABOUTME: Implements the dependency interfaces with configurable functions

package news

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"time"

	"football-news-api/core/domain"
	"football-news-api/core/interfaces"
)

// mockLogger discards everything.
type mockLogger struct{}

func (mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (mockLogger) Info(msg string, fields map[string]interface{})  {}
func (mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (mockLogger) Error(msg string, fields map[string]interface{}) {}

// mockResponse wraps a status code and body string behind the Response
// interface.
type mockResponse struct {
	statusCode int
	body       string
	headers    map[string]string
}

func (m *mockResponse) StatusCode() int { return m.statusCode }

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	return m.headers[key]
}

// mockHTTPClient dispatches Get calls to a configurable function.
type mockHTTPClient struct {
	getFunc func(ctx context.Context, url string) (interfaces.Response, error)

	mu   sync.Mutex
	urls []string
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	m.mu.Lock()
	m.urls = append(m.urls, url)
	m.mu.Unlock()

	if m.getFunc != nil {
		return m.getFunc(ctx, url)
	}
	return nil, errors.New("no getFunc configured")
}

func (m *mockHTTPClient) requestedURLs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.urls...)
}

// mockCache is a map-backed cache that ignores TTLs.
type mockCache struct {
	mu   sync.Mutex
	data map[string][]byte
	sets int
}

func newMockCache() *mockCache {
	return &mockCache{data: make(map[string][]byte)}
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if value, ok := m.data[key]; ok {
		return value, nil
	}
	return nil, errors.New("cache miss")
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	m.sets++
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// mockStorage records persistence calls and serves canned scraped rows.
type mockStorage struct {
	mu sync.Mutex

	upserted  [][]domain.Article
	scraped   []domain.ScrapedArticle
	saved     [][]domain.ScrapedArticle
	upsertErr error
	latestErr error
}

func (m *mockStorage) UpsertArticles(ctx context.Context, articles []domain.Article) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.upsertErr != nil {
		return m.upsertErr
	}
	m.upserted = append(m.upserted, articles)
	return nil
}

func (m *mockStorage) LatestScraped(ctx context.Context, limit int) ([]domain.ScrapedArticle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.latestErr != nil {
		return nil, m.latestErr
	}
	if limit < len(m.scraped) {
		return m.scraped[:limit], nil
	}
	return m.scraped, nil
}

func (m *mockStorage) SaveScraped(ctx context.Context, articles []domain.ScrapedArticle) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saved = append(m.saved, articles)
	return nil
}

func (m *mockStorage) upsertCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.upserted)
}

// stubSource returns fixed articles or a fixed error.
type stubSource struct {
	name     string
	articles []domain.Article
	err      error
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) Fetch(ctx context.Context) ([]domain.Article, error) {
	return s.articles, s.err
}

func containsTag(tags []string, want string) bool {
	for _, tag := range tags {
		if tag == want {
			return true
		}
	}
	return false
}

// testDeps builds a dependency container from the mocks, tolerating nils.
func testDeps(client interfaces.HTTPClient, cache interfaces.Cache, storage interfaces.NewsStorage) interfaces.Dependencies {
	return interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: client,
		Logger:     mockLogger{},
		Storage:    storage,
	}
}
