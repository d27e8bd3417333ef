package news

import (
	"context"
	"strings"
	"testing"

	"football-news-api/core/interfaces"
)

const testSearchBody = `{
  "status": "ok",
  "articles": [
    {
      "source": {"name": "BBC Sport"},
      "author": "A Reporter",
      "title": "Liverpool close in on Premier League title",
      "description": "A win on Saturday would leave Liverpool needing four more points.",
      "url": "https://example.com/liverpool-title",
      "urlToImage": "https://example.com/img.jpg",
      "publishedAt": "2026-03-01T12:00:00Z",
      "content": "Liverpool moved a step closer to the Premier League title on Saturday."
    },
    {
      "source": {"name": "Reuters"},
      "title": "Markets rally on central bank announcement",
      "description": "Stocks climbed after the rate decision.",
      "url": "https://example.com/markets",
      "publishedAt": "2026-03-01T11:00:00Z"
    },
    {
      "source": {"name": "BBC Sport"},
      "title": "Chelsea appoint new sporting director",
      "description": "The club confirmed the hire on Monday.",
      "url": "https://example.com/chelsea-director",
      "publishedAt": "yesterday afternoon"
    }
  ]
}`

func searchClientServing(body string) *mockHTTPClient {
	return &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: body}, nil
		},
	}
}

func TestSearchSource_Fetch(t *testing.T) {
	t.Run("no API key skips the source without error", func(t *testing.T) {
		client := &mockHTTPClient{}
		source := NewSearchSource(testDeps(client, nil, nil), SearchConfig{})

		articles, err := source.Fetch(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if articles != nil {
			t.Errorf("articles = %v, want nil", articles)
		}
		if len(client.requestedURLs()) != 0 {
			t.Error("request made despite missing API key")
		}
	})

	t.Run("issues one request per query", func(t *testing.T) {
		client := searchClientServing(`{"status":"ok","articles":[]}`)
		source := NewSearchSource(testDeps(client, nil, nil), SearchConfig{APIKey: "k"})

		if _, err := source.Fetch(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		urls := client.requestedURLs()
		if len(urls) != len(defaultSearchQueries) {
			t.Errorf("requests = %d, want %d", len(urls), len(defaultSearchQueries))
		}
		for _, u := range urls {
			if !strings.Contains(u, "apiKey=k") {
				t.Errorf("url %q missing API key parameter", u)
			}
			if !strings.Contains(u, "language=en") {
				t.Errorf("url %q missing language parameter", u)
			}
		}
	})

	t.Run("normalizes relevant records and drops the rest", func(t *testing.T) {
		client := searchClientServing(testSearchBody)
		source := NewSearchSource(testDeps(client, nil, nil),
			SearchConfig{APIKey: "k", Queries: []string{`"Premier League"`}})

		articles, err := source.Fetch(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Markets story is irrelevant; the Chelsea one carries a broken date.
		if len(articles) != 1 {
			t.Fatalf("len = %d, want 1", len(articles))
		}

		got := articles[0]
		if got.Title != "Liverpool close in on Premier League title" {
			t.Errorf("Title = %q", got.Title)
		}
		if got.Source != SearchSourceName {
			t.Errorf("Source = %q, want %q", got.Source, SearchSourceName)
		}
		if got.Author != "A Reporter" {
			t.Errorf("Author = %q", got.Author)
		}
		if got.PublishedAt.Format("2006-01-02") != "2026-03-01" {
			t.Errorf("PublishedAt = %v", got.PublishedAt)
		}
		if !strings.HasPrefix(got.ID, "search-") {
			t.Errorf("ID = %q, want search- prefix", got.ID)
		}
		// Scored: title length, image and a credible upstream outlet.
		if got.EngagementScore == 0 {
			t.Error("EngagementScore = 0, want a scored article")
		}
	})

	t.Run("repeat fetches yield the same article IDs", func(t *testing.T) {
		source := NewSearchSource(testDeps(searchClientServing(testSearchBody), nil, nil),
			SearchConfig{APIKey: "k", Queries: []string{"q"}})

		first, err := source.Fetch(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := source.Fetch(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(first) != 1 || len(second) != 1 {
			t.Fatalf("lens = %d, %d, want 1 each", len(first), len(second))
		}
		if first[0].ID != second[0].ID {
			t.Errorf("IDs differ across fetches: %q vs %q", first[0].ID, second[0].ID)
		}
	})

	t.Run("failed query contributes nothing but does not fail the fetch", func(t *testing.T) {
		client := &mockHTTPClient{
			getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
				if strings.Contains(url, "broken") {
					return &mockResponse{statusCode: 500, body: "oops"}, nil
				}
				return &mockResponse{statusCode: 200, body: testSearchBody}, nil
			},
		}
		source := NewSearchSource(testDeps(client, nil, nil),
			SearchConfig{APIKey: "k", Queries: []string{"broken", "good"}})

		articles, err := source.Fetch(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(articles) != 1 {
			t.Errorf("len = %d, want 1 from the good query", len(articles))
		}
	})

	t.Run("malformed payload fails the query gracefully", func(t *testing.T) {
		client := searchClientServing("<html>not json</html>")
		source := NewSearchSource(testDeps(client, nil, nil),
			SearchConfig{APIKey: "k", Queries: []string{"q"}})

		articles, err := source.Fetch(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(articles) != 0 {
			t.Errorf("len = %d, want 0", len(articles))
		}
	})
}
