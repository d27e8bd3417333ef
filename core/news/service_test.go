package news

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"football-news-api/core/domain"
)

func testArticle(title, source string, published time.Time) domain.Article {
	return domain.Article{
		ID:          articleID("test", "", title, source, published),
		Title:       title,
		Content:     "Premier League report body",
		Excerpt:     "Premier League report",
		Source:      source,
		Category:    domain.CategoryPremierLeague,
		PublishedAt: published,
		ReadTime:    "1 min read",
	}
}

func TestDeduplicate(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("same title and source collapse case-insensitively", func(t *testing.T) {
		articles := []domain.Article{
			testArticle("Arsenal Beat Chelsea", "BBC Sport Football", now),
			testArticle("arsenal beat chelsea", "BBC Sport Football", now.Add(-time.Hour)),
		}

		out := Deduplicate(articles)

		if len(out) != 1 {
			t.Fatalf("len = %d, want 1", len(out))
		}
		if out[0].Title != "Arsenal Beat Chelsea" {
			t.Errorf("kept %q, want the first occurrence", out[0].Title)
		}
	})

	t.Run("same title from different sources both survive", func(t *testing.T) {
		articles := []domain.Article{
			testArticle("Arsenal beat Chelsea", "BBC Sport Football", now),
			testArticle("Arsenal beat Chelsea", "Sky Sports Football", now),
		}

		if out := Deduplicate(articles); len(out) != 2 {
			t.Errorf("len = %d, want 2", len(out))
		}
	})

	t.Run("separator characters in a title cannot collide keys", func(t *testing.T) {
		articles := []domain.Article{
			testArticle("Arsenal|Preview", "BBC", now),
			testArticle("Arsenal", "Preview|BBC", now),
		}

		if out := Deduplicate(articles); len(out) != 2 {
			t.Errorf("len = %d, want 2 distinct articles", len(out))
		}
	})

	t.Run("applying twice changes nothing", func(t *testing.T) {
		articles := []domain.Article{
			testArticle("A", "S1", now),
			testArticle("a", "S1", now),
			testArticle("B", "S2", now),
		}

		once := Deduplicate(articles)
		twice := Deduplicate(once)

		if len(once) != len(twice) {
			t.Errorf("second pass changed length: %d vs %d", len(once), len(twice))
		}
	})
}

func TestFetchAllNews(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("merges sources and sorts newest first", func(t *testing.T) {
		older := testArticle("Older story", "A", now.Add(-2*time.Hour))
		newest := testArticle("Newest story", "B", now)
		middle := testArticle("Middle story", "A", now.Add(-time.Hour))

		service := NewService(testDeps(nil, nil, nil), Config{},
			&stubSource{name: "A", articles: []domain.Article{older, middle}},
			&stubSource{name: "B", articles: []domain.Article{newest}},
		)

		got, err := service.FetchAllNews(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(got) != 3 {
			t.Fatalf("len = %d, want 3", len(got))
		}
		for i := 1; i < len(got); i++ {
			if got[i].PublishedAt.After(got[i-1].PublishedAt) {
				t.Errorf("articles out of order at %d: %v after %v", i, got[i].PublishedAt, got[i-1].PublishedAt)
			}
		}
		if got[0].Title != "Newest story" {
			t.Errorf("first article = %q, want Newest story", got[0].Title)
		}
	})

	t.Run("failing source does not abort the aggregation", func(t *testing.T) {
		ok := testArticle("Survivor", "B", now)

		service := NewService(testDeps(nil, nil, nil), Config{},
			&stubSource{name: "A", err: errors.New("upstream down")},
			&stubSource{name: "B", articles: []domain.Article{ok}},
		)

		got, err := service.FetchAllNews(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].Title != "Survivor" {
			t.Errorf("got %v, want just the surviving article", got)
		}
	})

	t.Run("all sources failing yields an empty list, not an error", func(t *testing.T) {
		service := NewService(testDeps(nil, nil, nil), Config{},
			&stubSource{name: "A", err: errors.New("down")},
			&stubSource{name: "B", err: errors.New("down")},
		)

		got, err := service.FetchAllNews(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("len = %d, want 0", len(got))
		}
	})

	t.Run("duplicates across sources keep the earlier source's copy", func(t *testing.T) {
		first := testArticle("Derby preview", "Shared", now)
		first.Content = "from the first source"
		second := testArticle("derby preview", "Shared", now)
		second.Content = "from the second source"

		service := NewService(testDeps(nil, nil, nil), Config{},
			&stubSource{name: "A", articles: []domain.Article{first}},
			&stubSource{name: "B", articles: []domain.Article{second}},
		)

		got, err := service.FetchAllNews(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("len = %d, want 1", len(got))
		}
		if got[0].Content != "from the first source" {
			t.Errorf("kept %q, want the first source's copy", got[0].Content)
		}
	})

	t.Run("result is capped at the configured maximum", func(t *testing.T) {
		articles := make([]domain.Article, 0, 60)
		for i := 0; i < 60; i++ {
			articles = append(articles, testArticle(
				fmt.Sprintf("Story %d", i), "A", now.Add(-time.Duration(i)*time.Minute)))
		}

		service := NewService(testDeps(nil, nil, nil), Config{},
			&stubSource{name: "A", articles: articles})

		got, err := service.FetchAllNews(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != DefaultMaxArticles {
			t.Errorf("len = %d, want %d", len(got), DefaultMaxArticles)
		}
		// The cap keeps the newest articles.
		if got[0].Title != "Story 0" {
			t.Errorf("first = %q, want Story 0", got[0].Title)
		}
	})

	t.Run("mixed sources merge into one sorted list", func(t *testing.T) {
		search := NewSearchSource(testDeps(&mockHTTPClient{}, nil, nil), SearchConfig{})

		rssArticles := []domain.Article{
			testArticle("Feed one", "BBC Sport Football", now.Add(-time.Minute)),
			testArticle("Feed two", "BBC Sport Football", now.Add(-2*time.Minute)),
			testArticle("Feed three", "Sky Sports Football", now.Add(-3*time.Minute)),
		}
		storeArticles := []domain.Article{
			testArticle("Scraped one", "Scraped", now.Add(-4*time.Minute)),
			testArticle("Scraped two", "Scraped", now.Add(-5*time.Minute)),
		}

		service := NewService(testDeps(nil, nil, nil), Config{},
			search, // no API key: contributes nothing
			&stubSource{name: "RSS", articles: rssArticles},
			&stubSource{name: "Scraped", articles: storeArticles},
		)

		got, err := service.FetchAllNews(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 5 {
			t.Fatalf("len = %d, want 5", len(got))
		}
		wantOrder := []string{"Feed one", "Feed two", "Feed three", "Scraped one", "Scraped two"}
		for i, want := range wantOrder {
			if got[i].Title != want {
				t.Errorf("position %d = %q, want %q", i, got[i].Title, want)
			}
		}
	})
}

func TestSaveNews(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("no storage configured is a no-op", func(t *testing.T) {
		service := NewService(testDeps(nil, nil, nil), Config{})

		err := service.SaveNews(context.Background(), []domain.Article{testArticle("A", "S", now)})
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("empty list skips the round trip", func(t *testing.T) {
		storage := &mockStorage{}
		service := NewService(testDeps(nil, nil, storage), Config{})

		if err := service.SaveNews(context.Background(), nil); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if storage.upsertCalls() != 0 {
			t.Errorf("upsert called %d times, want 0", storage.upsertCalls())
		}
	})

	t.Run("articles reach the store", func(t *testing.T) {
		storage := &mockStorage{}
		service := NewService(testDeps(nil, nil, storage), Config{})

		err := service.SaveNews(context.Background(), []domain.Article{
			testArticle("A", "S", now),
			testArticle("B", "S", now),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if storage.upsertCalls() != 1 {
			t.Fatalf("upsert called %d times, want 1", storage.upsertCalls())
		}
		if len(storage.upserted[0]) != 2 {
			t.Errorf("persisted %d articles, want 2", len(storage.upserted[0]))
		}
	})

	t.Run("storage failure is reported", func(t *testing.T) {
		storage := &mockStorage{upsertErr: errors.New("connection refused")}
		service := NewService(testDeps(nil, nil, storage), Config{})

		err := service.SaveNews(context.Background(), []domain.Article{testArticle("A", "S", now)})
		if err == nil {
			t.Error("expected an error")
		}
	})
}

func TestArticleID(t *testing.T) {
	published := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("same URL always yields the same ID", func(t *testing.T) {
		a := articleID("rss", "https://example.com/story", "Title A", "BBC", published)
		b := articleID("rss", "https://example.com/story", "Title B", "Sky", published.Add(time.Hour))

		if a != b {
			t.Errorf("IDs differ for the same URL: %q vs %q", a, b)
		}
	})

	t.Run("without a URL the content hash is stable", func(t *testing.T) {
		a := articleID("search", "", "Title", "BBC", published)
		b := articleID("search", "", "Title", "BBC", published)

		if a != b {
			t.Errorf("IDs differ for identical content: %q vs %q", a, b)
		}
	})

	t.Run("different content yields different IDs", func(t *testing.T) {
		a := articleID("search", "", "Title", "BBC", published)
		b := articleID("search", "", "Title", "Sky", published)

		if a == b {
			t.Errorf("IDs collide across sources: %q", a)
		}
	})
}
