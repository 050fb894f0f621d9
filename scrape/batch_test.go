package scrape_test

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ladle-app/ladle"
	"github.com/ladle-app/ladle/mock"
	"github.com/ladle-app/ladle/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScraper_ScrapeAll(t *testing.T) {
	t.Parallel()

	t.Run("preserves input order and isolates failures", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (*ladle.Page, error) {
				if strings.Contains(url, "bad") {
					return nil, ladle.Errorf(ladle.ETFETCH, "HTTP 500 for %s", url)
				}
				return &ladle.Page{HTML: "<html></html>", FinalURL: url, StatusCode: 200}, nil
			},
		}
		backend := &mock.Backend{
			ExtractFn: func(ctx context.Context, html, url string, wild bool) (*ladle.ScrapedRecipe, error) {
				return &ladle.ScrapedRecipe{CanonicalURL: ladle.String(url)}, nil
			},
		}

		s := scrape.New(scrape.WithFetcher(fetcher), scrape.WithBackends(backend))

		urls := []string{
			"https://example.com/a",
			"https://example.com/bad",
			"https://example.com/c",
		}
		results := s.ScrapeAll(context.Background(), urls)
		require.Len(t, results, 3)

		require.True(t, results[0].Success)
		assert.Equal(t, urls[0], *results[0].Data.CanonicalURL)

		require.False(t, results[1].Success)
		assert.Equal(t, "FetchError", results[1].Err.Type)

		require.True(t, results[2].Success)
		assert.Equal(t, urls[2], *results[2].Data.CanonicalURL)
	})

	t.Run("bounds concurrent fetches", func(t *testing.T) {
		t.Parallel()

		var current, peak atomic.Int64
		var mu sync.Mutex

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (*ladle.Page, error) {
				n := current.Add(1)
				mu.Lock()
				if n > peak.Load() {
					peak.Store(n)
				}
				mu.Unlock()
				time.Sleep(5 * time.Millisecond)
				current.Add(-1)
				return &ladle.Page{HTML: "<html></html>", FinalURL: url, StatusCode: 200}, nil
			},
		}
		backend := &mock.Backend{
			ExtractFn: func(ctx context.Context, html, url string, wild bool) (*ladle.ScrapedRecipe, error) {
				return &ladle.ScrapedRecipe{}, nil
			},
		}

		s := scrape.New(
			scrape.WithFetcher(fetcher),
			scrape.WithBackends(backend),
			scrape.WithConcurrency(2),
		)

		urls := make([]string, 10)
		for i := range urls {
			urls[i] = "https://example.com/r"
		}
		results := s.ScrapeAll(context.Background(), urls)

		require.Len(t, results, 10)
		for _, res := range results {
			assert.True(t, res.Success)
		}
		assert.LessOrEqual(t, peak.Load(), int64(2))
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		s := scrape.New()
		assert.Empty(t, s.ScrapeAll(context.Background(), nil))
	})
}
