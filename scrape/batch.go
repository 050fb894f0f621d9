package scrape

import (
	"context"

	"github.com/ladle-app/ladle"
	"golang.org/x/sync/errgroup"
)

// ScrapeAll scrapes every URL, bounded by the configured concurrency and
// rate limit. Results are returned in input order; a failure for one URL
// never aborts the others.
func (s *Scraper) ScrapeAll(ctx context.Context, urls []string) []ladle.Result {
	results := make([]ladle.Result, len(urls))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, url := range urls {
		i, url := i, url
		g.Go(func() error {
			if s.limiter != nil {
				if err := s.limiter.Wait(ctx); err != nil {
					results[i] = ladle.Fail(ladle.Errorf(ladle.ETFETCH, "fetch %s: %s", url, err))
					return nil
				}
			}
			results[i] = s.ScrapeURL(ctx, url)
			return nil
		})
	}

	_ = g.Wait()
	return results
}
