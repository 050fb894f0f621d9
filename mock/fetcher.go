package mock

import (
	"context"

	"github.com/ladle-app/ladle"
)

var _ ladle.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of ladle.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*ladle.Page, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*ladle.Page, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}

var _ ladle.Enhancer = (*Enhancer)(nil)

// Enhancer is a mock implementation of ladle.Enhancer.
type Enhancer struct {
	EnhanceFn func(html string, baseline *ladle.ScrapedRecipe) *ladle.ScrapedRecipe
}

func (e *Enhancer) Enhance(html string, baseline *ladle.ScrapedRecipe) *ladle.ScrapedRecipe {
	if e.EnhanceFn == nil {
		return baseline
	}
	return e.EnhanceFn(html, baseline)
}
