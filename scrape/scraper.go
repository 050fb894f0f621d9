// Package scrape orchestrates the scraping pipeline: fetch, login-wall
// detection, backend extraction and enhancement. Results always come back
// in the uniform ladle.Result shape; no error or panic escapes a call.
package scrape

import (
	"context"
	"fmt"
	"time"

	"github.com/ladle-app/ladle"
	"golang.org/x/time/rate"
)

// DefaultConcurrency bounds parallel fetches during batch scraping.
const DefaultConcurrency = 4

// Scraper runs the scraping pipeline. Backends are tried in the order
// given; the first successful extraction wins and is then enhanced.
type Scraper struct {
	backends    []ladle.Backend
	fetcher     ladle.Fetcher
	enhancer    ladle.Enhancer
	wild        bool
	concurrency int
	limiter     *rate.Limiter
	logins      map[string]LoginHandler
}

// Option configures a Scraper.
type Option func(*Scraper)

// WithBackends sets the extraction backends, in priority order.
func WithBackends(backends ...ladle.Backend) Option {
	return func(s *Scraper) {
		s.backends = backends
	}
}

// WithFetcher sets the page fetcher used by ScrapeURL and ScrapeAll.
func WithFetcher(f ladle.Fetcher) Option {
	return func(s *Scraper) {
		s.fetcher = f
	}
}

// WithEnhancer sets the enhancement stage applied to every successful
// extraction.
func WithEnhancer(e ladle.Enhancer) Option {
	return func(s *Scraper) {
		s.enhancer = e
	}
}

// WithWildMode lets backends fall back to generic structured-data parsing
// for hosts they have no specialized support for.
func WithWildMode(wild bool) Option {
	return func(s *Scraper) {
		s.wild = wild
	}
}

// WithConcurrency bounds parallel fetches in ScrapeAll.
// Defaults to DefaultConcurrency.
func WithConcurrency(n int) Option {
	return func(s *Scraper) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// WithRateLimit enforces a minimum delay between fetches in ScrapeAll.
func WithRateLimit(delay time.Duration) Option {
	return func(s *Scraper) {
		if delay > 0 {
			s.limiter = rate.NewLimiter(rate.Every(delay), 1)
		}
	}
}

// WithLoginHandler registers a site-specific login flow for
// ScrapeAuthenticated, keyed by host (without the "www." prefix).
func WithLoginHandler(host string, h LoginHandler) Option {
	return func(s *Scraper) {
		s.logins[host] = h
	}
}

// New creates a Scraper.
func New(opts ...Option) *Scraper {
	s := &Scraper{
		concurrency: DefaultConcurrency,
		logins:      make(map[string]LoginHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ScrapeURL fetches the page and runs the full pipeline against it. The
// fetch is the only stage that observes ctx cancellation; once markup is in
// hand the pipeline runs to completion.
func (s *Scraper) ScrapeURL(ctx context.Context, url string) (result ladle.Result) {
	defer recoverToResult(&result)

	if s.fetcher == nil {
		return ladle.Fail(ladle.Errorf(ladle.ETUNSUPPORTED, "no fetcher configured"))
	}

	page, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return ladle.Fail(err)
	}

	if DetectAuthRequired(page.FinalURL, page.HTML) {
		return ladle.Fail(ladle.Errorf(ladle.ETAUTHREQUIRED, "login required for %s", url).WithHost(Host(url)))
	}

	return s.extract(ctx, page.HTML, url)
}

// ScrapeHTML runs extraction and enhancement on caller-supplied markup.
// There is no fetch and no login-wall check.
func (s *Scraper) ScrapeHTML(ctx context.Context, html, url string) (result ladle.Result) {
	defer recoverToResult(&result)
	return s.extract(ctx, html, url)
}

// extract tries each backend in order and enhances the first success.
func (s *Scraper) extract(ctx context.Context, html, url string) ladle.Result {
	if len(s.backends) == 0 {
		return ladle.Fail(ladle.Errorf(ladle.ETUNSUPPORTED, "no extraction backend configured"))
	}

	var lastErr error
	for _, backend := range s.backends {
		recipe, err := backend.Extract(ctx, html, url, s.wild)
		if err != nil {
			lastErr = err
			continue
		}
		if s.enhancer != nil {
			recipe = s.enhancer.Enhance(html, recipe)
		}
		return ladle.OK(recipe)
	}
	return ladle.Fail(lastErr)
}

// recoverToResult converts a panic anywhere in the pipeline into a failed
// result, so the boundary contract holds even for programming errors.
func recoverToResult(result *ladle.Result) {
	if p := recover(); p != nil {
		*result = ladle.Fail(ladle.Errorf(ladle.ETINTERNAL, "%s", fmt.Sprint(p)))
	}
}
