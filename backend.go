package ladle

import "context"

// Backend extracts a baseline recipe record from a page. Implementations
// never panic across this boundary and report failures as *Error values
// from the open type vocabulary.
type Backend interface {
	// Name identifies the backend in logs and diagnostics.
	Name() string

	// Extract parses the page markup and returns the baseline record.
	// url is the address the markup was fetched from, used for host and
	// canonical URL fallbacks. When wild is true, backends that normally
	// restrict themselves to known sites may fall back to generic
	// structured-data parsing.
	Extract(ctx context.Context, html, url string, wild bool) (*ScrapedRecipe, error)
}

// HostChecker reports which sites a backend supports by name. Backends with
// no closed host list (the generic structured-data parser) simply do not
// implement it.
type HostChecker interface {
	// SupportedHosts lists every host the backend has a site-specific
	// adapter for.
	SupportedHosts(ctx context.Context) ([]string, error)

	// IsHostSupported reports whether the host has a site-specific adapter.
	IsHostSupported(ctx context.Context, host string) (bool, error)
}

// Page is the outcome of fetching a URL.
type Page struct {
	// HTML is the response body.
	HTML string

	// FinalURL is the URL after following redirects. Login walls commonly
	// reveal themselves through the redirect target.
	FinalURL string

	// StatusCode is the HTTP status of the final response.
	StatusCode int
}

// Fetcher retrieves pages over the network. The context is honored at this
// boundary only; once extraction begins on fetched markup it runs to
// completion.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*Page, error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// Enhancer applies the deterministic post-processing pass that repairs and
// augments a baseline record using only the original markup and the record
// itself. Enhance is pure and total: it returns a new record, never mutates
// the baseline, and keeps the baseline value for any field whose enhancement
// fails internally.
type Enhancer interface {
	Enhance(html string, baseline *ScrapedRecipe) *ScrapedRecipe
}
