// Package http provides an HTTP-based implementation of ladle.Fetcher for
// retrieving recipe pages.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/ladle-app/ladle"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent is sent with every request. Several recipe sites return
// an error page to clients without a browser-like user agent.
const DefaultUserAgent = "Mozilla/5.0"

// Ensure Fetcher implements ladle.Fetcher at compile time.
var _ ladle.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves recipe pages over HTTP. It follows redirects and
// reports the final resolved URL, which the caller inspects for login
// redirection.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithClient supplies a pre-configured HTTP client, e.g. one carrying a
// cookie jar for an authenticated session. The timeout option still applies.
func WithClient(client *http.Client) Option {
	return func(f *Fetcher) {
		f.client = client
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.client == nil {
		f.client = &http.Client{}
	}
	f.client.Timeout = f.timeout

	return f
}

// Fetch retrieves the page at the given URL. Network failures and non-2xx
// responses are reported as FetchError.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*ladle.Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, ladle.Errorf(ladle.ETFETCH, "invalid URL %s: %s", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, ladle.Errorf(ladle.ETFETCH, "fetch %s: %s", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, ladle.Errorf(ladle.ETFETCH, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, ladle.Errorf(ladle.ETFETCH, "read %s: %s", url, err)
	}

	return &ladle.Page{
		HTML:       string(body),
		FinalURL:   resp.Request.URL.String(),
		StatusCode: resp.StatusCode,
	}, nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
