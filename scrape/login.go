package scrape

import (
	"context"

	"github.com/ladle-app/ladle"
)

// LoginHandler performs a site-specific login and returns a fetcher
// carrying the authenticated session (typically an HTTP client with a
// cookie jar).
type LoginHandler interface {
	Login(ctx context.Context, username, password string) (ladle.Fetcher, error)
}

// LoginHandlerFunc adapts a function to the LoginHandler interface.
type LoginHandlerFunc func(ctx context.Context, username, password string) (ladle.Fetcher, error)

func (f LoginHandlerFunc) Login(ctx context.Context, username, password string) (ladle.Fetcher, error) {
	return f(ctx, username, password)
}

// ScrapeAuthenticated logs in with a registered site handler and scrapes
// the URL through the authenticated session. Hosts without a handler fail
// with UnsupportedAuthSite; rejected credentials fail with
// AuthenticationFailed.
func (s *Scraper) ScrapeAuthenticated(ctx context.Context, url, username, password string) (result ladle.Result) {
	defer recoverToResult(&result)

	host := Host(url)
	handler, ok := s.logins[host]
	if !ok {
		return ladle.Fail(ladle.Errorf(ladle.ETUNSUPPORTEDAUTH, "no login support for %s", host).WithHost(host))
	}

	fetcher, err := handler.Login(ctx, username, password)
	if err != nil {
		return ladle.Fail(ladle.Errorf(ladle.ETAUTHFAILED, "login to %s: %s", host, ladle.ErrorMessage(err)).WithHost(host))
	}
	defer fetcher.Close()

	page, err := fetcher.Fetch(ctx, url)
	if err != nil {
		return ladle.Fail(err)
	}

	// A login wall after a successful-looking login means the session was
	// not accepted.
	if DetectAuthRequired(page.FinalURL, page.HTML) {
		return ladle.Fail(ladle.Errorf(ladle.ETAUTHFAILED, "session rejected by %s", host).WithHost(host))
	}

	return s.extract(ctx, page.HTML, url)
}
