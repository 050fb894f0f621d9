package scrape

import (
	"context"

	"github.com/ladle-app/ladle"
)

// SupportedHosts lists the hosts the first host-aware backend supports.
// The generic parser keeps no host list, so a scraper with only generic
// backends reports none.
func (s *Scraper) SupportedHosts(ctx context.Context) ([]string, error) {
	for _, backend := range s.backends {
		if checker, ok := backend.(ladle.HostChecker); ok {
			return checker.SupportedHosts(ctx)
		}
	}
	return nil, nil
}

// IsHostSupported reports whether the first host-aware backend supports
// the host. Without one the answer is always false.
func (s *Scraper) IsHostSupported(ctx context.Context, host string) (bool, error) {
	for _, backend := range s.backends {
		if checker, ok := backend.(ladle.HostChecker); ok {
			return checker.IsHostSupported(ctx, host)
		}
	}
	return false, nil
}
