// Package mock provides function-field mocks for the domain interfaces.
package mock

import (
	"context"

	"github.com/ladle-app/ladle"
)

var _ ladle.Backend = (*Backend)(nil)

// Backend is a mock implementation of ladle.Backend.
type Backend struct {
	NameFn    func() string
	ExtractFn func(ctx context.Context, html, url string, wild bool) (*ladle.ScrapedRecipe, error)
}

func (b *Backend) Name() string {
	if b.NameFn == nil {
		return "mock"
	}
	return b.NameFn()
}

func (b *Backend) Extract(ctx context.Context, html, url string, wild bool) (*ladle.ScrapedRecipe, error) {
	return b.ExtractFn(ctx, html, url, wild)
}

var _ ladle.HostChecker = (*HostChecker)(nil)

// HostChecker is a mock implementation of ladle.HostChecker.
type HostChecker struct {
	SupportedHostsFn  func(ctx context.Context) ([]string, error)
	IsHostSupportedFn func(ctx context.Context, host string) (bool, error)
}

func (c *HostChecker) SupportedHosts(ctx context.Context) ([]string, error) {
	return c.SupportedHostsFn(ctx)
}

func (c *HostChecker) IsHostSupported(ctx context.Context, host string) (bool, error) {
	return c.IsHostSupportedFn(ctx, host)
}

// CheckedBackend is a mock backend that also answers host queries.
type CheckedBackend struct {
	Backend
	HostChecker
}
