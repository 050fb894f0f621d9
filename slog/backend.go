// Package slog provides logging decorators for the domain interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/ladle-app/ladle"
)

// Ensure LoggingBackend implements ladle.Backend.
var _ ladle.Backend = (*LoggingBackend)(nil)

// LoggingBackend wraps a Backend with debug logging.
type LoggingBackend struct {
	next   ladle.Backend
	logger *slog.Logger
}

// NewLoggingBackend creates a new LoggingBackend.
func NewLoggingBackend(next ladle.Backend, logger *slog.Logger) *LoggingBackend {
	return &LoggingBackend{next: next, logger: logger}
}

// Name delegates to the wrapped backend.
func (b *LoggingBackend) Name() string {
	return b.next.Name()
}

// Extract delegates to the wrapped backend and logs the operation.
func (b *LoggingBackend) Extract(ctx context.Context, html, url string, wild bool) (recipe *ladle.ScrapedRecipe, err error) {
	defer func(begin time.Time) {
		b.logger.Info("extract",
			"backend", b.next.Name(),
			"url", url,
			"wild", wild,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return b.next.Extract(ctx, html, url, wild)
}
