// Package slog provides log/slog decorators for the wikigrouth
// interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/wikigrouth"
)

// Ensure LoggingMarkupSource implements wikigrouth.MarkupSource.
var _ wikigrouth.MarkupSource = (*LoggingMarkupSource)(nil)

// LoggingMarkupSource wraps a MarkupSource with debug logging.
type LoggingMarkupSource struct {
	next   wikigrouth.MarkupSource
	logger *slog.Logger
}

// NewLoggingMarkupSource creates a new LoggingMarkupSource.
func NewLoggingMarkupSource(next wikigrouth.MarkupSource, logger *slog.Logger) *LoggingMarkupSource {
	return &LoggingMarkupSource{next: next, logger: logger}
}

// FetchMarkup delegates to the wrapped source and logs the request.
func (s *LoggingMarkupSource) FetchMarkup(ctx context.Context, uri string) (markup string, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("fetch markup",
			"uri", uri,
			"bytes", len(markup),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FetchMarkup(ctx, uri)
}
