package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/wikigrouth"
)

var _ wikigrouth.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   wikigrouth.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next wikigrouth.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the result size.
func (e *LoggingExtractor) Extract(markup string) (result *wikigrouth.ExtractionResult, err error) {
	defer func(begin time.Time) {
		var chars, entities int
		if result != nil {
			chars = len(result.Text)
			entities = len(result.Entities)
		}
		e.logger.Debug("extract",
			"bytes", len(markup),
			"text", chars,
			"entities", entities,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(markup)
}
