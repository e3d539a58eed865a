package slog

import (
	"context"
	"log/slog"

	"github.com/fwojciec/wikigrouth"
)

var _ wikigrouth.CorpusWriter = (*LoggingCorpusWriter)(nil)

// LoggingCorpusWriter wraps a CorpusWriter and logs every recorded document.
// Mentions are only logged when they fail.
type LoggingCorpusWriter struct {
	next   wikigrouth.CorpusWriter
	logger *slog.Logger
}

// NewLoggingCorpusWriter creates a new LoggingCorpusWriter.
func NewLoggingCorpusWriter(next wikigrouth.CorpusWriter, logger *slog.Logger) *LoggingCorpusWriter {
	return &LoggingCorpusWriter{next: next, logger: logger}
}

func (w *LoggingCorpusWriter) CreateDocument(ctx context.Context, doc *wikigrouth.Document) (err error) {
	defer func() {
		w.logger.Debug("record document",
			"doc", doc.ID,
			"uri", doc.URI,
			"err", err,
		)
	}()
	return w.next.CreateDocument(ctx, doc)
}

func (w *LoggingCorpusWriter) CreateMention(ctx context.Context, m *wikigrouth.Mention) error {
	err := w.next.CreateMention(ctx, m)
	if err != nil {
		w.logger.Error("record mention",
			"doc", m.DocID,
			"offset", m.Offset,
			"uri", m.URI,
			"err", err,
		)
	}
	return err
}

func (w *LoggingCorpusWriter) Close() error {
	err := w.next.Close()
	w.logger.Debug("close corpus writer", "err", err)
	return err
}
