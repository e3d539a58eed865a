package corpus

import (
	"context"
	"errors"

	"github.com/fwojciec/wikigrouth"
)

var _ wikigrouth.CorpusWriter = (*MultiWriter)(nil)

// MultiWriter records every row with each of its writers in turn.
type MultiWriter struct {
	writers []wikigrouth.CorpusWriter
}

// NewMultiWriter returns a writer that fans out to writers.
func NewMultiWriter(writers ...wikigrouth.CorpusWriter) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// CreateDocument records doc with every writer, stopping at the first error.
func (w *MultiWriter) CreateDocument(ctx context.Context, doc *wikigrouth.Document) error {
	for _, cw := range w.writers {
		if err := cw.CreateDocument(ctx, doc); err != nil {
			return err
		}
	}
	return nil
}

// CreateMention records m with every writer, stopping at the first error.
func (w *MultiWriter) CreateMention(ctx context.Context, m *wikigrouth.Mention) error {
	for _, cw := range w.writers {
		if err := cw.CreateMention(ctx, m); err != nil {
			return err
		}
	}
	return nil
}

// Close closes every writer and returns the joined errors.
func (w *MultiWriter) Close() error {
	var errs []error
	for _, cw := range w.writers {
		if err := cw.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
