package mock

import (
	"context"

	"github.com/fwojciec/wikigrouth"
)

var _ wikigrouth.CorpusWriter = (*CorpusWriter)(nil)

// CorpusWriter is a mock implementation of wikigrouth.CorpusWriter.
type CorpusWriter struct {
	CreateDocumentFn func(ctx context.Context, doc *wikigrouth.Document) error
	CreateMentionFn  func(ctx context.Context, m *wikigrouth.Mention) error
	CloseFn          func() error
}

func (w *CorpusWriter) CreateDocument(ctx context.Context, doc *wikigrouth.Document) error {
	return w.CreateDocumentFn(ctx, doc)
}

func (w *CorpusWriter) CreateMention(ctx context.Context, m *wikigrouth.Mention) error {
	return w.CreateMentionFn(ctx, m)
}

func (w *CorpusWriter) Close() error {
	return w.CloseFn()
}
