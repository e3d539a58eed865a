package mock

import (
	"context"

	"github.com/fwojciec/wikigrouth"
)

var _ wikigrouth.CorpusService = (*CorpusService)(nil)

// CorpusService is a mock implementation of wikigrouth.CorpusService.
type CorpusService struct {
	FindCorporaFn    func(ctx context.Context) ([]*wikigrouth.Corpus, error)
	FindCorpusByIDFn func(ctx context.Context, id string) (*wikigrouth.Corpus, error)
	FindDocumentsFn  func(ctx context.Context, corpusID string) ([]*wikigrouth.Document, error)
	FindMentionsFn   func(ctx context.Context, filter wikigrouth.MentionFilter) ([]*wikigrouth.Mention, error)
}

func (s *CorpusService) FindCorpora(ctx context.Context) ([]*wikigrouth.Corpus, error) {
	return s.FindCorporaFn(ctx)
}

func (s *CorpusService) FindCorpusByID(ctx context.Context, id string) (*wikigrouth.Corpus, error) {
	return s.FindCorpusByIDFn(ctx, id)
}

func (s *CorpusService) FindDocuments(ctx context.Context, corpusID string) ([]*wikigrouth.Document, error) {
	return s.FindDocumentsFn(ctx, corpusID)
}

func (s *CorpusService) FindMentions(ctx context.Context, filter wikigrouth.MentionFilter) ([]*wikigrouth.Mention, error) {
	return s.FindMentionsFn(ctx, filter)
}
