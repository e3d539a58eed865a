package mock

import "github.com/fwojciec/wikigrouth"

var _ wikigrouth.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of wikigrouth.Extractor.
type Extractor struct {
	ExtractFn func(markup string) (*wikigrouth.ExtractionResult, error)
}

func (e *Extractor) Extract(markup string) (*wikigrouth.ExtractionResult, error) {
	return e.ExtractFn(markup)
}
