package mock

import (
	"context"

	"github.com/fwojciec/wikigrouth"
)

var (
	_ wikigrouth.MarkupSource  = (*MarkupSource)(nil)
	_ wikigrouth.PageStore     = (*PageStore)(nil)
	_ wikigrouth.DomainLimiter = (*DomainLimiter)(nil)
)

// MarkupSource is a mock implementation of wikigrouth.MarkupSource.
type MarkupSource struct {
	FetchMarkupFn func(ctx context.Context, uri string) (string, error)
}

func (s *MarkupSource) FetchMarkup(ctx context.Context, uri string) (string, error) {
	return s.FetchMarkupFn(ctx, uri)
}

// PageStore is a mock implementation of wikigrouth.PageStore.
type PageStore struct {
	LoadMarkupFn func(ctx context.Context, uri string) (string, error)
	SaveMarkupFn func(ctx context.Context, uri, markup string, override bool) error
	SaveTextFn   func(ctx context.Context, uri, text string) error
	MarkupFileFn func(uri string) string
	TextFileFn   func(uri string) string
}

func (s *PageStore) LoadMarkup(ctx context.Context, uri string) (string, error) {
	return s.LoadMarkupFn(ctx, uri)
}

func (s *PageStore) SaveMarkup(ctx context.Context, uri, markup string, override bool) error {
	return s.SaveMarkupFn(ctx, uri, markup, override)
}

func (s *PageStore) SaveText(ctx context.Context, uri, text string) error {
	return s.SaveTextFn(ctx, uri, text)
}

func (s *PageStore) MarkupFile(uri string) string {
	return s.MarkupFileFn(uri)
}

func (s *PageStore) TextFile(uri string) string {
	return s.TextFileFn(uri)
}

// DomainLimiter is a mock implementation of wikigrouth.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
