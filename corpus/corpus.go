// Package corpus builds a coreference corpus from a list of seed
// articles. It coordinates loading markup, extraction and persistence
// of the per-article files and the document and entity indexes.
package corpus

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/fwojciec/wikigrouth"
	"golang.org/x/sync/errgroup"
)

// Builder builds a corpus from seed addresses.
type Builder struct {
	Source    wikigrouth.MarkupSource
	Store     wikigrouth.PageStore
	Extractor wikigrouth.Extractor
	Writer    wikigrouth.CorpusWriter
	Seeds     wikigrouth.SeedSet
	Resolver  wikigrouth.Resolver

	// Limiter, if set, is waited on before every fetch from Source.
	Limiter wikigrouth.DomainLimiter
	// APIHost is the rate limiting key. Defaults to the seed host.
	APIHost string

	// Override refetches articles and rewrites stored markup.
	Override    bool
	Concurrency int
	RetryDelays []time.Duration
}

// Result holds the outcome of a build.
type Result struct {
	Documents int
	Mentions  int
	Failed    int
}

// ProgressEvent reports progress during a build.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URI       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting build progress.
type ProgressFunc func(event ProgressEvent)

// loadResult holds the markup loaded for a single seed.
type loadResult struct {
	position int
	uri      string
	markup   string
	err      error
}

// Build loads, extracts and records every seed. Document ids are seed
// positions. Seeds that cannot be loaded or extracted are counted as
// failed and skipped; errors from the store or writer abort the build.
func (b *Builder) Build(ctx context.Context, seeds []string, progress ProgressFunc) (*Result, error) {
	total := len(seeds)
	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	results, err := b.loadAll(ctx, seeds)
	if err != nil {
		return nil, err
	}

	var result Result
	for i, loaded := range results {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if loaded.err != nil {
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: i + 1,
					Total:     total,
					URI:       loaded.uri,
					Error:     loaded.err,
				})
			}
			continue
		}

		extracted, err := b.Extractor.Extract(loaded.markup)
		if err != nil {
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: i + 1,
					Total:     total,
					URI:       loaded.uri,
					Error:     fmt.Errorf("extract: %w", err),
				})
			}
			continue
		}

		mentions, err := b.record(ctx, loaded, extracted)
		if err != nil {
			return nil, err
		}
		result.Documents++
		result.Mentions += mentions

		if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: i + 1,
				Total:     total,
				URI:       loaded.uri,
			})
		}
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
		})
	}

	return &result, nil
}

// loadAll loads the markup of every seed, at most Concurrency at a time.
// Results are returned in seed order.
func (b *Builder) loadAll(ctx context.Context, seeds []string) ([]loadResult, error) {
	concurrency := b.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	results := make([]loadResult, len(seeds))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, uri := range seeds {
		g.Go(func() error {
			markup, err := b.load(gctx, uri)
			results[i] = loadResult{
				position: i,
				uri:      uri,
				markup:   markup,
				err:      err,
			}
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// load returns stored markup for uri, fetching it when nothing is stored
// or Override is set.
func (b *Builder) load(ctx context.Context, uri string) (string, error) {
	if !b.Override {
		markup, err := b.Store.LoadMarkup(ctx, uri)
		if err == nil {
			return markup, nil
		}
		if wikigrouth.ErrorCode(err) != wikigrouth.ENOTFOUND {
			return "", fmt.Errorf("load stored markup: %w", err)
		}
	}

	delays := b.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	fetchFn := func(ctx context.Context, uri string) (string, error) {
		if b.Limiter != nil {
			if err := b.Limiter.Wait(ctx, b.limiterKey(uri)); err != nil {
				return "", err
			}
		}
		return b.Source.FetchMarkup(ctx, uri)
	}
	return FetchWithRetryDelays(ctx, uri, fetchFn, nil, delays)
}

func (b *Builder) limiterKey(uri string) string {
	if b.APIHost != "" {
		return b.APIHost
	}
	if u, err := url.Parse(uri); err == nil {
		return u.Host
	}
	return ""
}

// record persists one document and its mentions and returns the number
// of mentions written.
func (b *Builder) record(ctx context.Context, loaded loadResult, extracted *wikigrouth.ExtractionResult) (int, error) {
	if err := b.Store.SaveMarkup(ctx, loaded.uri, loaded.markup, b.Override); err != nil {
		return 0, fmt.Errorf("save markup for %s: %w", loaded.uri, err)
	}
	if err := b.Store.SaveText(ctx, loaded.uri, extracted.Text); err != nil {
		return 0, fmt.Errorf("save text for %s: %w", loaded.uri, err)
	}

	doc := &wikigrouth.Document{
		ID:       loaded.position,
		URI:      loaded.uri,
		HTMLFile: b.Store.MarkupFile(loaded.uri),
		TextFile: b.Store.TextFile(loaded.uri),
		Text:     extracted.Text,
	}
	if err := b.Writer.CreateDocument(ctx, doc); err != nil {
		return 0, fmt.Errorf("record document %d: %w", doc.ID, err)
	}

	for _, e := range extracted.Entities {
		m := &wikigrouth.Mention{
			DocID:  doc.ID,
			Offset: e.Offset,
			Text:   e.Text,
			URI:    e.URI,
			InSeed: b.inSeed(e.URI),
		}
		if err := b.Writer.CreateMention(ctx, m); err != nil {
			return 0, fmt.Errorf("record mention in document %d: %w", doc.ID, err)
		}
	}
	return len(extracted.Entities), nil
}

func (b *Builder) inSeed(uri string) bool {
	if b.Seeds == nil {
		return false
	}
	if b.Resolver != nil {
		uri = b.Resolver.Resolve(uri)
	}
	return b.Seeds.Contains(uri)
}
