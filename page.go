package wikigrouth

import (
	"context"
	"net/url"
	"path"
	"strings"
)

// MarkupSource supplies rendered article markup for a seed address.
type MarkupSource interface {
	// FetchMarkup returns the markup of the article named by uri.
	// Returns ENOTFOUND if the article does not exist.
	FetchMarkup(ctx context.Context, uri string) (string, error)
}

// PageStore persists per-document markup and text files. Stored markup
// doubles as a cache for later builds.
type PageStore interface {
	// LoadMarkup returns previously stored markup for uri.
	// Returns ENOTFOUND if nothing is stored.
	LoadMarkup(ctx context.Context, uri string) (string, error)

	// SaveMarkup stores markup for uri. An existing file is kept unless
	// override is set.
	SaveMarkup(ctx context.Context, uri, markup string, override bool) error

	// SaveText stores the extracted text for uri, replacing any previous file.
	SaveText(ctx context.Context, uri, text string) error

	// MarkupFile returns the markup file name for uri, relative to the store.
	MarkupFile(uri string) string

	// TextFile returns the text file name for uri, relative to the store.
	TextFile(uri string) string
}

// ArticleTitle returns the article title named by an article address:
// the last path segment, percent-decoded, with spaces as underscores.
// Both http://dbpedia.org/resource/Foo_Bar and
// http://en.wikipedia.org/wiki/Foo%20Bar yield "Foo_Bar". Returns an empty
// string if the address has no path segment or cannot be parsed.
func ArticleTitle(uri string) string {
	u, err := url.Parse(strings.TrimSpace(uri))
	if err != nil {
		return ""
	}

	p := strings.TrimRight(u.Path, "/")
	if p == "" {
		return ""
	}
	title := path.Base(p)
	if title == "." || title == "/" {
		return ""
	}
	return strings.ReplaceAll(strings.TrimSpace(title), " ", "_")
}

// DomainLimiter provides per-host rate limiting of article requests.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
