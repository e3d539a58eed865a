// Package http provides a MediaWiki API implementation of
// wikigrouth.MarkupSource.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fwojciec/wikigrouth"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultAPIURL is the English Wikipedia action API endpoint.
const DefaultAPIURL = wikigrouth.DefaultBaseURL + "/w/api.php"

// DefaultUserAgent identifies the tool to the MediaWiki API.
const DefaultUserAgent = "wikigrouth (https://github.com/fwojciec/wikigrouth)"

// Ensure Fetcher implements wikigrouth.MarkupSource at compile time.
var _ wikigrouth.MarkupSource = (*Fetcher)(nil)

// Fetcher retrieves rendered article HTML from the MediaWiki parse API.
// Redirects are followed, so a seed naming a redirect page resolves to its
// canonical article.
type Fetcher struct {
	client    *http.Client
	apiURL    string
	userAgent string
	timeout   time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithAPIURL sets the action API endpoint, e.g. a mirror or test server.
func WithAPIURL(apiURL string) Option {
	return func(f *Fetcher) {
		f.apiURL = apiURL
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithHTTPClient sets the underlying client. The timeout option is ignored
// when a client is supplied.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// NewFetcher creates a new MediaWiki Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		apiURL:    DefaultAPIURL,
		userAgent: DefaultUserAgent,
		timeout:   DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.client == nil {
		f.client = &http.Client{
			Timeout: f.timeout,
		}
	}

	return f
}

// parseResponse is the subset of an action=parse response we read.
type parseResponse struct {
	Parse *struct {
		Title  string `json:"title"`
		PageID int    `json:"pageid"`
		Text   string `json:"text"`
	} `json:"parse"`
	Error *struct {
		Code string `json:"code"`
		Info string `json:"info"`
	} `json:"error"`
}

// FetchMarkup returns the rendered HTML of the article named by uri.
// The article title is the last path segment of uri, so DBpedia resource
// and Wikipedia article addresses both work.
func (f *Fetcher) FetchMarkup(ctx context.Context, uri string) (string, error) {
	title := wikigrouth.ArticleTitle(uri)
	if title == "" {
		return "", wikigrouth.Errorf(wikigrouth.EINVALID, "no article title in %q", uri)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.requestURL(title), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, title)
	}

	var body parseResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode response for %s: %w", title, err)
	}

	if body.Error != nil {
		if body.Error.Code == "missingtitle" || body.Error.Code == "invalidtitle" {
			return "", wikigrouth.Errorf(wikigrouth.ENOTFOUND, "article %q not found", title)
		}
		return "", wikigrouth.Errorf(wikigrouth.EINTERNAL, "api error %s: %s", body.Error.Code, body.Error.Info)
	}
	if body.Parse == nil {
		return "", wikigrouth.Errorf(wikigrouth.EINTERNAL, "api returned no content for %q", title)
	}

	return body.Parse.Text, nil
}

func (f *Fetcher) requestURL(title string) string {
	q := url.Values{}
	q.Set("action", "parse")
	q.Set("page", title)
	q.Set("prop", "text")
	q.Set("redirects", "1")
	// Unwrapped output; the sanitizer drops every div.
	q.Set("wrapoutputclass", "")
	q.Set("format", "json")
	q.Set("formatversion", "2")
	return f.apiURL + "?" + q.Encode()
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
