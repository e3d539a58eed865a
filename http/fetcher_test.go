package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/wikigrouth"
	wghttp "github.com/fwojciec/wikigrouth/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_FetchMarkup(t *testing.T) {
	t.Parallel()

	t.Run("returns rendered article html", func(t *testing.T) {
		t.Parallel()

		var gotQuery map[string][]string
		var gotUA string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query()
			gotUA = r.Header.Get("User-Agent")
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"parse":{"title":"Graz","pageid":42,"text":"<p>Graz is a city.</p>"}}`))
		}))
		defer server.Close()

		fetcher := wghttp.NewFetcher(wghttp.WithAPIURL(server.URL), wghttp.WithUserAgent("test-agent"))
		defer fetcher.Close()

		html, err := fetcher.FetchMarkup(context.Background(), "http://dbpedia.org/resource/Graz")
		require.NoError(t, err)
		assert.Equal(t, "<p>Graz is a city.</p>", html)

		assert.Equal(t, []string{"parse"}, gotQuery["action"])
		assert.Equal(t, []string{"Graz"}, gotQuery["page"])
		assert.Equal(t, []string{"1"}, gotQuery["redirects"])
		assert.Equal(t, []string{"2"}, gotQuery["formatversion"])
		assert.Equal(t, []string{""}, gotQuery["wrapoutputclass"])
		assert.Equal(t, "test-agent", gotUA)
	})

	t.Run("decodes percent-encoded titles", func(t *testing.T) {
		t.Parallel()

		var gotPage string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPage = r.URL.Query().Get("page")
			_, _ = w.Write([]byte(`{"parse":{"text":"ok"}}`))
		}))
		defer server.Close()

		fetcher := wghttp.NewFetcher(wghttp.WithAPIURL(server.URL))

		_, err := fetcher.FetchMarkup(context.Background(), "http://dbpedia.org/resource/C%2B%2B")
		require.NoError(t, err)
		assert.Equal(t, "C++", gotPage)
	})

	t.Run("returns not found for missing articles", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"error":{"code":"missingtitle","info":"The page you specified doesn't exist."}}`))
		}))
		defer server.Close()

		fetcher := wghttp.NewFetcher(wghttp.WithAPIURL(server.URL))

		_, err := fetcher.FetchMarkup(context.Background(), "http://dbpedia.org/resource/Nope")
		require.Error(t, err)
		assert.Equal(t, wikigrouth.ENOTFOUND, wikigrouth.ErrorCode(err))
	})

	t.Run("returns internal error for other api errors", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"error":{"code":"ratelimited","info":"slow down"}}`))
		}))
		defer server.Close()

		fetcher := wghttp.NewFetcher(wghttp.WithAPIURL(server.URL))

		_, err := fetcher.FetchMarkup(context.Background(), "http://dbpedia.org/resource/Graz")
		require.Error(t, err)
		assert.Equal(t, wikigrouth.EINTERNAL, wikigrouth.ErrorCode(err))
		assert.Contains(t, wikigrouth.ErrorMessage(err), "ratelimited")
	})

	t.Run("rejects addresses without a title", func(t *testing.T) {
		t.Parallel()

		fetcher := wghttp.NewFetcher()

		_, err := fetcher.FetchMarkup(context.Background(), "http://dbpedia.org/")
		require.Error(t, err)
		assert.Equal(t, wikigrouth.EINVALID, wikigrouth.ErrorCode(err))
	})

	t.Run("returns error for non-200 status codes", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		fetcher := wghttp.NewFetcher(wghttp.WithAPIURL(server.URL))

		_, err := fetcher.FetchMarkup(context.Background(), "http://dbpedia.org/resource/Graz")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "503")
	})

	t.Run("returns error for malformed json", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>not json</html>`))
		}))
		defer server.Close()

		fetcher := wghttp.NewFetcher(wghttp.WithAPIURL(server.URL))

		_, err := fetcher.FetchMarkup(context.Background(), "http://dbpedia.org/resource/Graz")
		require.Error(t, err)
	})

	t.Run("respects custom timeout option", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte(`{"parse":{"text":"late"}}`))
		}))
		defer server.Close()

		fetcher := wghttp.NewFetcher(wghttp.WithAPIURL(server.URL), wghttp.WithTimeout(10*time.Millisecond))

		_, err := fetcher.FetchMarkup(context.Background(), "http://dbpedia.org/resource/Graz")
		require.Error(t, err)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"parse":{"text":"ok"}}`))
		}))
		defer server.Close()

		fetcher := wghttp.NewFetcher(wghttp.WithAPIURL(server.URL))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fetcher.FetchMarkup(ctx, "http://dbpedia.org/resource/Graz")
		require.Error(t, err)
	})
}

// Compile-time verification that Fetcher implements wikigrouth.MarkupSource
var _ wikigrouth.MarkupSource = (*wghttp.Fetcher)(nil)
