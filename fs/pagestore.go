// Package fs provides file-based storage for corpus documents.
package fs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/wikigrouth"
)

// Subdirectories of the output directory.
const (
	HTMLDir = "html"
	TextDir = "text"
)

// emptyMarkup is stored in place of an empty page so the file exists and
// the cache entry is recognisable.
const emptyMarkup = "EMPTY"

// Ensure PageStore implements wikigrouth.PageStore at compile time.
var _ wikigrouth.PageStore = (*PageStore)(nil)

// PageStore writes markup to <baseDir>/html/<name>.html and text to
// <baseDir>/text/<name>.txt, where name is the escaped article title of
// the seed. Files are written to a temporary name and renamed into place.
type PageStore struct {
	baseDir string
}

// NewPageStore creates a new PageStore rooted at baseDir.
func NewPageStore(baseDir string) *PageStore {
	return &PageStore{baseDir: baseDir}
}

// reservedChars cannot appear in file names on common filesystems.
const reservedChars = `\:*?"<>|`

// Name returns the file base name used for uri, without extension: the
// decoded article title, with reserved and control characters
// percent-escaped.
// Example: http://dbpedia.org/resource/Mur_(river) → Mur_(river)
func Name(uri string) string {
	title := wikigrouth.ArticleTitle(uri)
	if title == "" {
		return "_"
	}

	var b strings.Builder
	for _, r := range title {
		if r < 0x20 || r == 0x7f || r == '%' || strings.ContainsRune(reservedChars, r) {
			fmt.Fprintf(&b, "%%%02X", r)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// MarkupFile returns the markup file name for uri.
func (s *PageStore) MarkupFile(uri string) string {
	return Name(uri) + ".html"
}

// TextFile returns the text file name for uri.
func (s *PageStore) TextFile(uri string) string {
	return Name(uri) + ".txt"
}

func (s *PageStore) markupPath(uri string) string {
	return filepath.Join(s.baseDir, HTMLDir, s.MarkupFile(uri))
}

func (s *PageStore) textPath(uri string) string {
	return filepath.Join(s.baseDir, TextDir, s.TextFile(uri))
}

// LoadMarkup reads previously stored markup for uri.
func (s *PageStore) LoadMarkup(ctx context.Context, uri string) (string, error) {
	data, err := os.ReadFile(s.markupPath(uri))
	if errors.Is(err, fs.ErrNotExist) {
		return "", wikigrouth.Errorf(wikigrouth.ENOTFOUND, "no stored markup for %q", uri)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// SaveMarkup stores markup for uri. An existing file is left untouched
// unless override is set.
func (s *PageStore) SaveMarkup(ctx context.Context, uri, markup string, override bool) error {
	path := s.markupPath(uri)
	if !override {
		if _, err := os.Stat(path); err == nil {
			return nil
		}
	}
	if markup == "" {
		markup = emptyMarkup
	}
	return writeFile(path, markup)
}

// SaveText stores the extracted text for uri, replacing any previous file.
func (s *PageStore) SaveText(ctx context.Context, uri, text string) error {
	return writeFile(s.textPath(uri), text)
}

// writeFile writes content to path.tmp and renames it to path.
func writeFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(content), 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
