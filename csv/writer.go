// Package csv writes the corpus document and entity indexes as CSV tables.
package csv

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/fwojciec/wikigrouth"
)

// Index file names inside the output directory.
const (
	IndexFile  = "index.csv"
	EntityFile = "entities.csv"
)

// Column headers.
var (
	IndexHeader  = []string{"doc_id", "uri", "html_file", "text_file"}
	EntityHeader = []string{"doc_id", "offset", "text", "uri", "in_seed"}
)

// Ensure Writer implements wikigrouth.CorpusWriter at compile time.
var _ wikigrouth.CorpusWriter = (*Writer)(nil)

// Writer writes index rows and entity rows to two CSV streams.
type Writer struct {
	index    *csv.Writer
	entities *csv.Writer
	closers  []io.Closer
}

// NewWriter creates a Writer over the given streams and writes both headers.
func NewWriter(index, entities io.Writer) (*Writer, error) {
	w := &Writer{
		index:    csv.NewWriter(index),
		entities: csv.NewWriter(entities),
	}
	if err := w.index.Write(IndexHeader); err != nil {
		return nil, err
	}
	if err := w.entities.Write(EntityHeader); err != nil {
		return nil, err
	}
	return w, nil
}

// Create creates index.csv and entities.csv in dir, truncating existing
// files, and returns a Writer that closes them on Close.
func Create(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	indexFile, err := os.Create(filepath.Join(dir, IndexFile))
	if err != nil {
		return nil, err
	}
	entityFile, err := os.Create(filepath.Join(dir, EntityFile))
	if err != nil {
		indexFile.Close()
		return nil, err
	}

	w, err := NewWriter(indexFile, entityFile)
	if err != nil {
		indexFile.Close()
		entityFile.Close()
		return nil, err
	}
	w.closers = []io.Closer{indexFile, entityFile}
	return w, nil
}

// CreateDocument writes an index row.
func (w *Writer) CreateDocument(ctx context.Context, doc *wikigrouth.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}
	return w.index.Write([]string{
		strconv.Itoa(doc.ID),
		doc.URI,
		doc.HTMLFile,
		doc.TextFile,
	})
}

// CreateMention writes an entity row. in_seed is written as 1 or 0.
func (w *Writer) CreateMention(ctx context.Context, m *wikigrouth.Mention) error {
	if err := m.Validate(); err != nil {
		return err
	}
	inSeed := "0"
	if m.InSeed {
		inSeed = "1"
	}
	return w.entities.Write([]string{
		strconv.Itoa(m.DocID),
		strconv.Itoa(m.Offset),
		m.Text,
		m.URI,
		inSeed,
	})
}

// Close flushes both tables and closes any files opened by Create.
func (w *Writer) Close() error {
	w.index.Flush()
	w.entities.Flush()
	errs := []error{w.index.Error(), w.entities.Error()}
	for _, c := range w.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}
