package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/wikigrouth"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var (
	_ wikigrouth.CorpusWriter  = (*CorpusWriter)(nil)
	_ wikigrouth.CorpusService = (*CorpusService)(nil)
)

// hashContent computes the zero-padded xxHash of content as hex.
func hashContent(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}

// CorpusWriter records one corpus build. Every writer owns a fresh corpora
// row, so repeated builds into the same database are kept apart.
type CorpusWriter struct {
	db     *DB
	corpus *wikigrouth.Corpus

	mu        sync.Mutex
	positions map[int]int
}

// NewCorpusWriter registers a new corpus build for seedFile.
func NewCorpusWriter(ctx context.Context, db *DB, seedFile string) (*CorpusWriter, error) {
	corpus := &wikigrouth.Corpus{
		ID:        uuid.New().String(),
		SeedFile:  seedFile,
		CreatedAt: time.Now().UTC(),
	}

	_, err := db.ExecContext(ctx, `
		INSERT INTO corpora (id, seed_file, created_at)
		VALUES (?, ?, ?)
	`, corpus.ID, corpus.SeedFile, corpus.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return nil, err
	}

	return &CorpusWriter{
		db:        db,
		corpus:    corpus,
		positions: make(map[int]int),
	}, nil
}

// Corpus returns the build this writer records into.
func (w *CorpusWriter) Corpus() *wikigrouth.Corpus {
	return w.corpus
}

// CreateDocument records a document together with its text and content hash.
func (w *CorpusWriter) CreateDocument(ctx context.Context, doc *wikigrouth.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	_, err := w.db.ExecContext(ctx, `
		INSERT INTO documents (corpus_id, doc_id, uri, html_file, text_file, content, content_hash)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, w.corpus.ID, doc.ID, doc.URI, doc.HTMLFile, doc.TextFile, doc.Text, hashContent(doc.Text))

	return err
}

// CreateMention records an entity row after the previous rows of its document.
func (w *CorpusWriter) CreateMention(ctx context.Context, m *wikigrouth.Mention) error {
	if err := m.Validate(); err != nil {
		return err
	}

	w.mu.Lock()
	position := w.positions[m.DocID]
	w.positions[m.DocID] = position + 1
	w.mu.Unlock()

	_, err := w.db.ExecContext(ctx, `
		INSERT INTO mentions (corpus_id, doc_id, position, char_offset, text, uri, in_seed)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, w.corpus.ID, m.DocID, position, m.Offset, m.Text, m.URI, m.InSeed)

	return err
}

// Close is a no-op; the DB is owned by the caller.
func (w *CorpusWriter) Close() error {
	return nil
}

// CorpusService implements wikigrouth.CorpusService using SQLite.
type CorpusService struct {
	db *DB
}

// NewCorpusService creates a new CorpusService.
func NewCorpusService(db *DB) *CorpusService {
	return &CorpusService{db: db}
}

// FindCorpora returns all recorded builds, newest first.
func (s *CorpusService) FindCorpora(ctx context.Context) ([]*wikigrouth.Corpus, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, seed_file, created_at
		FROM corpora
		ORDER BY created_at DESC, rowid DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var corpora []*wikigrouth.Corpus
	for rows.Next() {
		var c wikigrouth.Corpus
		var createdAt string
		if err := rows.Scan(&c.ID, &c.SeedFile, &createdAt); err != nil {
			return nil, err
		}
		if c.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}
		corpora = append(corpora, &c)
	}

	return corpora, rows.Err()
}

// FindCorpusByID retrieves a build by ID.
func (s *CorpusService) FindCorpusByID(ctx context.Context, id string) (*wikigrouth.Corpus, error) {
	var c wikigrouth.Corpus
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, seed_file, created_at
		FROM corpora
		WHERE id = ?
	`, id).Scan(&c.ID, &c.SeedFile, &createdAt)

	if err == sql.ErrNoRows {
		return nil, wikigrouth.Errorf(wikigrouth.ENOTFOUND, "corpus not found")
	}
	if err != nil {
		return nil, err
	}

	if c.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	return &c, nil
}

// FindDocuments returns the document index of a build, by doc id.
func (s *CorpusService) FindDocuments(ctx context.Context, corpusID string) ([]*wikigrouth.Document, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT doc_id, uri, html_file, text_file, content
		FROM documents
		WHERE corpus_id = ?
		ORDER BY doc_id ASC
	`, corpusID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*wikigrouth.Document
	for rows.Next() {
		var doc wikigrouth.Document
		if err := rows.Scan(&doc.ID, &doc.URI, &doc.HTMLFile, &doc.TextFile, &doc.Text); err != nil {
			return nil, err
		}
		docs = append(docs, &doc)
	}

	return docs, rows.Err()
}

// FindMentions returns entity rows matching the filter in document order.
func (s *CorpusService) FindMentions(ctx context.Context, filter wikigrouth.MentionFilter) ([]*wikigrouth.Mention, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT doc_id, char_offset, text, uri, in_seed FROM mentions WHERE corpus_id = ?")
	args = append(args, filter.CorpusID)

	if filter.DocID != nil {
		query.WriteString(" AND doc_id = ?")
		args = append(args, *filter.DocID)
	}
	if filter.URI != nil {
		query.WriteString(" AND uri = ?")
		args = append(args, *filter.URI)
	}
	if filter.InSeed != nil {
		query.WriteString(" AND in_seed = ?")
		args = append(args, *filter.InSeed)
	}

	query.WriteString(" ORDER BY doc_id ASC, position ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var mentions []*wikigrouth.Mention
	for rows.Next() {
		var m wikigrouth.Mention
		if err := rows.Scan(&m.DocID, &m.Offset, &m.Text, &m.URI, &m.InSeed); err != nil {
			return nil, err
		}
		mentions = append(mentions, &m)
	}

	return mentions, rows.Err()
}
