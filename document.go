package wikigrouth

import "context"

// Document is a row of the corpus document index.
type Document struct {
	ID       int    `json:"docId"`
	URI      string `json:"uri"`
	HTMLFile string `json:"htmlFile"`
	TextFile string `json:"textFile"`

	// Text is the extracted plain text. Writers that only record file
	// references ignore it.
	Text string `json:"-"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.ID < 0 {
		return Errorf(EINVALID, "document id must not be negative")
	}
	if d.URI == "" {
		return Errorf(EINVALID, "document uri required")
	}
	return nil
}

// Mention is a row of the corpus entity index.
type Mention struct {
	DocID  int    `json:"docId"`
	Offset int    `json:"offset"`
	Text   string `json:"text"`
	URI    string `json:"uri"`
	InSeed bool   `json:"inSeed"`
}

// Validate returns an error if the mention contains invalid fields.
func (m *Mention) Validate() error {
	if m.Offset < 0 {
		return Errorf(EINVALID, "mention offset must not be negative")
	}
	return nil
}

// CorpusWriter records the document and entity indexes of a corpus.
type CorpusWriter interface {
	// CreateDocument records a document index row.
	CreateDocument(ctx context.Context, doc *Document) error

	// CreateMention records an entity index row.
	CreateMention(ctx context.Context, m *Mention) error

	// Close flushes pending rows and releases resources.
	Close() error
}
