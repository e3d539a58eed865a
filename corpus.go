package wikigrouth

import (
	"context"
	"time"
)

// Corpus identifies one recorded build of a corpus.
type Corpus struct {
	ID        string    `json:"id"`
	SeedFile  string    `json:"seedFile"`
	CreatedAt time.Time `json:"createdAt"`
}

// CorpusService reads recorded corpora back.
type CorpusService interface {
	// FindCorpora returns all recorded builds, newest first.
	FindCorpora(ctx context.Context) ([]*Corpus, error)

	// FindCorpusByID retrieves a build by ID.
	// Returns ENOTFOUND if the corpus does not exist.
	FindCorpusByID(ctx context.Context, id string) (*Corpus, error)

	// FindDocuments returns the document index of a build, by doc id.
	FindDocuments(ctx context.Context, corpusID string) ([]*Document, error)

	// FindMentions returns entity rows matching the filter in document order.
	FindMentions(ctx context.Context, filter MentionFilter) ([]*Mention, error)
}

// MentionFilter represents a filter for FindMentions.
type MentionFilter struct {
	CorpusID string  `json:"corpusId"`
	DocID    *int    `json:"docId"`
	URI      *string `json:"uri"`
	InSeed   *bool   `json:"inSeed"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
