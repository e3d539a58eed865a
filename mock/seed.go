package mock

import (
	"io"

	"github.com/fwojciec/wikigrouth"
)

var (
	_ wikigrouth.SeedParser = (*SeedParser)(nil)
	_ wikigrouth.Resolver   = (*Resolver)(nil)
	_ wikigrouth.SeedSet    = (*SeedSet)(nil)
)

// SeedParser is a mock implementation of wikigrouth.SeedParser.
type SeedParser struct {
	ParseSeedsFn func(r io.Reader) ([]string, error)
}

func (p *SeedParser) ParseSeeds(r io.Reader) ([]string, error) {
	return p.ParseSeedsFn(r)
}

// Resolver is a mock implementation of wikigrouth.Resolver.
type Resolver struct {
	ResolveFn func(uri string) string
}

func (r *Resolver) Resolve(uri string) string {
	return r.ResolveFn(uri)
}

// SeedSet is a mock implementation of wikigrouth.SeedSet.
type SeedSet struct {
	ContainsFn func(uri string) bool
}

func (s *SeedSet) Contains(uri string) bool {
	return s.ContainsFn(uri)
}
