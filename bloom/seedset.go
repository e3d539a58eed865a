package bloom

import "github.com/fwojciec/wikigrouth"

// DefaultFalsePositiveRate sizes the filter of a SeedSet.
const DefaultFalsePositiveRate = 0.001

// Ensure SeedSet implements wikigrouth.SeedSet at compile time.
var _ wikigrouth.SeedSet = (*SeedSet)(nil)

// SeedSet answers exact membership queries for resolved seed addresses.
// Most link targets are not seeds; the filter rejects those without
// touching the map, and the map confirms the rest.
type SeedSet struct {
	filter *Filter
	seeds  map[string]struct{}
}

// NewSeedSet creates a SeedSet of seeds, each passed through resolver
// first. A nil resolver keeps addresses as they are.
func NewSeedSet(seeds []string, resolver wikigrouth.Resolver) *SeedSet {
	s := &SeedSet{
		filter: NewFilter(uint(len(seeds)), DefaultFalsePositiveRate),
		seeds:  make(map[string]struct{}, len(seeds)),
	}
	for _, uri := range seeds {
		if resolver != nil {
			uri = resolver.Resolve(uri)
		}
		s.filter.Add(uri)
		s.seeds[uri] = struct{}{}
	}
	return s
}

// Contains reports whether uri is one of the seeds.
func (s *SeedSet) Contains(uri string) bool {
	if !s.filter.Test(uri) {
		return false
	}
	_, ok := s.seeds[uri]
	return ok
}

// Len returns the number of distinct seeds.
func (s *SeedSet) Len() int {
	return len(s.seeds)
}
