package wikigrouth

import (
	"io"
	"strings"
)

// SeedParser reads seed addresses from a seed file.
type SeedParser interface {
	ParseSeeds(r io.Reader) ([]string, error)
}

// Resolver maps an article address into the namespace seeds are
// compared in (e.g., a Wikipedia article address to its DBpedia resource).
type Resolver interface {
	Resolve(uri string) string
}

// SeedSet reports whether a resolved address is one of the corpus seeds.
type SeedSet interface {
	Contains(uri string) bool
}

// DedupeSeeds trims addresses, drops blanks and removes duplicates,
// keeping the first occurrence so document ids stay stable.
func DedupeSeeds(uris []string) []string {
	seen := make(map[string]bool, len(uris))
	out := make([]string, 0, len(uris))
	for _, u := range uris {
		u = strings.TrimSpace(u)
		if u == "" || seen[u] {
			continue
		}
		seen[u] = true
		out = append(out, u)
	}
	return out
}
