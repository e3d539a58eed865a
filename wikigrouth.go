// Package wikigrouth builds coreference ground-truth corpora from
// Wikipedia. It resolves a list of seed articles, fetches their rendered
// markup, strips non-prose structure and extracts plain text together
// with the position of every inline link ("entity mention").
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, bloom/).
package wikigrouth
