// Package goquery implements wikigrouth.Extractor on top of goquery and
// the golang.org/x/net/html node tree.
package goquery

import "github.com/PuerkitoBio/goquery"

// Structural elements that carry navigation boxes, infoboxes and citation
// apparatus rather than article prose.
const structuralSelector = "table, div, ul, li, tr, th"

// Marker classes for edit-section links, error messages and content
// suppressed on mobile, print or excerpt renderings.
const markerSelector = ".mw-editsection, .error, .nomobile, .noprint, .noexcerpt"

// Footnote markers.
const referenceSelector = "sup.reference"

// Sanitize removes non-prose subtrees from doc in place and returns it.
// Removing nothing is not an error, so Sanitize is idempotent.
func Sanitize(doc *goquery.Document) *goquery.Document {
	for _, selector := range []string{structuralSelector, markerSelector, referenceSelector} {
		doc.Find(selector).Remove()
	}
	return doc
}
