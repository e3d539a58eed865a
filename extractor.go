package wikigrouth

// DefaultBaseURL is the site origin prepended to site-relative link targets.
const DefaultBaseURL = "http://en.wikipedia.org"

// EntityMention is an inline hyperlink occurrence within article prose.
type EntityMention struct {
	// Offset is the zero-based character (Unicode code point) position in
	// the extracted text at which Text begins.
	Offset int `json:"offset"`

	// Text is the anchor's flattened text.
	Text string `json:"text"`

	// URI is the absolute link target: base origin + href.
	URI string `json:"uri"`
}

// ExtractionResult holds the plain text of an article and the entity
// mentions found in its paragraphs, in document order.
type ExtractionResult struct {
	Text     string          `json:"text"`
	Entities []EntityMention `json:"entities"`
}

// Extractor turns article markup into plain text and entity mentions.
type Extractor interface {
	// Extract parses markup, removes non-prose structure and returns the
	// reconstructed text. Returns EINVALID if the markup cannot be parsed.
	Extract(markup string) (*ExtractionResult, error)
}
