package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/wikigrouth"
	"golang.org/x/net/html"
)

// Ensure Extractor implements wikigrouth.Extractor at compile time.
var _ wikigrouth.Extractor = (*Extractor)(nil)

// blockSelector matches the only elements that contribute to the output.
const blockSelector = "p, h1, h2, h3, h4, h5"

// Extractor parses article markup, sanitizes it and reconstructs the
// article's plain text with entity mentions.
type Extractor struct {
	baseURL string
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithBaseURL sets the origin prepended to link targets.
// Defaults to wikigrouth.DefaultBaseURL.
func WithBaseURL(baseURL string) Option {
	return func(e *Extractor) {
		e.baseURL = baseURL
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{baseURL: wikigrouth.DefaultBaseURL}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses markup, sanitizes the tree and extracts text and mentions.
func (e *Extractor) Extract(markup string) (*wikigrouth.ExtractionResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, wikigrouth.Errorf(wikigrouth.EINVALID, "failed to parse markup: %v", err)
	}
	return ExtractDocument(Sanitize(doc), e.baseURL), nil
}

// ExtractDocument walks the paragraphs and headings of an already
// sanitized document in document order.
//
// Paragraph children are appended one by one: text runs verbatim, elements
// as their flattened text. An anchor with an href records a mention at the
// offset where its text starts. Each paragraph ends with a newline.
// Headings are emitted as "== Title ==\n\n" and never yield mentions.
//
// Offsets count Unicode code points, and every character is appended
// exactly once before any later offset is taken, so each mention satisfies
// text[offset:offset+len(mention)] == mention in code points.
func ExtractDocument(doc *goquery.Document, baseURL string) *wikigrouth.ExtractionResult {
	var b strings.Builder
	entities := []wikigrouth.EntityMention{}
	offset := 0

	write := func(s string) {
		b.WriteString(s)
		offset += utf8.RuneCountInString(s)
	}

	doc.Find(blockSelector).Each(func(_ int, sel *goquery.Selection) {
		n := sel.Get(0)
		if n.FirstChild == nil {
			return
		}

		if n.Data == "p" {
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				switch c.Type {
				case html.TextNode:
					write(c.Data)
				case html.ElementNode:
					text := flattenText(c)
					if href, ok := attr(c, "href"); ok && c.Data == "a" {
						entities = append(entities, wikigrouth.EntityMention{
							Offset: offset,
							Text:   text,
							URI:    baseURL + href,
						})
					}
					write(text)
				}
			}
			write("\n")
			return
		}

		level := int(n.Data[1] - '0')
		fence := strings.Repeat("=", level)
		write(fence + " " + flattenText(n) + " " + fence + "\n\n")
	})

	return &wikigrouth.ExtractionResult{
		Text:     b.String(),
		Entities: entities,
	}
}

// flattenText concatenates the text of all descendant text nodes of n.
func flattenText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				b.WriteString(c.Data)
				continue
			}
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// attr returns the value of the named attribute and whether it is present.
func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}
