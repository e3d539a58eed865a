// Package dbpedia maps Wikipedia article addresses to DBpedia resources,
// the namespace seed files name articles in.
package dbpedia

import (
	"strings"

	"github.com/fwojciec/wikigrouth"
)

// DefaultResourceBase is the DBpedia resource namespace.
const DefaultResourceBase = "http://dbpedia.org/resource/"

// Ensure Resolver implements wikigrouth.Resolver at compile time.
var _ wikigrouth.Resolver = (*Resolver)(nil)

// Resolver maps <WikiBase>/wiki/<Title> and <ResourceBase><Title> to
// <ResourceBase><Title> with the title normalized by wikigrouth.ArticleTitle.
// Any other address is returned unchanged.
type Resolver struct {
	WikiBase     string
	ResourceBase string
}

// NewResolver returns a Resolver for the given wiki origin and the
// default DBpedia namespace.
func NewResolver(wikiBase string) *Resolver {
	return &Resolver{
		WikiBase:     wikiBase,
		ResourceBase: DefaultResourceBase,
	}
}

// Resolve returns the DBpedia resource for an article address.
func (r *Resolver) Resolve(uri string) string {
	uri = strings.TrimSpace(uri)
	if !r.isArticle(uri) {
		return uri
	}
	title := wikigrouth.ArticleTitle(uri)
	if title == "" {
		return uri
	}
	return r.ResourceBase + title
}

func (r *Resolver) isArticle(uri string) bool {
	if r.ResourceBase != "" && strings.HasPrefix(uri, r.ResourceBase) {
		return true
	}
	wikiPrefix := strings.TrimRight(r.WikiBase, "/") + "/wiki/"
	return r.WikiBase != "" && strings.HasPrefix(uri, wikiPrefix)
}
