// Package seedfile reads corpus seed addresses from seed files: plain
// address lists, N-Triples SKOS mappings and RDF/XML SKOS mappings.
package seedfile

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/wikigrouth"
)

// Namespaces used by SKOS mapping files.
const (
	SKOSNamespace = "http://www.w3.org/2004/02/skos/core#"
	RDFNamespace  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
)

// Compile-time interface verification.
var (
	_ wikigrouth.SeedParser = (*LineParser)(nil)
	_ wikigrouth.SeedParser = (*NTriplesParser)(nil)
	_ wikigrouth.SeedParser = (*RDFXMLParser)(nil)
)

// LineParser reads one address per line. Blank lines and lines starting
// with # are ignored.
type LineParser struct{}

// ParseSeeds implements wikigrouth.SeedParser.
func (LineParser) ParseSeeds(r io.Reader) ([]string, error) {
	var seeds []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		seeds = append(seeds, line)
	}
	return seeds, scanner.Err()
}

var (
	exactMatchTriple = regexp.MustCompile(`^\s*<([^>]*)>\s+<` + regexp.QuoteMeta(SKOSNamespace+"exactMatch") + `>\s+<([^>]*)>`)
	dbpediaResource  = regexp.MustCompile(`<(http://dbpedia\.org/resource/[^>]*)>`)
)

// NTriplesParser reads the objects of skos:exactMatch triples. A file
// without such triples yields every DBpedia resource term instead.
type NTriplesParser struct{}

// ParseSeeds implements wikigrouth.SeedParser.
func (NTriplesParser) ParseSeeds(r io.Reader) ([]string, error) {
	var matches, resources []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if m := exactMatchTriple.FindStringSubmatch(line); m != nil {
			matches = append(matches, m[2])
			continue
		}
		for _, m := range dbpediaResource.FindAllStringSubmatch(line, -1) {
			resources = append(resources, m[1])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(matches) > 0 {
		return matches, nil
	}
	return resources, nil
}

// RDFXMLParser reads the rdf:resource of every skos:exactMatch element,
// whatever prefixes the file binds the namespaces to.
type RDFXMLParser struct{}

// ParseSeeds implements wikigrouth.SeedParser.
func (RDFXMLParser) ParseSeeds(r io.Reader) ([]string, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, wikigrouth.Errorf(wikigrouth.EINVALID, "failed to parse RDF/XML: %v", err)
	}

	var seeds []string
	for _, el := range doc.FindElements("//*") {
		if el.Tag != "exactMatch" || el.NamespaceURI() != SKOSNamespace {
			continue
		}
		for _, a := range el.Attr {
			if a.Key == "resource" && a.NamespaceURI() == RDFNamespace {
				seeds = append(seeds, a.Value)
			}
		}
	}
	return seeds, nil
}

// ParserFor picks a parser from the seed file extension.
func ParserFor(path string) wikigrouth.SeedParser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".nt":
		return NTriplesParser{}
	case ".rdf", ".xml", ".owl":
		return RDFXMLParser{}
	default:
		return LineParser{}
	}
}

// Load parses the seed file at path and returns its deduplicated seeds.
// Returns EINVALID if the file names no seeds.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	seeds, err := ParserFor(path).ParseSeeds(f)
	if err != nil {
		return nil, err
	}
	seeds = wikigrouth.DedupeSeeds(seeds)
	if len(seeds) == 0 {
		return nil, wikigrouth.Errorf(wikigrouth.EINVALID, "seed file %s contains no uris", path)
	}
	return seeds, nil
}
