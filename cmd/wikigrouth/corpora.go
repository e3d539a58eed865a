package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/wikigrouth"
)

// Run executes the corpora command.
func (c *CorporaCmd) Run(deps *Dependencies) error {
	corpora, err := deps.Corpora.FindCorpora(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikigrouth.ErrorMessage(err))
		return err
	}

	if len(corpora) == 0 {
		fmt.Fprintln(deps.Stdout, "No corpora found. Use 'wikigrouth build --db' to record one.")
		return nil
	}

	for _, cp := range corpora {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", cp.ID, cp.CreatedAt.Format(time.RFC3339), cp.SeedFile)
	}
	return nil
}

// Run executes the mentions command.
func (c *MentionsCmd) Run(deps *Dependencies) error {
	if _, err := deps.Corpora.FindCorpusByID(deps.Ctx, c.Corpus); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikigrouth.ErrorMessage(err))
		return err
	}

	filter := wikigrouth.MentionFilter{
		CorpusID: c.Corpus,
		Limit:    c.Limit,
	}
	if c.Doc >= 0 {
		filter.DocID = &c.Doc
	}
	if c.URI != "" {
		filter.URI = &c.URI
	}
	if c.InSeed || c.External {
		inSeed := c.InSeed
		filter.InSeed = &inSeed
	}

	mentions, err := deps.Corpora.FindMentions(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikigrouth.ErrorMessage(err))
		return err
	}

	for _, m := range mentions {
		fmt.Fprintf(deps.Stdout, "%d\t%d\t%s\t%s\t%s\n", m.DocID, m.Offset, m.Text, m.URI, seedFlag(m.InSeed))
	}
	return nil
}

func seedFlag(inSeed bool) string {
	if inSeed {
		return "1"
	}
	return "0"
}
