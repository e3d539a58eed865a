package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/wikigrouth"
	"github.com/fwojciec/wikigrouth/goquery"
	wgslog "github.com/fwojciec/wikigrouth/slog"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	var extractor wikigrouth.Extractor = goquery.NewExtractor(goquery.WithBaseURL(c.BaseURL))
	if deps.Verbose {
		extractor = wgslog.NewLoggingExtractor(extractor, deps.Logger)
	}

	result, err := extractor.Extract(string(data))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikigrouth.ErrorMessage(err))
		return err
	}

	if !c.Entities {
		fmt.Fprint(deps.Stdout, result.Text)
		return nil
	}
	for _, e := range result.Entities {
		fmt.Fprintf(deps.Stdout, "%d\t%s\t%s\n", e.Offset, e.Text, e.URI)
	}
	return nil
}
