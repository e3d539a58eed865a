package main

import (
	"fmt"

	"github.com/fwojciec/wikigrouth"
	"github.com/fwojciec/wikigrouth/seedfile"
)

// Run executes the seeds command.
func (c *SeedsCmd) Run(deps *Dependencies) error {
	seeds, err := seedfile.Load(c.SeedFile)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikigrouth.ErrorMessage(err))
		return err
	}

	for _, s := range seeds {
		fmt.Fprintln(deps.Stdout, s)
	}
	return nil
}
