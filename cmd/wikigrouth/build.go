package main

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/fwojciec/wikigrouth"
	"github.com/fwojciec/wikigrouth/bloom"
	"github.com/fwojciec/wikigrouth/corpus"
	"github.com/fwojciec/wikigrouth/csv"
	"github.com/fwojciec/wikigrouth/dbpedia"
	"github.com/fwojciec/wikigrouth/fs"
	"github.com/fwojciec/wikigrouth/goquery"
	wghttp "github.com/fwojciec/wikigrouth/http"
	"github.com/fwojciec/wikigrouth/seedfile"
	wgslog "github.com/fwojciec/wikigrouth/slog"
	"github.com/fwojciec/wikigrouth/sqlite"
)

// Run executes the build command.
func (c *BuildCmd) Run(deps *Dependencies) (err error) {
	seeds, err := seedfile.Load(c.SeedFile)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikigrouth.ErrorMessage(err))
		return err
	}

	csvWriter, err := csv.Create(c.Output)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	writers := []wikigrouth.CorpusWriter{csvWriter}

	if c.DB != "" {
		db := sqlite.NewDB(c.DB)
		if err := db.Open(); err != nil {
			_ = csvWriter.Close()
			return fmt.Errorf("failed to open database at %q: %w", c.DB, err)
		}
		defer db.Close()

		dbWriter, err := sqlite.NewCorpusWriter(deps.Ctx, db, c.SeedFile)
		if err != nil {
			_ = csvWriter.Close()
			return err
		}
		fmt.Fprintf(deps.Stdout, "Recording corpus %s in %s\n", dbWriter.Corpus().ID, c.DB)
		writers = append(writers, dbWriter)
	}

	var writer wikigrouth.CorpusWriter = corpus.NewMultiWriter(writers...)
	var extractor wikigrouth.Extractor = goquery.NewExtractor(goquery.WithBaseURL(c.BaseURL))
	if deps.Verbose {
		writer = wgslog.NewLoggingCorpusWriter(writer, deps.Logger)
		extractor = wgslog.NewLoggingExtractor(extractor, deps.Logger)
	}
	defer func() {
		if cerr := writer.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	resolver := dbpedia.NewResolver(c.BaseURL)
	builder := &corpus.Builder{
		Source:      deps.Source,
		Store:       fs.NewPageStore(c.Output),
		Extractor:   extractor,
		Writer:      writer,
		Seeds:       bloom.NewSeedSet(seeds, resolver),
		Resolver:    resolver,
		Limiter:     corpus.NewDomainLimiter(c.RPS),
		APIHost:     apiHost(c.apiURL()),
		Override:    c.Force,
		Concurrency: c.Concurrency,
	}

	progress := func(event corpus.ProgressEvent) {
		switch event.Type {
		case corpus.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "  Found %d seeds\n", event.Total)
		case corpus.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", event.URI, failureMessage(event.Error))
		}
	}

	result, err := builder.Build(deps.Ctx, seeds, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error building corpus: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "  Saved %d documents with %d entity mentions", result.Documents, result.Mentions)
	if result.Failed > 0 {
		fmt.Fprintf(deps.Stdout, " (%d failed)", result.Failed)
	}
	fmt.Fprintln(deps.Stdout)

	return nil
}

func (c *BuildCmd) apiURL() string {
	if c.APIURL != "" {
		return c.APIURL
	}
	return strings.TrimRight(c.BaseURL, "/") + "/w/api.php"
}

func (c *BuildCmd) fetcherOptions() []wghttp.Option {
	opts := []wghttp.Option{
		wghttp.WithTimeout(c.Timeout),
		wghttp.WithAPIURL(c.apiURL()),
	}
	if c.UserAgent != "" {
		opts = append(opts, wghttp.WithUserAgent(c.UserAgent))
	}
	return opts
}

func apiHost(apiURL string) string {
	u, err := url.Parse(apiURL)
	if err != nil {
		return ""
	}
	return u.Host
}

// failureMessage returns the application message of err, or the error
// text for infrastructure errors.
func failureMessage(err error) string {
	if wikigrouth.ErrorCode(err) == wikigrouth.EINTERNAL {
		return err.Error()
	}
	return wikigrouth.ErrorMessage(err)
}
