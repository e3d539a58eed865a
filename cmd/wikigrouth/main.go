package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/wikigrouth"
	wghttp "github.com/fwojciec/wikigrouth/http"
	wgslog "github.com/fwojciec/wikigrouth/slog"
	"github.com/fwojciec/wikigrouth/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database opened for the corpora and mentions commands.
	DB *sqlite.DB

	// Source overrides the MediaWiki API source. Used by end-to-end tests.
	Source wikigrouth.MarkupSource
}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("wikigrouth"),
		kong.Description("Build coreference ground truth corpora from Wikipedia articles."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'wikigrouth --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Verbose = cli.Verbose
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	switch kongCtx.Command() {
	case "build <seedfile>":
		source := m.Source
		if source == nil {
			fetcher := wghttp.NewFetcher(cli.Build.fetcherOptions()...)
			defer fetcher.Close()
			source = fetcher
		}
		if cli.Verbose {
			source = wgslog.NewLoggingMarkupSource(source, deps.Logger)
		}
		deps.Source = source

	case "corpora":
		if err := m.openCorpora(deps, cli.Corpora.DB); err != nil {
			return err
		}
		defer m.Close()

	case "mentions <corpus>":
		if err := m.openCorpora(deps, cli.Mentions.DB); err != nil {
			return err
		}
		defer m.Close()
	}

	return kongCtx.Run(deps)
}

// openCorpora opens the database at path and binds its corpus service.
func (m *Main) openCorpora(deps *Dependencies, path string) error {
	m.DB = sqlite.NewDB(path)
	if err := m.DB.Open(); err != nil {
		return fmt.Errorf("failed to open database at %q: %w", path, err)
	}
	deps.Corpora = sqlite.NewCorpusService(m.DB)
	return nil
}
