package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/wikigrouth"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Verbose bool
	Source  wikigrouth.MarkupSource
	Corpora wikigrouth.CorpusService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" env:"WIKIGROUTH_VERBOSE" help:"Log requests and extraction at debug level"`

	Build    BuildCmd    `cmd:"" help:"Build a corpus from a seed file"`
	Extract  ExtractCmd  `cmd:"" help:"Extract text and entities from a local markup file"`
	Seeds    SeedsCmd    `cmd:"" help:"List the seeds named by a seed file"`
	Corpora  CorporaCmd  `cmd:"" help:"List corpus builds recorded in a database"`
	Mentions MentionsCmd `cmd:"" help:"List entity mentions of a recorded corpus build"`
}

// BuildCmd is the "build" subcommand.
type BuildCmd struct {
	SeedFile    string        `arg:"" name:"seedfile" help:"Seed file (.nt, .rdf/.xml or one uri per line)" type:"existingfile"`
	Output      string        `short:"o" default:"." env:"WIKIGROUTH_OUTPUT" help:"Output directory"`
	Force       bool          `short:"f" env:"WIKIGROUTH_FORCE" help:"Refetch articles and overwrite stored markup"`
	DB          string        `name:"db" env:"WIKIGROUTH_DB" help:"Also record the corpus in this SQLite database"`
	BaseURL     string        `name:"base-url" default:"http://en.wikipedia.org" env:"WIKIGROUTH_BASE_URL" help:"Origin prepended to relative links"`
	APIURL      string        `name:"api-url" env:"WIKIGROUTH_API_URL" help:"MediaWiki API endpoint (default: <base-url>/w/api.php)"`
	UserAgent   string        `name:"user-agent" env:"WIKIGROUTH_USER_AGENT" help:"User-Agent sent to the API"`
	Timeout     time.Duration `default:"10s" env:"WIKIGROUTH_TIMEOUT" help:"Request timeout"`
	Concurrency int           `short:"c" default:"1" env:"WIKIGROUTH_CONCURRENCY" help:"Concurrent fetch limit"`
	RPS         float64       `name:"rps" default:"1" env:"WIKIGROUTH_RPS" help:"Requests per second to the API (0 disables limiting)"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	File     string `arg:"" help:"Markup file" type:"existingfile"`
	Entities bool   `short:"e" help:"Print entity mentions instead of text"`
	BaseURL  string `name:"base-url" default:"http://en.wikipedia.org" env:"WIKIGROUTH_BASE_URL" help:"Origin prepended to relative links"`
}

// SeedsCmd is the "seeds" subcommand.
type SeedsCmd struct {
	SeedFile string `arg:"" name:"seedfile" help:"Seed file" type:"existingfile"`
}

// CorporaCmd is the "corpora" subcommand.
type CorporaCmd struct {
	DB string `name:"db" required:"" env:"WIKIGROUTH_DB" help:"SQLite database"`
}

// MentionsCmd is the "mentions" subcommand.
type MentionsCmd struct {
	Corpus   string `arg:"" help:"Corpus build ID"`
	DB       string `name:"db" required:"" env:"WIKIGROUTH_DB" help:"SQLite database"`
	Doc      int    `default:"-1" help:"Only mentions in this document"`
	URI      string `name:"uri" help:"Only mentions linking to this uri"`
	InSeed   bool   `name:"in-seed" help:"Only mentions of other seeds" xor:"seed"`
	External bool   `help:"Only mentions outside the seeds" xor:"seed"`
	Limit    int    `short:"n" help:"Maximum number of mentions"`
}
