package main

import (
	"context"
	"io"
	"log/slog"

	pcapi "github.com/williamsiker/pc-api"
	"github.com/williamsiker/pc-api/scrape"
	"github.com/williamsiker/pc-api/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	DB       *sqlite.DB
	Contests pcapi.ContestService
	Problems pcapi.ProblemService
	Scraper  *scrape.Scraper
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Serve    ServeCmd    `cmd:"" help:"Run the JSON API server"`
	Sync     SyncCmd     `cmd:"" help:"Sync the contest index from the kenkoooo API"`
	Fetch    FetchCmd    `cmd:"" help:"Fetch and extract one problem"`
	Contests ContestsCmd `cmd:"" help:"List cached contests"`
	Problems ProblemsCmd `cmd:"" help:"List a contest's problems"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `short:"a" default:":8000" help:"Listen address"`
}

// SyncCmd is the "sync" subcommand.
type SyncCmd struct{}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	Contest string   `arg:"" help:"Contest ID (e.g. abc405)"`
	Problem string   `arg:"" help:"Problem ID (e.g. abc405_a)"`
	Refresh bool     `short:"r" help:"Re-fetch even if cached"`
	Locales []string `short:"l" help:"Locale preference order (default en,ja)"`
}

// ContestsCmd is the "contests" subcommand.
type ContestsCmd struct {
	Limit int `default:"20" help:"Maximum contests to list"`
}

// ProblemsCmd is the "problems" subcommand.
type ProblemsCmd struct {
	Contest string `arg:"" help:"Contest ID"`
}
