package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"golang.org/x/time/rate"

	pcapi "github.com/williamsiker/pc-api"
	"github.com/williamsiker/pc-api/goquery"
	pchttp "github.com/williamsiker/pc-api/http"
	"github.com/williamsiker/pc-api/scrape"
	pcslog "github.com/williamsiker/pc-api/slog"
	"github.com/williamsiker/pc-api/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	ContestService pcapi.ContestService
	ProblemService pcapi.ProblemService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
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
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: logLevel(),
	}))

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pcapi"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pcapi --help' to see available commands")
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

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set PCAPI_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.ContestService = sqlite.NewContestService(m.DB)
	m.ProblemService = sqlite.NewProblemService(m.DB)
	deps.DB = m.DB
	deps.Contests = m.ContestService
	deps.Problems = m.ProblemService

	locales := goquery.DefaultLocales
	if cmd == "fetch" && len(cli.Fetch.Locales) > 0 {
		locales = cli.Fetch.Locales
	}

	var extractor pcapi.ProblemExtractor = goquery.NewExtractor(
		goquery.WithLocales(locales...),
		goquery.WithLogger(logger),
	)
	extractor = pcslog.NewProblemExtractor(extractor, logger)

	fetcher := pcslog.NewFetcher(pchttp.NewFetcher(), logger)
	defer fetcher.Close()

	deps.Scraper = &scrape.Scraper{
		Source:    pchttp.NewContestSource(),
		Fetcher:   fetcher,
		Extractor: extractor,
		Contests:  m.ContestService,
		Problems:  m.ProblemService,
		// One request per second keeps the scraper polite.
		Limiter: rate.NewLimiter(rate.Limit(1), 1),
		Logger:  logger,
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("PCAPI_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "pcapi.db"
	}
	dir := filepath.Join(home, ".pcapi")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "pcapi.db")
}

func logLevel() slog.Level {
	if os.Getenv("PCAPI_DEBUG") != "" {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
