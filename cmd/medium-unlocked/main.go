package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	unlocked "github.com/Skasundra/medium-unlocked"
	"github.com/Skasundra/medium-unlocked/bluemonday"
	"github.com/Skasundra/medium-unlocked/goquery"
	unlockedhttp "github.com/Skasundra/medium-unlocked/http"
	"github.com/Skasundra/medium-unlocked/pipeline"
	"github.com/Skasundra/medium-unlocked/readability"
	unlockedslog "github.com/Skasundra/medium-unlocked/slog"
	"github.com/Skasundra/medium-unlocked/sqlite"
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

	// SQLite database used by the storage services.
	DB *sqlite.DB
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
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("medium-unlocked"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'medium-unlocked --help' to see available commands")
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if cli.DB != "" {
		m.DBPath = cli.DB
	}
	if err := os.MkdirAll(filepath.Dir(m.DBPath), 0o755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set MEDIUM_UNLOCKED_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	deps.DB = m.DB
	deps.Cache = sqlite.NewCacheService(m.DB)
	deps.Reliability = sqlite.NewReliabilityService(m.DB)
	deps.Audit = sqlite.NewAuditService(m.DB)

	sanitizer := bluemonday.NewSanitizer()
	var extractor unlocked.Extractor = goquery.NewExtractor(sanitizer)
	if cli.Fetch.Extractor == "readability" {
		extractor = readability.NewExtractor(sanitizer)
	}

	p := &pipeline.Pipeline{
		Fetcher:     unlockedslog.NewLoggingFetcher(unlockedhttp.NewFetcher(), deps.Logger),
		Extractor:   extractor,
		Reliability: deps.Reliability,
		Audit:       deps.Audit,
		// The Google cache rate-limits aggressively; give it extra slack.
		Limiter: pipeline.NewRateLimiter(1.0,
			pipeline.WithDomainRPS("webcache.googleusercontent.com", 0.5)),
		Strategies: unlocked.DefaultStrategies(),
		Logger:     deps.Logger,
	}
	if !cli.Fetch.NoCache {
		p.Cache = deps.Cache
	}
	deps.Pipeline = p

	return kongCtx.Run(deps)
}

// defaultDBPath returns ~/.medium-unlocked/unlocked.db, falling back to
// the working directory when the home directory is unknown.
func defaultDBPath() string {
	if env := os.Getenv("MEDIUM_UNLOCKED_DB"); env != "" {
		return env
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "unlocked.db"
	}
	return filepath.Join(home, ".medium-unlocked", "unlocked.db")
}
