package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/ladle-app/ladle"
	"github.com/ladle-app/ladle/goquery"
	ladlehttp "github.com/ladle-app/ladle/http"
	"github.com/ladle-app/ladle/jsonld"
	"github.com/ladle-app/ladle/scrape"
	ladleslog "github.com/ladle-app/ladle/slog"
	"github.com/ladle-app/ladle/sqlite"
	ladlewazero "github.com/ladle-app/ladle/wazero"
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

	// Path to the sandboxed extractor module, empty when none is installed.
	SandboxPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	RecipeService ladle.RecipeService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:      defaultDBPath(),
		SandboxPath: os.Getenv("LADLE_SANDBOX_MODULE"),
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
		kong.Name("ladle"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'ladle --help' to see available commands")
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

	// Logging goes to stderr so recipe JSON on stdout stays parseable.
	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Open database
	if cli.DB != "" {
		m.DBPath = cli.DB
	}
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set LADLE_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.RecipeService = sqlite.NewRecipeService(m.DB)
	deps.Recipes = m.RecipeService

	fetcher := ladleslog.NewLoggingFetcher(ladlehttp.NewFetcher(), logger)
	defer fetcher.Close()

	// The generic structured-data parser always runs first; the sandboxed
	// specialized extractor, when installed, is the fallback.
	backends := []ladle.Backend{
		ladleslog.NewLoggingBackend(jsonld.NewBackend(), logger),
	}
	if m.SandboxPath != "" {
		sandbox := ladlewazero.NewBackend(moduleLoader(m.SandboxPath))
		defer sandbox.Close(ctx)
		backends = append(backends, ladleslog.NewLoggingBackend(sandbox, logger))
		deps.Sandbox = sandbox
	}

	deps.Scraper = scrape.New(
		scrape.WithFetcher(fetcher),
		scrape.WithBackends(backends...),
		scrape.WithEnhancer(goquery.NewEnhancer()),
		scrape.WithWildMode(cli.Scrape.Wild),
		scrape.WithConcurrency(cli.Scrape.Concurrency),
		scrape.WithRateLimit(cli.Scrape.Delay),
	)

	return kongCtx.Run(deps)
}

// moduleLoader reads the sandboxed extractor binary from disk.
func moduleLoader(path string) func() ([]byte, error) {
	return func() ([]byte, error) {
		return os.ReadFile(path)
	}
}

func defaultDBPath() string {
	if path := os.Getenv("LADLE_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "ladle.db"
	}
	dir := filepath.Join(home, ".ladle")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "ladle.db")
}
