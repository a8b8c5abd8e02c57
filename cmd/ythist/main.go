package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/rcoelho/ythist"
	ytgoquery "github.com/rcoelho/ythist/goquery"
	ytslog "github.com/rcoelho/ythist/slog"
	"github.com/rcoelho/ythist/sqlite"
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

	// SQLite database used by the history service.
	DB *sqlite.DB

	// HistoryService for end-to-end testing.
	HistoryService ythist.HistoryService
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
		kong.Name("ythist"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'ythist --help' to see available commands")
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
	selected := kongCtx.Command()

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set YTHIST_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.HistoryService = sqlite.NewHistoryService(m.DB)
	deps.History = m.HistoryService
	deps.CachePath = cli.Cache

	if strings.HasPrefix(selected, "parse") {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		extractor := ytgoquery.NewExtractor()
		extractor.Concurrency = cli.Parse.Concurrency
		extractor.Logger = logger
		deps.Extractor = ytslog.NewExtractor(extractor, logger)
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("YTHIST_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "ythist.db"
	}
	dir := filepath.Join(home, ".ythist")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "ythist.db")
}
