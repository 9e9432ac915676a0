package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/jobhunt-dev/hunt"
	"github.com/jobhunt-dev/hunt/gemini"
	"github.com/jobhunt-dev/hunt/goquery"
	"github.com/jobhunt-dev/hunt/imap"
	"github.com/jobhunt-dev/hunt/ingest"
	"github.com/jobhunt-dev/hunt/rod"
	huntslog "github.com/jobhunt-dev/hunt/slog"
	"github.com/jobhunt-dev/hunt/sqlite"
	"google.golang.org/genai"
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
	JobService      hunt.JobService
	EmployerService hunt.EmployerService
	SnapshotService hunt.SnapshotService
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
		DBPath: m.DBPath,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("hunt"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'hunt --help' to see available commands")
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

	// Destroy works on the database file directly; opening it first would
	// recreate the schema it is about to remove.
	if cmd == "destroy" {
		return kongCtx.Run(deps)
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set HUNT_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.JobService = sqlite.NewJobService(m.DB)
	m.EmployerService = sqlite.NewEmployerService(m.DB)
	m.SnapshotService = sqlite.NewSnapshotService(m.DB)
	deps.DB = m.DB
	deps.Jobs = m.JobService
	deps.Employers = m.EmployerService
	deps.Snapshots = m.SnapshotService

	logger := slog.New(slog.NewTextHandler(stderr, nil))

	if cmd == "email" {
		if cli.Email.Username == "" || cli.Email.Password == "" {
			fmt.Fprintln(stderr, "Hint: Set HUNT_IMAP_USER and HUNT_IMAP_PASSWORD for your mailbox")
			return fmt.Errorf("IMAP credentials not set")
		}
		mail, err := imap.NewMailSource(cli.Email.Addr, cli.Email.Username, cli.Email.Password)
		if err != nil {
			return fmt.Errorf("failed to connect to mailbox: %w", err)
		}
		defer mail.Close()

		deps.Mail = huntslog.NewLoggingMailSource(mail, logger)
		deps.Parser = goquery.NewAlertParser()
	}

	if cmd == "fetch" {
		fetcher, err := rod.NewFetcher()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		defer fetcher.Close()

		deps.Fetcher = huntslog.NewLoggingFetcher(fetcher, logger)
		deps.Cleaner = goquery.NewCleaner()
		deps.Limiter = ingest.NewDomainLimiter(fetchRPS, fetchJitter)
	}

	if cmd == "analyze" || cmd == "keywords" {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		deps.Analyzer = gemini.NewAnalyzer(client)
	}

	return kongCtx.Run(deps)
}

// Job boards throttle fast clients. One request a second with up to two
// seconds of jitter keeps the fetch loop under their radar.
const (
	fetchRPS    = 1.0
	fetchJitter = 2 * time.Second
)

func defaultDBPath() string {
	if path := os.Getenv("HUNT_DB"); path != "" {
		return path
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "hunt.db"
	}
	dir = filepath.Join(dir, "hunt")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "hunt.db")
}
