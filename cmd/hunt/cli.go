package main

import (
	"context"
	"io"

	"github.com/jobhunt-dev/hunt"
	"github.com/jobhunt-dev/hunt/ingest"
	"github.com/jobhunt-dev/hunt/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	DBPath    string
	DB        *sqlite.DB
	Jobs      hunt.JobService
	Employers hunt.EmployerService
	Snapshots hunt.SnapshotService
	Mail      hunt.MailSource
	Parser    hunt.AlertParser
	Fetcher   hunt.Fetcher
	Cleaner   hunt.Cleaner
	Limiter   *ingest.DomainLimiter
	Analyzer  hunt.Analyzer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Add      AddCmd      `cmd:"" help:"Add a job manually"`
	List     ListCmd     `cmd:"" help:"List stored jobs"`
	Show     ShowCmd     `cmd:"" help:"Show one job in full"`
	Email    EmailCmd    `cmd:"" help:"Ingest job-alert emails"`
	Fetch    FetchCmd    `cmd:"" help:"Fetch missing job descriptions"`
	Cleanup  CleanupCmd  `cmd:"" help:"Remove navigation artifacts and duplicates"`
	Analyze  AnalyzeCmd  `cmd:"" help:"AI assessment of one job"`
	Keywords KeywordsCmd `cmd:"" help:"Extract skill keywords from one job"`
	Rank     RankCmd     `cmd:"" help:"Rank open jobs by score"`
	Employer EmployerCmd `cmd:"" help:"Manage employers"`
	Destroy  DestroyCmd  `cmd:"" help:"Delete the database"`
}

// AddCmd is the "add" subcommand.
type AddCmd struct {
	Title    string `arg:"" help:"Job title"`
	URL      string `arg:"" optional:"" help:"Posting URL"`
	Employer string `short:"e" help:"Employer name"`
	Location string `short:"l" help:"Job location"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Status   string `short:"s" help:"Filter by status (new, reviewing, applied, rejected, closed)"`
	Employer string `short:"e" help:"Filter by employer name"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Job ID"`
}

// EmailCmd is the "email" subcommand.
type EmailCmd struct {
	Days     int    `short:"d" default:"7" help:"Look back this many days"`
	DryRun   bool   `help:"Report what would be added without storing"`
	Addr     string `env:"HUNT_IMAP_ADDR" default:"imap.gmail.com:993" help:"IMAP server address"`
	Username string `env:"HUNT_IMAP_USER" help:"IMAP username"`
	Password string `env:"HUNT_IMAP_PASSWORD" help:"IMAP password"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	Limit int `short:"n" help:"Fetch at most this many descriptions (0 = all)"`
}

// CleanupCmd is the "cleanup" subcommand.
type CleanupCmd struct {
	DryRun bool `help:"Report what would be removed without deleting"`
}

// AnalyzeCmd is the "analyze" subcommand.
type AnalyzeCmd struct {
	ID string `arg:"" help:"Job ID"`
}

// KeywordsCmd is the "keywords" subcommand.
type KeywordsCmd struct {
	ID string `arg:"" help:"Job ID"`
}

// RankCmd is the "rank" subcommand.
type RankCmd struct {
	Top int `short:"n" default:"10" help:"Show this many jobs"`
}

// EmployerCmd groups the employer subcommands.
type EmployerCmd struct {
	List   EmployerListCmd   `cmd:"" help:"List employers"`
	Status EmployerStatusCmd `cmd:"" help:"Set an employer's status"`
}

// EmployerListCmd is the "employer list" subcommand.
type EmployerListCmd struct {
	Status string `short:"s" help:"Filter by status (ok, yuck, never)"`
}

// EmployerStatusCmd is the "employer status" subcommand.
type EmployerStatusCmd struct {
	Name   string `arg:"" help:"Employer name"`
	Status string `arg:"" help:"New status (ok, yuck, never)"`
}

// DestroyCmd is the "destroy" subcommand.
type DestroyCmd struct {
	Force bool `help:"Confirm deletion"`
}
