package main

import (
	"fmt"
	"time"

	"github.com/jobhunt-dev/hunt"
	"github.com/jobhunt-dev/hunt/ingest"
)

// Run executes the email command.
func (c *EmailCmd) Run(deps *Dependencies) error {
	since := time.Now().AddDate(0, 0, -c.Days)

	ing := &ingest.Ingestor{
		Mail:      deps.Mail,
		Parser:    deps.Parser,
		Jobs:      deps.Jobs,
		Employers: deps.Employers,
		DryRun:    c.DryRun,
	}

	stats, err := ing.Run(deps.Ctx, since)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", hunt.ErrorMessage(err))
		return err
	}

	if c.DryRun {
		fmt.Fprintln(deps.Stdout, "Dry run, nothing stored.")
	}
	fmt.Fprintf(deps.Stdout, "%d emails, %d candidates: %d added, %d duplicates, %d blocked\n",
		stats.Messages, stats.Candidates, stats.Added, stats.Duplicates, stats.Blocked)
	if stats.Failed > 0 {
		fmt.Fprintf(deps.Stderr, "%d emails could not be parsed\n", stats.Failed)
	}

	return nil
}
