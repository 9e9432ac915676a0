package main

import (
	"fmt"

	"github.com/jobhunt-dev/hunt"
	"github.com/jobhunt-dev/hunt/ingest"
)

// Run executes the cleanup command.
func (c *CleanupCmd) Run(deps *Dependencies) error {
	cleanup := &ingest.Cleanup{
		Jobs:   deps.Jobs,
		DryRun: c.DryRun,
	}

	result, err := cleanup.Run(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", hunt.ErrorMessage(err))
		return err
	}

	for _, ref := range result.Artifacts {
		fmt.Fprintf(deps.Stdout, "artifact:  %s  %q\n", ref.ID, ref.Title)
	}
	for _, pair := range result.Duplicates {
		fmt.Fprintf(deps.Stdout, "duplicate: %s repeats %s\n", pair.DuplicateID, pair.OriginalID)
	}

	verb := "Removed"
	if c.DryRun {
		verb = "Would remove"
	}
	fmt.Fprintf(deps.Stdout, "%s %d artifacts and %d duplicates\n",
		verb, len(result.Artifacts), len(result.Duplicates))

	return nil
}
