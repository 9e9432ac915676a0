package main

import (
	"fmt"

	"github.com/jobhunt-dev/hunt"
	"github.com/jobhunt-dev/hunt/ingest"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	f := &ingest.DescriptionFetcher{
		Jobs:      deps.Jobs,
		Snapshots: deps.Snapshots,
		Fetcher:   deps.Fetcher,
		Cleaner:   deps.Cleaner,
		Limiter:   deps.Limiter,
		Limit:     c.Limit,
		Logf: func(format string, args ...any) {
			fmt.Fprintf(deps.Stderr, format+"\n", args...)
		},
	}

	result, err := f.Run(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", hunt.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Fetched %d descriptions (%d closed, %d behind sign-in, %d failed)\n",
		result.Fetched, result.Closed, result.Walled, result.Failed)

	return nil
}
