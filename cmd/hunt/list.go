package main

import (
	"fmt"

	"github.com/jobhunt-dev/hunt"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := hunt.JobFilter{}
	if c.Status != "" {
		status := hunt.JobStatus(c.Status)
		filter.Status = &status
	}
	if c.Employer != "" {
		filter.Employer = &c.Employer
	}

	jobs, err := deps.Jobs.FindJobs(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", hunt.ErrorMessage(err))
		return err
	}

	if len(jobs) == 0 {
		fmt.Fprintln(deps.Stdout, "No jobs found. Use 'hunt email' or 'hunt add' to add some.")
		return nil
	}

	for _, j := range jobs {
		fmt.Fprintf(deps.Stdout, "%s  %-10s  %s  %s\n", j.ID, j.Status, j.Title, j.Employer)
	}

	return nil
}
