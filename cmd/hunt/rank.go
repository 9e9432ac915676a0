package main

import (
	"fmt"

	"github.com/jobhunt-dev/hunt"
)

// Run executes the rank command.
func (c *RankCmd) Run(deps *Dependencies) error {
	jobs, err := deps.Jobs.FindJobs(deps.Ctx, hunt.JobFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", hunt.ErrorMessage(err))
		return err
	}

	// Employer statuses are needed per job; one listing covers them all.
	statuses := make(map[string]hunt.EmployerStatus)
	employers, err := deps.Employers.ListEmployers(deps.Ctx, nil)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", hunt.ErrorMessage(err))
		return err
	}
	for _, e := range employers {
		statuses[e.ID] = e.Status
	}

	ranked := hunt.RankJobs(jobs, c.Top, func(employerID string) hunt.EmployerStatus {
		if status, ok := statuses[employerID]; ok {
			return status
		}
		return hunt.EmployerOK
	})

	if len(ranked) == 0 {
		fmt.Fprintln(deps.Stdout, "No open jobs to rank.")
		return nil
	}

	for i, s := range ranked {
		fmt.Fprintf(deps.Stdout, "%2d. %5.1f  %s  %s  %s\n",
			i+1, s.Score, s.Job.ID, s.Job.Title, s.Job.Employer)
	}

	return nil
}
