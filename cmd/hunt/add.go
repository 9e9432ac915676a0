package main

import (
	"fmt"

	"github.com/jobhunt-dev/hunt"
)

// Run executes the add command.
func (c *AddCmd) Run(deps *Dependencies) error {
	job := &hunt.Job{
		Title:    c.Title,
		URL:      c.URL,
		Employer: c.Employer,
		Location: c.Location,
		Source:   hunt.SourceScrape,
		Status:   hunt.StatusNew,
	}

	if err := deps.Jobs.CreateJob(deps.Ctx, job); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", hunt.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Added job %q (%s)\n", c.Title, job.ID)
	return nil
}
