package main

import (
	"fmt"

	"github.com/jobhunt-dev/hunt"
)

// Run executes the analyze command.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	job, err := findJob(deps, c.ID)
	if err != nil {
		return err
	}

	assessment, err := deps.Analyzer.Analyze(deps.Ctx, job)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", hunt.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, assessment)
	return nil
}

// Run executes the keywords command.
func (c *KeywordsCmd) Run(deps *Dependencies) error {
	job, err := findJob(deps, c.ID)
	if err != nil {
		return err
	}

	keywords, err := deps.Analyzer.Keywords(deps.Ctx, job)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", hunt.ErrorMessage(err))
		return err
	}

	for _, kw := range keywords {
		fmt.Fprintln(deps.Stdout, kw)
	}
	return nil
}

// findJob loads a job by ID with CLI-friendly error reporting.
func findJob(deps *Dependencies, id string) (*hunt.Job, error) {
	job, err := deps.Jobs.FindJobByID(deps.Ctx, id)
	if err != nil {
		if hunt.ErrorCode(err) == hunt.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: job %q not found. Use 'hunt list' to see stored jobs.\n", id)
			return nil, err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", hunt.ErrorMessage(err))
		return nil, err
	}
	return job, nil
}
