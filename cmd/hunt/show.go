package main

import (
	"fmt"

	"github.com/jobhunt-dev/hunt"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	job, err := deps.Jobs.FindJobByID(deps.Ctx, c.ID)
	if err != nil {
		if hunt.ErrorCode(err) == hunt.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: job %q not found. Use 'hunt list' to see stored jobs.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", hunt.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Title:     %s\n", job.Title)
	fmt.Fprintf(deps.Stdout, "Employer:  %s\n", job.Employer)
	fmt.Fprintf(deps.Stdout, "Location:  %s\n", job.Location)
	fmt.Fprintf(deps.Stdout, "Status:    %s\n", job.Status)
	fmt.Fprintf(deps.Stdout, "Source:    %s\n", job.Source)
	fmt.Fprintf(deps.Stdout, "URL:       %s\n", job.URL)
	if job.JobCode != "" {
		fmt.Fprintf(deps.Stdout, "Job code:  %s\n", job.JobCode)
	}
	if job.PayMin != nil || job.PayMax != nil {
		fmt.Fprintf(deps.Stdout, "Pay:       %s\n", formatPay(job.PayMin, job.PayMax))
	}
	if job.Closed {
		fmt.Fprintln(deps.Stdout, "Closed:    no longer accepting applications")
	}

	if job.RawText != "" {
		fmt.Fprintf(deps.Stdout, "\n%s\n", job.RawText)
	}

	return nil
}

func formatPay(payMin, payMax *int64) string {
	switch {
	case payMin != nil && payMax != nil:
		return fmt.Sprintf("$%d - $%d", *payMin, *payMax)
	case payMin != nil:
		return fmt.Sprintf("$%d+", *payMin)
	case payMax != nil:
		return fmt.Sprintf("up to $%d", *payMax)
	}
	return ""
}
