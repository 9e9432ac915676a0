package main

import (
	"fmt"

	"github.com/jobhunt-dev/hunt"
)

// Run executes the employer list command.
func (c *EmployerListCmd) Run(deps *Dependencies) error {
	var status *hunt.EmployerStatus
	if c.Status != "" {
		s := hunt.EmployerStatus(c.Status)
		status = &s
	}

	employers, err := deps.Employers.ListEmployers(deps.Ctx, status)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", hunt.ErrorMessage(err))
		return err
	}

	if len(employers) == 0 {
		fmt.Fprintln(deps.Stdout, "No employers found.")
		return nil
	}

	for _, e := range employers {
		fmt.Fprintf(deps.Stdout, "%-6s  %s\n", e.Status, e.Name)
	}

	return nil
}

// Run executes the employer status command.
func (c *EmployerStatusCmd) Run(deps *Dependencies) error {
	status := hunt.EmployerStatus(c.Status)
	switch status {
	case hunt.EmployerOK, hunt.EmployerYuck, hunt.EmployerNever:
	default:
		fmt.Fprintf(deps.Stderr, "error: status must be one of ok, yuck, never\n")
		return hunt.Errorf(hunt.EINVALID, "invalid employer status %q", c.Status)
	}

	if err := deps.Employers.SetEmployerStatus(deps.Ctx, c.Name, status); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", hunt.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Set %q to %s\n", c.Name, status)
	return nil
}
