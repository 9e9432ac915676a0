package main

import (
	"fmt"
	"os"

	"github.com/jobhunt-dev/hunt"
)

// Run executes the destroy command.
func (c *DestroyCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return hunt.Errorf(hunt.EINVALID, "use --force to confirm deletion")
	}

	if _, err := os.Stat(deps.DBPath); os.IsNotExist(err) {
		fmt.Fprintf(deps.Stdout, "No database at %s\n", deps.DBPath)
		return nil
	}

	if err := os.Remove(deps.DBPath); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	// WAL sidecar files are recreated on open; remove them with the DB.
	_ = os.Remove(deps.DBPath + "-wal")
	_ = os.Remove(deps.DBPath + "-shm")

	fmt.Fprintf(deps.Stdout, "Deleted database at %s\n", deps.DBPath)
	return nil
}
