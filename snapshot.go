package hunt

import (
	"context"
	"time"
)

// Snapshot is an immutable capture of a job's raw text at a point in time.
// Every description write appends a snapshot so earlier versions of a
// posting remain inspectable after the employer edits or closes it.
type Snapshot struct {
	ID          string    `json:"id"`
	JobID       string    `json:"jobId"`
	RawText     string    `json:"rawText"`
	ContentHash string    `json:"contentHash"`
	CapturedAt  time.Time `json:"capturedAt"`
}

// Validate returns an error if the snapshot contains invalid fields.
func (s *Snapshot) Validate() error {
	if s.JobID == "" {
		return Errorf(EINVALID, "snapshot job ID required")
	}
	if s.RawText == "" {
		return Errorf(EINVALID, "snapshot raw text required")
	}
	return nil
}

// SnapshotService represents a service for managing job snapshots.
type SnapshotService interface {
	// CreateSnapshot appends a snapshot for a job.
	CreateSnapshot(ctx context.Context, snap *Snapshot) error

	// ListSnapshots retrieves all snapshots for a job, oldest first.
	ListSnapshots(ctx context.Context, jobID string) ([]*Snapshot, error)
}
