package mock

import (
	"context"

	"github.com/jobhunt-dev/hunt"
)

var _ hunt.SnapshotService = (*SnapshotService)(nil)

// SnapshotService is a mock implementation of hunt.SnapshotService.
type SnapshotService struct {
	CreateSnapshotFn func(ctx context.Context, snap *hunt.Snapshot) error
	ListSnapshotsFn  func(ctx context.Context, jobID string) ([]*hunt.Snapshot, error)
}

func (s *SnapshotService) CreateSnapshot(ctx context.Context, snap *hunt.Snapshot) error {
	return s.CreateSnapshotFn(ctx, snap)
}

func (s *SnapshotService) ListSnapshots(ctx context.Context, jobID string) ([]*hunt.Snapshot, error) {
	return s.ListSnapshotsFn(ctx, jobID)
}
