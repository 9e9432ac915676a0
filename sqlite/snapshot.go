package sqlite

import (
	"context"
	"encoding/hex"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/jobhunt-dev/hunt"
)

// Compile-time interface verification.
var _ hunt.SnapshotService = (*SnapshotService)(nil)

// SnapshotService implements hunt.SnapshotService using SQLite.
type SnapshotService struct {
	db *DB
}

// NewSnapshotService creates a new SnapshotService.
func NewSnapshotService(db *DB) *SnapshotService {
	return &SnapshotService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// CreateSnapshot appends a snapshot for a job.
func (s *SnapshotService) CreateSnapshot(ctx context.Context, snap *hunt.Snapshot) error {
	if err := snap.Validate(); err != nil {
		return err
	}

	snap.ID = uuid.New().String()
	snap.CapturedAt = time.Now().UTC()
	snap.ContentHash = hashContent(snap.RawText)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO job_snapshots (id, job_id, raw_text, content_hash, captured_at)
		VALUES (?, ?, ?, ?, ?)
	`, snap.ID, snap.JobID, snap.RawText, snap.ContentHash, snap.CapturedAt.Format(time.RFC3339))

	return err
}

// ListSnapshots retrieves all snapshots for a job, oldest first.
func (s *SnapshotService) ListSnapshots(ctx context.Context, jobID string) ([]*hunt.Snapshot, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, job_id, raw_text, content_hash, captured_at
		FROM job_snapshots
		WHERE job_id = ?
		ORDER BY rowid ASC
	`, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snaps []*hunt.Snapshot
	for rows.Next() {
		var snap hunt.Snapshot
		var capturedAt string

		if err := rows.Scan(&snap.ID, &snap.JobID, &snap.RawText, &snap.ContentHash, &capturedAt); err != nil {
			return nil, err
		}

		if snap.CapturedAt, err = parseTime("captured_at", capturedAt); err != nil {
			return nil, err
		}

		snaps = append(snaps, &snap)
	}

	return snaps, rows.Err()
}
