package ingest

import (
	"context"

	"github.com/jobhunt-dev/hunt"
)

// Cleanup removes records that should never have been admitted: navigation
// artifacts stored as jobs and later duplicates of the same posting.
type Cleanup struct {
	Jobs hunt.JobService

	// DryRun reports what would be removed without deleting anything.
	DryRun bool
}

// CleanupResult lists the records a run removed, or would remove in dry-run
// mode. Duplicate pairs keep the earlier record and name the later one for
// removal.
type CleanupResult struct {
	Artifacts  []hunt.JobRef
	Duplicates []hunt.DuplicatePair
}

// Run scans the whole corpus, first for artifact titles and then for
// duplicate pairs among what remains.
func (c *Cleanup) Run(ctx context.Context) (*CleanupResult, error) {
	refs, err := c.Jobs.FindJobRefs(ctx, hunt.JobRefFilter{})
	if err != nil {
		return nil, err
	}

	result := &CleanupResult{}

	// refs belongs to the storage layer's caller contract; filter into a
	// fresh slice rather than compacting it in place.
	kept := make([]hunt.JobRef, 0, len(refs))
	for _, ref := range refs {
		if hunt.IsNavigationArtifact(ref.Title) {
			result.Artifacts = append(result.Artifacts, ref)
			continue
		}
		kept = append(kept, ref)
	}

	result.Duplicates = hunt.FindDuplicates(kept)

	if c.DryRun {
		return result, nil
	}

	for _, ref := range result.Artifacts {
		if err := c.Jobs.DeleteJob(ctx, ref.ID); err != nil {
			return result, err
		}
	}
	for _, pair := range result.Duplicates {
		if err := c.Jobs.DeleteJob(ctx, pair.DuplicateID); err != nil {
			return result, err
		}
	}

	return result, nil
}
