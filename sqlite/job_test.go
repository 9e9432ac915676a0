package sqlite_test

import (
	"context"
	"testing"

	"github.com/jobhunt-dev/hunt"
	"github.com/jobhunt-dev/hunt/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobService_CreateJob(t *testing.T) {
	t.Parallel()

	t.Run("creates job and employer together", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		ctx := context.Background()
		svc := sqlite.NewJobService(db)

		job := &hunt.Job{
			Title:    "Senior Platform Engineer",
			Employer: "Acme Corp",
			URL:      "https://example.com/job/1",
			Source:   hunt.SourceLinkedIn,
		}
		require.NoError(t, svc.CreateJob(ctx, job))

		assert.NotEmpty(t, job.ID)
		assert.NotEmpty(t, job.EmployerID)
		assert.Equal(t, hunt.StatusNew, job.Status)
		assert.False(t, job.CreatedAt.IsZero())

		employer, err := sqlite.NewEmployerService(db).FindEmployerByName(ctx, "Acme Corp")
		require.NoError(t, err)
		assert.Equal(t, job.EmployerID, employer.ID)
		assert.Equal(t, hunt.EmployerOK, employer.Status)
	})

	t.Run("reuses existing employer case-insensitively", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		ctx := context.Background()
		svc := sqlite.NewJobService(db)

		first := &hunt.Job{Title: "Engineer A", Employer: "Acme Corp"}
		require.NoError(t, svc.CreateJob(ctx, first))

		second := &hunt.Job{Title: "Engineer B", Employer: "ACME CORP"}
		require.NoError(t, svc.CreateJob(ctx, second))

		assert.Equal(t, first.EmployerID, second.EmployerID)
		assert.Equal(t, "Acme Corp", second.Employer)
	})

	t.Run("allows job without employer", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		ctx := context.Background()
		svc := sqlite.NewJobService(db)

		job := &hunt.Job{Title: "Mystery Role"}
		require.NoError(t, svc.CreateJob(ctx, job))

		got, err := svc.FindJobByID(ctx, job.ID)
		require.NoError(t, err)
		assert.Empty(t, got.EmployerID)
		assert.Empty(t, got.Employer)
	})

	t.Run("rejects invalid job", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		svc := sqlite.NewJobService(db)

		err := svc.CreateJob(context.Background(), &hunt.Job{})
		assert.Equal(t, hunt.EINVALID, hunt.ErrorCode(err))
	})
}

func TestJobService_FindJobs(t *testing.T) {
	t.Parallel()

	t.Run("returns jobs in insertion order with pay and employer", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		ctx := context.Background()
		svc := sqlite.NewJobService(db)

		payMin, payMax := int64(150000), int64(200000)
		require.NoError(t, svc.CreateJob(ctx, &hunt.Job{Title: "First", Employer: "Acme", PayMin: &payMin, PayMax: &payMax}))
		require.NoError(t, svc.CreateJob(ctx, &hunt.Job{Title: "Second", Employer: "Other"}))

		jobs, err := svc.FindJobs(ctx, hunt.JobFilter{})
		require.NoError(t, err)
		require.Len(t, jobs, 2)

		assert.Equal(t, "First", jobs[0].Title)
		assert.Equal(t, "Acme", jobs[0].Employer)
		require.NotNil(t, jobs[0].PayMin)
		assert.Equal(t, int64(150000), *jobs[0].PayMin)
		assert.Equal(t, "Second", jobs[1].Title)
		assert.Nil(t, jobs[1].PayMin)
	})

	t.Run("filters by status and employer", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		ctx := context.Background()
		svc := sqlite.NewJobService(db)

		applied := hunt.StatusApplied
		require.NoError(t, svc.CreateJob(ctx, &hunt.Job{Title: "A", Employer: "Acme", Status: applied}))
		require.NoError(t, svc.CreateJob(ctx, &hunt.Job{Title: "B", Employer: "Acme"}))
		require.NoError(t, svc.CreateJob(ctx, &hunt.Job{Title: "C", Employer: "Other", Status: applied}))

		employer := "acme"
		jobs, err := svc.FindJobs(ctx, hunt.JobFilter{Status: &applied, Employer: &employer})
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, "A", jobs[0].Title)
	})

	t.Run("selects jobs missing a description", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		ctx := context.Background()
		svc := sqlite.NewJobService(db)

		require.NoError(t, svc.CreateJob(ctx, &hunt.Job{Title: "Needs fetch", URL: "https://example.com/1"}))
		require.NoError(t, svc.CreateJob(ctx, &hunt.Job{Title: "Has text", URL: "https://example.com/2", RawText: "description"}))
		require.NoError(t, svc.CreateJob(ctx, &hunt.Job{Title: "No URL"}))

		jobs, err := svc.FindJobs(ctx, hunt.JobFilter{MissingDescription: true})
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, "Needs fetch", jobs[0].Title)
	})
}

func TestJobService_FindJobRefs(t *testing.T) {
	t.Parallel()

	db := mustOpenDB(t)
	ctx := context.Background()
	svc := sqlite.NewJobService(db)

	require.NoError(t, svc.CreateJob(ctx, &hunt.Job{Title: "A", Employer: "Acme", URL: "https://example.com/a"}))
	require.NoError(t, svc.CreateJob(ctx, &hunt.Job{Title: "B", Employer: "Other", URL: "https://example.com/b"}))

	refs, err := svc.FindJobRefs(ctx, hunt.JobRefFilter{})
	require.NoError(t, err)
	require.Len(t, refs, 2)
	assert.Equal(t, "A", refs[0].Title)
	assert.Equal(t, "Acme", refs[0].Employer)

	url := "https://example.com/b"
	refs, err = svc.FindJobRefs(ctx, hunt.JobRefFilter{URL: &url})
	require.NoError(t, err)
	require.Len(t, refs, 1)
	assert.Equal(t, "B", refs[0].Title)
}

func TestJobService_UpdateJob(t *testing.T) {
	t.Parallel()

	t.Run("applies partial updates", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		ctx := context.Background()
		svc := sqlite.NewJobService(db)

		job := &hunt.Job{Title: "Engineer", Employer: "Acme"}
		require.NoError(t, svc.CreateJob(ctx, job))

		rawText := "cleaned description"
		closed := true
		status := hunt.StatusClosed
		updated, err := svc.UpdateJob(ctx, job.ID, hunt.JobUpdate{
			RawText: &rawText,
			Closed:  &closed,
			Status:  &status,
		})
		require.NoError(t, err)

		assert.Equal(t, "cleaned description", updated.RawText)
		assert.True(t, updated.Closed)
		assert.Equal(t, hunt.StatusClosed, updated.Status)
		assert.Equal(t, "Engineer", updated.Title)
	})

	t.Run("returns ENOTFOUND for missing job", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		svc := sqlite.NewJobService(db)

		_, err := svc.UpdateJob(context.Background(), "missing", hunt.JobUpdate{})
		assert.Equal(t, hunt.ENOTFOUND, hunt.ErrorCode(err))
	})
}

func TestJobService_DeleteJob(t *testing.T) {
	t.Parallel()

	t.Run("removes job and its snapshots", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		ctx := context.Background()
		svc := sqlite.NewJobService(db)
		snaps := sqlite.NewSnapshotService(db)

		job := &hunt.Job{Title: "Engineer", Employer: "Acme"}
		require.NoError(t, svc.CreateJob(ctx, job))
		require.NoError(t, snaps.CreateSnapshot(ctx, &hunt.Snapshot{JobID: job.ID, RawText: "text"}))

		require.NoError(t, svc.DeleteJob(ctx, job.ID))

		_, err := svc.FindJobByID(ctx, job.ID)
		assert.Equal(t, hunt.ENOTFOUND, hunt.ErrorCode(err))

		remaining, err := snaps.ListSnapshots(ctx, job.ID)
		require.NoError(t, err)
		assert.Empty(t, remaining)
	})

	t.Run("returns ENOTFOUND for missing job", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		svc := sqlite.NewJobService(db)

		err := svc.DeleteJob(context.Background(), "missing")
		assert.Equal(t, hunt.ENOTFOUND, hunt.ErrorCode(err))
	})
}
