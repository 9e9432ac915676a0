package hunt_test

import (
	"testing"

	"github.com/jobhunt-dev/hunt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreJob(t *testing.T) {
	t.Parallel()

	t.Run("pay raises the score with a cap", func(t *testing.T) {
		t.Parallel()

		pay := int64(400000)
		job := &hunt.Job{Title: "Engineer", Status: hunt.StatusNew, PayMax: &pay}

		// base 50 + capped pay bonus 30 + new bonus 5
		assert.InDelta(t, 85.0, hunt.ScoreJob(job, hunt.EmployerOK), 0.001)
	})

	t.Run("blocked employer is effectively excluded", func(t *testing.T) {
		t.Parallel()

		job := &hunt.Job{Title: "Engineer", Status: hunt.StatusNew}

		assert.Zero(t, hunt.ScoreJob(job, hunt.EmployerNever))
	})

	t.Run("reviewing beats new", func(t *testing.T) {
		t.Parallel()

		reviewing := &hunt.Job{Title: "A", Status: hunt.StatusReviewing}
		fresh := &hunt.Job{Title: "B", Status: hunt.StatusNew}

		assert.Greater(t, hunt.ScoreJob(reviewing, hunt.EmployerOK), hunt.ScoreJob(fresh, hunt.EmployerOK))
	})
}

func TestRankJobs(t *testing.T) {
	t.Parallel()

	pay := int64(200000)
	jobs := []*hunt.Job{
		{ID: "1", Title: "Low", Status: hunt.StatusNew},
		{ID: "2", Title: "High", Status: hunt.StatusNew, PayMax: &pay},
		{ID: "3", Title: "Closed", Status: hunt.StatusClosed, PayMax: &pay},
		{ID: "4", Title: "Rejected", Status: hunt.StatusRejected},
	}

	ranked := hunt.RankJobs(jobs, 10, nil)

	require.Len(t, ranked, 2)
	assert.Equal(t, "2", ranked[0].Job.ID)
	assert.Equal(t, "1", ranked[1].Job.ID)
}
