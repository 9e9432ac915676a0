package hunt

import "sort"

// Scoring weights for RankJobs. The base score is adjusted by pay,
// employer status, and application status; the floor is zero.
const (
	scoreBase           = 50.0
	scorePayMaxCap      = 30.0
	scorePayMinCap      = 20.0
	scorePenaltyYuck    = 20.0
	scorePenaltyNever   = 100.0
	scoreBonusReviewing = 10.0
	scoreBonusNew       = 5.0
)

// ScoredJob pairs a job with its ranking score.
type ScoredJob struct {
	Job   *Job
	Score float64
}

// ScoreJob computes a ranking score for a job given its employer's status.
// Higher pay raises the score; blocked employers are effectively excluded.
func ScoreJob(job *Job, employerStatus EmployerStatus) float64 {
	score := scoreBase

	if job.PayMax != nil {
		score += min(float64(*job.PayMax)/10000.0, scorePayMaxCap)
	} else if job.PayMin != nil {
		score += min(float64(*job.PayMin)/15000.0, scorePayMinCap)
	}

	switch employerStatus {
	case EmployerYuck:
		score -= scorePenaltyYuck
	case EmployerNever:
		score -= scorePenaltyNever
	}

	switch job.Status {
	case StatusReviewing:
		score += scoreBonusReviewing
	case StatusNew:
		score += scoreBonusNew
	}

	return max(score, 0)
}

// RankJobs scores the given jobs and returns the top n, highest first.
// Closed and rejected jobs are excluded. statusOf supplies each job's
// employer status; jobs without an employer are scored as EmployerOK.
func RankJobs(jobs []*Job, n int, statusOf func(employerID string) EmployerStatus) []ScoredJob {
	scored := make([]ScoredJob, 0, len(jobs))
	for _, job := range jobs {
		if job.Status == StatusClosed || job.Status == StatusRejected {
			continue
		}
		status := EmployerOK
		if job.EmployerID != "" && statusOf != nil {
			status = statusOf(job.EmployerID)
		}
		scored = append(scored, ScoredJob{Job: job, Score: ScoreJob(job, status)})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if n > 0 && len(scored) > n {
		scored = scored[:n]
	}
	return scored
}
