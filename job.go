package hunt

import (
	"context"
	"time"
)

// Source identifies where a posting was discovered.
type Source string

// Source values recognized by the ingestion pipeline.
const (
	SourceLinkedIn Source = "linkedin"
	SourceIndeed   Source = "indeed"
	SourceEmail    Source = "email-generic"
	SourceScrape   Source = "scrape"
)

// JobStatus tracks where an application stands.
type JobStatus string

// JobStatus values.
const (
	StatusNew       JobStatus = "new"
	StatusReviewing JobStatus = "reviewing"
	StatusApplied   JobStatus = "applied"
	StatusRejected  JobStatus = "rejected"
	StatusClosed    JobStatus = "closed"
)

// Job represents a stored job posting.
type Job struct {
	ID         string    `json:"id"`
	EmployerID string    `json:"employerId"`
	Employer   string    `json:"employer"` // denormalized employer name
	Title      string    `json:"title"`
	URL        string    `json:"url"`
	Location   string    `json:"location"`
	Source     Source    `json:"source"`
	Status     JobStatus `json:"status"`
	PayMin     *int64    `json:"payMin"`
	PayMax     *int64    `json:"payMax"`
	JobCode    string    `json:"jobCode"`
	Closed     bool      `json:"closed"` // posting no longer accepting applications
	RawText    string    `json:"rawText"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Validate returns an error if the job contains invalid fields.
func (j *Job) Validate() error {
	if j.Title == "" {
		return Errorf(EINVALID, "job title required")
	}
	if j.PayMin != nil && j.PayMax != nil && *j.PayMin > *j.PayMax {
		return Errorf(EINVALID, "job pay range reversed")
	}
	return nil
}

// ParsedJob is the immutable record produced by one extraction pass over a
// cleaned posting. It is either stored as a new job or discarded as a
// duplicate of an existing one; it is never mutated after construction.
type ParsedJob struct {
	Title    string
	Employer string
	URL      string
	Location string
	PayMin   *int64
	PayMax   *int64
	JobCode  string
	Closed   bool
	Source   Source
	RawText  string
}

// Validate returns an error if the parsed job cannot become a record.
func (p *ParsedJob) Validate() error {
	if p.Title == "" {
		return Errorf(EINVALID, "parsed job title required")
	}
	return nil
}

// JobRef is a read-only projection of a stored job, supplied by the storage
// layer for duplicate checks. The dedup engine never mutates storage; it
// only computes match decisions over these projections.
type JobRef struct {
	ID       string
	Title    string
	Employer string
	URL      string
}

// JobService represents a service for managing stored jobs.
type JobService interface {
	// CreateJob creates a new job, creating its employer if needed.
	CreateJob(ctx context.Context, job *Job) error

	// FindJobByID retrieves a job by ID.
	// Returns ENOTFOUND if the job does not exist.
	FindJobByID(ctx context.Context, id string) (*Job, error)

	// FindJobs retrieves jobs matching the filter in insertion order.
	FindJobs(ctx context.Context, filter JobFilter) ([]*Job, error)

	// FindJobRefs retrieves dedup projections matching the filter in
	// insertion order.
	FindJobRefs(ctx context.Context, filter JobRefFilter) ([]JobRef, error)

	// UpdateJob applies the update and returns the updated job.
	// Returns ENOTFOUND if the job does not exist.
	UpdateJob(ctx context.Context, id string, upd JobUpdate) (*Job, error)

	// DeleteJob permanently removes a job and its snapshots.
	// Returns ENOTFOUND if the job does not exist.
	DeleteJob(ctx context.Context, id string) error
}

// JobFilter represents a filter for FindJobs.
type JobFilter struct {
	Status   *JobStatus
	Employer *string

	// MissingDescription selects jobs that have a URL but no raw text,
	// i.e. candidates for the description fetch loop.
	MissingDescription bool

	Offset int
	Limit  int
}

// JobRefFilter represents a filter for FindJobRefs.
// A zero filter returns the whole corpus.
type JobRefFilter struct {
	Employer *string
	URL      *string
}

// JobUpdate represents a partial update to a job.
type JobUpdate struct {
	Status   *JobStatus
	RawText  *string
	PayMin   *int64
	PayMax   *int64
	JobCode  *string
	Closed   *bool
	Location *string
}
