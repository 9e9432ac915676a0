package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jobhunt-dev/hunt"
)

// Compile-time interface verification.
var _ hunt.JobService = (*JobService)(nil)

// JobService implements hunt.JobService using SQLite.
type JobService struct {
	db        *DB
	employers *EmployerService
}

// NewJobService creates a new JobService.
func NewJobService(db *DB) *JobService {
	return &JobService{db: db, employers: NewEmployerService(db)}
}

// jobColumns is the select list shared by all job queries. The employer name
// is denormalized through a join so callers never see a bare employer ID.
const jobColumns = `j.id, j.employer_id, COALESCE(e.name, ''), j.title, j.url, j.location,
	j.source, j.status, j.pay_min, j.pay_max, j.job_code, j.closed, j.raw_text,
	j.created_at, j.updated_at`

// CreateJob creates a new job, creating its employer if needed.
func (s *JobService) CreateJob(ctx context.Context, job *hunt.Job) error {
	if err := job.Validate(); err != nil {
		return err
	}

	if job.Employer != "" && job.EmployerID == "" {
		employer, err := s.employers.GetOrCreateEmployer(ctx, job.Employer)
		if err != nil {
			return err
		}
		job.EmployerID = employer.ID
		job.Employer = employer.Name
	}

	job.ID = uuid.New().String()
	if job.Status == "" {
		job.Status = hunt.StatusNew
	}
	now := time.Now().UTC()
	job.CreatedAt = now
	job.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO jobs (id, employer_id, title, url, location, source, status,
			pay_min, pay_max, job_code, closed, raw_text, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, job.ID, nullIfEmpty(job.EmployerID), job.Title, job.URL, job.Location, string(job.Source),
		string(job.Status), job.PayMin, job.PayMax, job.JobCode, job.Closed, job.RawText,
		job.CreatedAt.Format(time.RFC3339), job.UpdatedAt.Format(time.RFC3339))

	return err
}

// FindJobByID retrieves a job by ID.
func (s *JobService) FindJobByID(ctx context.Context, id string) (*hunt.Job, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+jobColumns+`
		FROM jobs j LEFT JOIN employers e ON e.id = j.employer_id
		WHERE j.id = ?
	`, id)

	job, err := scanJob(row)
	if err == sql.ErrNoRows {
		return nil, hunt.Errorf(hunt.ENOTFOUND, "job not found")
	}
	if err != nil {
		return nil, err
	}

	return job, nil
}

// FindJobs retrieves jobs matching the filter in insertion order.
func (s *JobService) FindJobs(ctx context.Context, filter hunt.JobFilter) ([]*hunt.Job, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + jobColumns + " FROM jobs j LEFT JOIN employers e ON e.id = j.employer_id WHERE 1=1")

	if filter.Status != nil {
		query.WriteString(" AND j.status = ?")
		args = append(args, string(*filter.Status))
	}
	if filter.Employer != nil {
		query.WriteString(" AND e.name = ? COLLATE NOCASE")
		args = append(args, *filter.Employer)
	}
	if filter.MissingDescription {
		query.WriteString(" AND j.url != '' AND j.raw_text = ''")
	}

	query.WriteString(" ORDER BY j.rowid ASC")
	query.WriteString(formatLimitOffset(filter.Limit, filter.Offset))

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []*hunt.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}

	return jobs, rows.Err()
}

// FindJobRefs retrieves dedup projections matching the filter in insertion order.
func (s *JobService) FindJobRefs(ctx context.Context, filter hunt.JobRefFilter) ([]hunt.JobRef, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT j.id, j.title, COALESCE(e.name, ''), j.url FROM jobs j LEFT JOIN employers e ON e.id = j.employer_id WHERE 1=1")

	if filter.Employer != nil {
		query.WriteString(" AND e.name = ? COLLATE NOCASE")
		args = append(args, *filter.Employer)
	}
	if filter.URL != nil {
		query.WriteString(" AND j.url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY j.rowid ASC")

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var refs []hunt.JobRef
	for rows.Next() {
		var ref hunt.JobRef
		if err := rows.Scan(&ref.ID, &ref.Title, &ref.Employer, &ref.URL); err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}

	return refs, rows.Err()
}

// UpdateJob applies the update and returns the updated job.
func (s *JobService) UpdateJob(ctx context.Context, id string, upd hunt.JobUpdate) (*hunt.Job, error) {
	job, err := s.FindJobByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Status != nil {
		job.Status = *upd.Status
	}
	if upd.RawText != nil {
		job.RawText = *upd.RawText
	}
	if upd.PayMin != nil {
		job.PayMin = upd.PayMin
	}
	if upd.PayMax != nil {
		job.PayMax = upd.PayMax
	}
	if upd.JobCode != nil {
		job.JobCode = *upd.JobCode
	}
	if upd.Closed != nil {
		job.Closed = *upd.Closed
	}
	if upd.Location != nil {
		job.Location = *upd.Location
	}

	if err := job.Validate(); err != nil {
		return nil, err
	}

	job.UpdatedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx, `
		UPDATE jobs
		SET status = ?, raw_text = ?, pay_min = ?, pay_max = ?, job_code = ?, closed = ?, location = ?, updated_at = ?
		WHERE id = ?
	`, string(job.Status), job.RawText, job.PayMin, job.PayMax, job.JobCode, job.Closed,
		job.Location, job.UpdatedAt.Format(time.RFC3339), id)

	if err != nil {
		return nil, err
	}

	return job, nil
}

// DeleteJob permanently removes a job. Its snapshots are removed by the
// foreign key cascade.
func (s *JobService) DeleteJob(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM jobs WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return hunt.Errorf(hunt.ENOTFOUND, "job not found")
	}

	return nil
}

// scanner abstracts *sql.Row and *sql.Rows for scanJob.
type scanner interface {
	Scan(dest ...any) error
}

func scanJob(row scanner) (*hunt.Job, error) {
	var job hunt.Job
	var employerID sql.NullString
	var source, status, createdAt, updatedAt string

	err := row.Scan(&job.ID, &employerID, &job.Employer, &job.Title, &job.URL, &job.Location,
		&source, &status, &job.PayMin, &job.PayMax, &job.JobCode, &job.Closed, &job.RawText,
		&createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	job.EmployerID = employerID.String
	job.Source = hunt.Source(source)
	job.Status = hunt.JobStatus(status)
	if job.CreatedAt, err = parseTime("created_at", createdAt); err != nil {
		return nil, err
	}
	if job.UpdatedAt, err = parseTime("updated_at", updatedAt); err != nil {
		return nil, err
	}

	return &job, nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
