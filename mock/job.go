// Package mock provides mock implementations of hunt service interfaces.
package mock

import (
	"context"

	"github.com/jobhunt-dev/hunt"
)

var _ hunt.JobService = (*JobService)(nil)

// JobService is a mock implementation of hunt.JobService.
type JobService struct {
	CreateJobFn   func(ctx context.Context, job *hunt.Job) error
	FindJobByIDFn func(ctx context.Context, id string) (*hunt.Job, error)
	FindJobsFn    func(ctx context.Context, filter hunt.JobFilter) ([]*hunt.Job, error)
	FindJobRefsFn func(ctx context.Context, filter hunt.JobRefFilter) ([]hunt.JobRef, error)
	UpdateJobFn   func(ctx context.Context, id string, upd hunt.JobUpdate) (*hunt.Job, error)
	DeleteJobFn   func(ctx context.Context, id string) error
}

func (s *JobService) CreateJob(ctx context.Context, job *hunt.Job) error {
	return s.CreateJobFn(ctx, job)
}

func (s *JobService) FindJobByID(ctx context.Context, id string) (*hunt.Job, error) {
	return s.FindJobByIDFn(ctx, id)
}

func (s *JobService) FindJobs(ctx context.Context, filter hunt.JobFilter) ([]*hunt.Job, error) {
	return s.FindJobsFn(ctx, filter)
}

func (s *JobService) FindJobRefs(ctx context.Context, filter hunt.JobRefFilter) ([]hunt.JobRef, error) {
	return s.FindJobRefsFn(ctx, filter)
}

func (s *JobService) UpdateJob(ctx context.Context, id string, upd hunt.JobUpdate) (*hunt.Job, error) {
	return s.UpdateJobFn(ctx, id, upd)
}

func (s *JobService) DeleteJob(ctx context.Context, id string) error {
	return s.DeleteJobFn(ctx, id)
}
