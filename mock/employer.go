package mock

import (
	"context"

	"github.com/jobhunt-dev/hunt"
)

var _ hunt.EmployerService = (*EmployerService)(nil)

// EmployerService is a mock implementation of hunt.EmployerService.
type EmployerService struct {
	GetOrCreateEmployerFn func(ctx context.Context, name string) (*hunt.Employer, error)
	FindEmployerByNameFn  func(ctx context.Context, name string) (*hunt.Employer, error)
	ListEmployersFn       func(ctx context.Context, status *hunt.EmployerStatus) ([]*hunt.Employer, error)
	SetEmployerStatusFn   func(ctx context.Context, name string, status hunt.EmployerStatus) error
}

func (s *EmployerService) GetOrCreateEmployer(ctx context.Context, name string) (*hunt.Employer, error) {
	return s.GetOrCreateEmployerFn(ctx, name)
}

func (s *EmployerService) FindEmployerByName(ctx context.Context, name string) (*hunt.Employer, error) {
	return s.FindEmployerByNameFn(ctx, name)
}

func (s *EmployerService) ListEmployers(ctx context.Context, status *hunt.EmployerStatus) ([]*hunt.Employer, error) {
	return s.ListEmployersFn(ctx, status)
}

func (s *EmployerService) SetEmployerStatus(ctx context.Context, name string, status hunt.EmployerStatus) error {
	return s.SetEmployerStatusFn(ctx, name, status)
}
