package hunt

import (
	"context"
	"time"
)

// EmployerStatus marks how an employer should be treated by ranking and
// ingestion. Blocked employers ("never") are effectively excluded.
type EmployerStatus string

// EmployerStatus values.
const (
	EmployerOK    EmployerStatus = "ok"
	EmployerYuck  EmployerStatus = "yuck"
	EmployerNever EmployerStatus = "never"
)

// Employer represents a company that posted one or more jobs.
type Employer struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Domain    string         `json:"domain"`
	Status    EmployerStatus `json:"status"`
	Notes     string         `json:"notes"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// Validate returns an error if the employer contains invalid fields.
func (e *Employer) Validate() error {
	if e.Name == "" {
		return Errorf(EINVALID, "employer name required")
	}
	return nil
}

// EmployerService represents a service for managing employers.
// Name matching is case-insensitive throughout.
type EmployerService interface {
	// GetOrCreateEmployer finds an employer by name or creates it with
	// status "ok".
	GetOrCreateEmployer(ctx context.Context, name string) (*Employer, error)

	// FindEmployerByName retrieves an employer by name.
	// Returns ENOTFOUND if the employer does not exist.
	FindEmployerByName(ctx context.Context, name string) (*Employer, error)

	// ListEmployers retrieves employers sorted by name, optionally
	// filtered by status.
	ListEmployers(ctx context.Context, status *EmployerStatus) ([]*Employer, error)

	// SetEmployerStatus sets the status, creating the employer if needed.
	SetEmployerStatus(ctx context.Context, name string, status EmployerStatus) error
}
