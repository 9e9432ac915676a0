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
var _ hunt.EmployerService = (*EmployerService)(nil)

// EmployerService implements hunt.EmployerService using SQLite.
// Employer names are matched case-insensitively.
type EmployerService struct {
	db *DB
}

// NewEmployerService creates a new EmployerService.
func NewEmployerService(db *DB) *EmployerService {
	return &EmployerService{db: db}
}

// GetOrCreateEmployer finds an employer by name or creates it with status "ok".
func (s *EmployerService) GetOrCreateEmployer(ctx context.Context, name string) (*hunt.Employer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, hunt.Errorf(hunt.EINVALID, "employer name required")
	}

	employer, err := s.FindEmployerByName(ctx, name)
	if err == nil {
		return employer, nil
	}
	if hunt.ErrorCode(err) != hunt.ENOTFOUND {
		return nil, err
	}

	employer = &hunt.Employer{
		ID:     uuid.New().String(),
		Name:   name,
		Status: hunt.EmployerOK,
	}
	now := time.Now().UTC()
	employer.CreatedAt = now
	employer.UpdatedAt = now

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO employers (id, name, domain, status, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, employer.ID, employer.Name, employer.Domain, string(employer.Status), employer.Notes,
		employer.CreatedAt.Format(time.RFC3339), employer.UpdatedAt.Format(time.RFC3339))
	if err != nil {
		return nil, err
	}

	return employer, nil
}

// FindEmployerByName retrieves an employer by name.
func (s *EmployerService) FindEmployerByName(ctx context.Context, name string) (*hunt.Employer, error) {
	var employer hunt.Employer
	var status, createdAt, updatedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, domain, status, notes, created_at, updated_at
		FROM employers
		WHERE name = ? COLLATE NOCASE
	`, name).Scan(&employer.ID, &employer.Name, &employer.Domain, &status, &employer.Notes,
		&createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, hunt.Errorf(hunt.ENOTFOUND, "employer not found")
	}
	if err != nil {
		return nil, err
	}

	employer.Status = hunt.EmployerStatus(status)
	if employer.CreatedAt, err = parseTime("created_at", createdAt); err != nil {
		return nil, err
	}
	if employer.UpdatedAt, err = parseTime("updated_at", updatedAt); err != nil {
		return nil, err
	}

	return &employer, nil
}

// ListEmployers retrieves employers sorted by name, optionally filtered by status.
func (s *EmployerService) ListEmployers(ctx context.Context, status *hunt.EmployerStatus) ([]*hunt.Employer, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, name, domain, status, notes, created_at, updated_at FROM employers WHERE 1=1")

	if status != nil {
		query.WriteString(" AND status = ?")
		args = append(args, string(*status))
	}

	query.WriteString(" ORDER BY name COLLATE NOCASE ASC")

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employers []*hunt.Employer
	for rows.Next() {
		var employer hunt.Employer
		var st, createdAt, updatedAt string

		if err := rows.Scan(&employer.ID, &employer.Name, &employer.Domain, &st, &employer.Notes,
			&createdAt, &updatedAt); err != nil {
			return nil, err
		}

		employer.Status = hunt.EmployerStatus(st)
		if employer.CreatedAt, err = parseTime("created_at", createdAt); err != nil {
			return nil, err
		}
		if employer.UpdatedAt, err = parseTime("updated_at", updatedAt); err != nil {
			return nil, err
		}

		employers = append(employers, &employer)
	}

	return employers, rows.Err()
}

// SetEmployerStatus sets the status, creating the employer if needed.
func (s *EmployerService) SetEmployerStatus(ctx context.Context, name string, status hunt.EmployerStatus) error {
	employer, err := s.GetOrCreateEmployer(ctx, name)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE employers
		SET status = ?, updated_at = ?
		WHERE id = ?
	`, string(status), time.Now().UTC().Format(time.RFC3339), employer.ID)

	return err
}
