package mock

import (
	"context"
	"time"

	"github.com/jobhunt-dev/hunt"
)

var _ hunt.MailSource = (*MailSource)(nil)

// MailSource is a mock implementation of hunt.MailSource.
type MailSource struct {
	FetchAlertsFn func(ctx context.Context, since time.Time) ([]*hunt.MailMessage, error)
	CloseFn       func() error
}

func (s *MailSource) FetchAlerts(ctx context.Context, since time.Time) ([]*hunt.MailMessage, error) {
	return s.FetchAlertsFn(ctx, since)
}

func (s *MailSource) Close() error {
	return s.CloseFn()
}
