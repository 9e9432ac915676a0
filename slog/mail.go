package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/jobhunt-dev/hunt"
)

// Ensure LoggingMailSource implements hunt.MailSource.
var _ hunt.MailSource = (*LoggingMailSource)(nil)

// LoggingMailSource wraps a MailSource with debug logging.
type LoggingMailSource struct {
	next   hunt.MailSource
	logger *slog.Logger
}

// NewLoggingMailSource creates a new LoggingMailSource.
func NewLoggingMailSource(next hunt.MailSource, logger *slog.Logger) *LoggingMailSource {
	return &LoggingMailSource{next: next, logger: logger}
}

// FetchAlerts logs the search window and delegates to the wrapped source.
func (s *LoggingMailSource) FetchAlerts(ctx context.Context, since time.Time) (messages []*hunt.MailMessage, err error) {
	defer func(begin time.Time) {
		s.logger.Info("fetch alerts",
			"since", since,
			"messages", len(messages),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FetchAlerts(ctx, since)
}

// Close delegates to the wrapped source.
func (s *LoggingMailSource) Close() error {
	return s.next.Close()
}
