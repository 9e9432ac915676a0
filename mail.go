package hunt

import (
	"context"
	"time"
)

// MailMessage is a raw job-alert email fetched from a mailbox.
// Body holds the HTML part when the message has one, otherwise plain text.
type MailMessage struct {
	From    string
	Subject string
	Date    time.Time
	Body    string
}

// MailSource retrieves job-alert emails from a mailbox.
// Implementations hide protocol details (IMAP, TLS, provider quirks).
type MailSource interface {
	// FetchAlerts returns job-alert messages received since the given
	// time, deduplicated by message ID across sender queries.
	FetchAlerts(ctx context.Context, since time.Time) ([]*MailMessage, error)

	// Close logs out and releases the connection.
	Close() error
}
