// Package imap provides an IMAP-based mail source for job alert emails.
package imap

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"github.com/emersion/go-imap"
	"github.com/emersion/go-imap/client"
	"github.com/jobhunt-dev/hunt"
)

// Ensure MailSource implements hunt.MailSource at compile time.
var _ hunt.MailSource = (*MailSource)(nil)

// defaultSenders are the alert senders searched when none are configured.
var defaultSenders = []string{
	"jobs-noreply@linkedin.com",
	"jobalerts-noreply@linkedin.com",
	"alert@indeed.com",
	"noreply@indeed.com",
}

// MailSource retrieves job alert emails over IMAP.
type MailSource struct {
	c       *client.Client
	mailbox string
	senders []string
}

// Option configures a MailSource.
type Option func(*MailSource)

// WithMailbox selects the mailbox to search. Defaults to INBOX.
func WithMailbox(name string) Option {
	return func(s *MailSource) {
		s.mailbox = name
	}
}

// WithSenders replaces the default set of alert sender addresses.
func WithSenders(senders ...string) Option {
	return func(s *MailSource) {
		s.senders = senders
	}
}

// NewMailSource connects to the IMAP server over TLS and authenticates.
// Close must be called when the MailSource is no longer needed.
func NewMailSource(addr, username, password string, opts ...Option) (*MailSource, error) {
	c, err := client.DialTLS(addr, &tls.Config{})
	if err != nil {
		return nil, fmt.Errorf("connecting to IMAP server: %w", err)
	}

	if err := c.Login(username, password); err != nil {
		c.Close()
		return nil, hunt.Errorf(hunt.EUNAVAILABLE, "IMAP login failed: %v", err)
	}

	s := &MailSource{
		c:       c,
		mailbox: "INBOX",
		senders: defaultSenders,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// FetchAlerts retrieves alert emails received since the given time, oldest
// first. Messages are deduplicated by Message-ID across sender searches.
func (s *MailSource) FetchAlerts(ctx context.Context, since time.Time) ([]*hunt.MailMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mbox, err := s.c.Select(s.mailbox, true)
	if err != nil {
		return nil, fmt.Errorf("selecting %s: %w", s.mailbox, err)
	}
	if mbox.Messages == 0 {
		return nil, nil
	}

	var ids []uint32
	seen := make(map[uint32]bool)
	for _, sender := range s.senders {
		criteria := imap.NewSearchCriteria()
		criteria.Since = since
		criteria.Header.Add("From", sender)

		found, err := s.c.Search(criteria)
		if err != nil {
			return nil, fmt.Errorf("searching for %s: %w", sender, err)
		}
		for _, id := range found {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}

	if len(ids) == 0 {
		return nil, nil
	}

	return s.fetchMessages(ctx, ids)
}

// Close logs out and closes the connection.
func (s *MailSource) Close() error {
	return s.c.Logout()
}

func (s *MailSource) fetchMessages(ctx context.Context, ids []uint32) ([]*hunt.MailMessage, error) {
	seqset := new(imap.SeqSet)
	seqset.AddNum(ids...)

	section := &imap.BodySectionName{Peek: true}
	items := []imap.FetchItem{imap.FetchEnvelope, section.FetchItem()}

	messages := make(chan *imap.Message, len(ids))
	done := make(chan error, 1)
	go func() {
		done <- s.c.Fetch(seqset, items, messages)
	}()

	var out []*hunt.MailMessage
	seenMessageIDs := make(map[string]bool)
	for msg := range messages {
		if err := ctx.Err(); err != nil {
			<-done
			return nil, err
		}

		mail := convertMessage(msg, section)
		if mail == nil {
			continue
		}
		if id := msg.Envelope.MessageId; id != "" {
			if seenMessageIDs[id] {
				continue
			}
			seenMessageIDs[id] = true
		}
		out = append(out, mail)
	}

	if err := <-done; err != nil {
		return nil, fmt.Errorf("fetching messages: %w", err)
	}

	return out, nil
}

func convertMessage(msg *imap.Message, section *imap.BodySectionName) *hunt.MailMessage {
	if msg.Envelope == nil {
		return nil
	}

	mail := &hunt.MailMessage{
		Subject: msg.Envelope.Subject,
		Date:    msg.Envelope.Date,
	}
	if len(msg.Envelope.From) > 0 {
		mail.From = msg.Envelope.From[0].Address()
	}

	body := msg.GetBody(section)
	if body == nil {
		return nil
	}
	text, err := ReadBody(body)
	if err != nil {
		return nil
	}
	mail.Body = text

	return mail
}
