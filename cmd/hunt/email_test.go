package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/jobhunt-dev/hunt"
	main "github.com/jobhunt-dev/hunt/cmd/hunt"
	"github.com/jobhunt-dev/hunt/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("ingests alerts and prints a summary", func(t *testing.T) {
		t.Parallel()

		var receivedSince time.Time
		mail := &mock.MailSource{
			FetchAlertsFn: func(_ context.Context, since time.Time) ([]*hunt.MailMessage, error) {
				receivedSince = since
				return []*hunt.MailMessage{
					{From: "jobs-noreply@linkedin.com", Subject: "alert", Body: "body"},
				}, nil
			},
		}
		parser := &mock.AlertParser{
			ParseFn: func(from, subject, body string) ([]hunt.ParsedJob, error) {
				return []hunt.ParsedJob{
					{Title: "Platform Engineer", Employer: "Acme", URL: "https://example.com/1"},
				}, nil
			},
		}
		jobs := &mock.JobService{
			FindJobRefsFn: func(_ context.Context, _ hunt.JobRefFilter) ([]hunt.JobRef, error) {
				return nil, nil
			},
			CreateJobFn: func(_ context.Context, job *hunt.Job) error {
				job.ID = "job-1"
				return nil
			},
		}
		employers := &mock.EmployerService{
			FindEmployerByNameFn: func(_ context.Context, name string) (*hunt.Employer, error) {
				return nil, hunt.Errorf(hunt.ENOTFOUND, "employer not found")
			},
		}

		stdout := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Jobs:      jobs,
			Employers: employers,
			Mail:      mail,
			Parser:    parser,
		}

		cmd := &main.EmailCmd{Days: 14}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "1 emails, 1 candidates: 1 added, 0 duplicates, 0 blocked")
		// Since should be about 14 days back
		assert.WithinDuration(t, time.Now().AddDate(0, 0, -14), receivedSince, time.Minute)
	})

	t.Run("dry run says nothing was stored", func(t *testing.T) {
		t.Parallel()

		mail := &mock.MailSource{
			FetchAlertsFn: func(_ context.Context, _ time.Time) ([]*hunt.MailMessage, error) {
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Mail:   mail,
		}

		cmd := &main.EmailCmd{Days: 7, DryRun: true}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Dry run")
	})

	t.Run("returns error when mailbox fetch fails", func(t *testing.T) {
		t.Parallel()

		mail := &mock.MailSource{
			FetchAlertsFn: func(_ context.Context, _ time.Time) ([]*hunt.MailMessage, error) {
				return nil, hunt.Errorf(hunt.EUNAVAILABLE, "login failed")
			},
		}

		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Mail:   mail,
		}

		cmd := &main.EmailCmd{Days: 7}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
		assert.Contains(t, stderr.String(), "login failed")
	})
}
