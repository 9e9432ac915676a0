// Package ingest provides job ingestion orchestration. It coordinates alert
// email retrieval, posting extraction, duplicate detection, description
// fetching, and storage cleanup.
package ingest

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/jobhunt-dev/hunt"
	"golang.org/x/sync/errgroup"
)

// Ingestor turns alert emails into stored jobs.
type Ingestor struct {
	Mail      hunt.MailSource
	Parser    hunt.AlertParser
	Jobs      hunt.JobService
	Employers hunt.EmployerService

	// Concurrency bounds parallel email parsing. Admission against the
	// stored corpus is always serialized so dedup decisions see every
	// earlier admission.
	Concurrency int

	// DryRun reports what would be added without writing anything.
	DryRun bool
}

// IngestStats summarizes one ingestion run.
type IngestStats struct {
	Messages   int // alert emails retrieved
	Candidates int // postings extracted from them
	Added      int // new jobs stored
	Duplicates int // candidates matching an existing job
	Blocked    int // candidates from a "never" employer
	Failed     int // emails that could not be parsed
}

// Run retrieves alert emails received since the given time and admits the
// postings they contain.
func (ing *Ingestor) Run(ctx context.Context, since time.Time) (*IngestStats, error) {
	messages, err := ing.Mail.FetchAlerts(ctx, since)
	if err != nil {
		return nil, err
	}

	stats := &IngestStats{Messages: len(messages)}
	if len(messages) == 0 {
		return stats, nil
	}

	concurrency := ing.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	// Parse in parallel; results keep message order so admission is
	// deterministic.
	parsed := make([][]hunt.ParsedJob, len(messages))
	var failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, msg := range messages {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			jobs, err := ing.Parser.Parse(msg.From, msg.Subject, msg.Body)
			if err != nil {
				failed.Add(1)
				return nil
			}
			parsed[i] = jobs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	stats.Failed = int(failed.Load())

	corpus, err := ing.Jobs.FindJobRefs(ctx, hunt.JobRefFilter{})
	if err != nil {
		return nil, err
	}

	for _, jobs := range parsed {
		for i := range jobs {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if err := ing.admit(ctx, &jobs[i], &corpus, stats); err != nil {
				return nil, err
			}
		}
	}

	return stats, nil
}

// admit decides one candidate against the corpus and stores it when novel.
// The corpus grows with each admission so later candidates in the same run
// dedup against earlier ones.
func (ing *Ingestor) admit(ctx context.Context, candidate *hunt.ParsedJob, corpus *[]hunt.JobRef, stats *IngestStats) error {
	if err := candidate.Validate(); err != nil {
		return nil
	}
	stats.Candidates++

	if candidate.Employer != "" {
		employer, err := ing.Employers.FindEmployerByName(ctx, candidate.Employer)
		if err != nil && hunt.ErrorCode(err) != hunt.ENOTFOUND {
			return err
		}
		if err == nil && employer.Status == hunt.EmployerNever {
			stats.Blocked++
			return nil
		}
	}

	ref := hunt.JobRef{
		Title:    candidate.Title,
		Employer: candidate.Employer,
		URL:      candidate.URL,
	}
	if _, found := hunt.FindDuplicate(ref, *corpus); found {
		stats.Duplicates++
		return nil
	}

	job := &hunt.Job{
		Title:    candidate.Title,
		Employer: candidate.Employer,
		URL:      candidate.URL,
		Location: candidate.Location,
		Source:   candidate.Source,
		Status:   hunt.StatusNew,
		PayMin:   candidate.PayMin,
		PayMax:   candidate.PayMax,
		JobCode:  candidate.JobCode,
		Closed:   candidate.Closed,
		RawText:  candidate.RawText,
	}

	if !ing.DryRun {
		if err := ing.Jobs.CreateJob(ctx, job); err != nil {
			return err
		}
		ref.ID = job.ID
	}

	*corpus = append(*corpus, ref)
	stats.Added++
	return nil
}
