package ingest

import (
	"context"
	"net/url"
	"time"

	"github.com/jobhunt-dev/hunt"
)

// DescriptionFetcher fills in missing descriptions by visiting each job's
// posting page.
type DescriptionFetcher struct {
	Jobs      hunt.JobService
	Snapshots hunt.SnapshotService
	Fetcher   hunt.Fetcher
	Cleaner   hunt.Cleaner

	// Limiter paces page loads per domain. Nil disables pacing.
	Limiter *DomainLimiter

	// RetryDelays overrides the fetch backoff schedule. Nil uses defaults.
	RetryDelays []time.Duration

	// Limit caps how many jobs one run processes. Zero means no cap.
	Limit int

	// Logf, if set, receives retry and progress lines.
	Logf LogFunc
}

// FetchResult summarizes one description fetch run.
type FetchResult struct {
	Fetched int // descriptions stored
	Closed  int // postings found to be closed
	Walled  int // postings behind a sign-in wall
	Failed  int // fetch or clean failures
}

// Run fetches descriptions for every job that has a URL but no stored text.
func (f *DescriptionFetcher) Run(ctx context.Context) (*FetchResult, error) {
	jobs, err := f.Jobs.FindJobs(ctx, hunt.JobFilter{
		MissingDescription: true,
		Limit:              f.Limit,
	})
	if err != nil {
		return nil, err
	}

	result := &FetchResult{}
	for _, job := range jobs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if f.Limiter != nil {
			if err := f.Limiter.Wait(ctx, domainOf(job.URL)); err != nil {
				return nil, err
			}
		}

		if err := f.fetchOne(ctx, job, result); err != nil {
			return nil, err
		}
	}

	return result, nil
}

func (f *DescriptionFetcher) fetchOne(ctx context.Context, job *hunt.Job, result *FetchResult) error {
	delays := f.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	html, err := FetchWithRetryDelays(ctx, job.URL, f.Fetcher.Fetch, f.Logf, delays)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if hunt.ErrorCode(err) == hunt.EUNAVAILABLE {
			result.Walled++
		} else {
			result.Failed++
		}
		return nil
	}

	text := f.Cleaner.Clean(html)
	if text == "" {
		result.Failed++
		return nil
	}

	upd := hunt.JobUpdate{RawText: &text}

	// The alert rarely carries pay or a requisition code; the full
	// description often does.
	if job.PayMin == nil && job.PayMax == nil {
		upd.PayMin, upd.PayMax = hunt.ExtractPayRange(text)
	}
	if job.JobCode == "" {
		if code := hunt.ExtractJobCode(text); code != "" {
			upd.JobCode = &code
		}
	}

	closed := hunt.DetectClosed(text)
	if closed {
		status := hunt.StatusClosed
		upd.Closed = &closed
		upd.Status = &status
	}

	if _, err := f.Jobs.UpdateJob(ctx, job.ID, upd); err != nil {
		return err
	}

	if err := f.Snapshots.CreateSnapshot(ctx, &hunt.Snapshot{
		JobID:   job.ID,
		RawText: text,
	}); err != nil {
		return err
	}

	result.Fetched++
	if closed {
		result.Closed++
	}
	return nil
}

func domainOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	return u.Host
}
