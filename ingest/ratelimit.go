package ingest

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// DomainLimiter provides per-domain pacing using token buckets, with an
// optional random jitter after each wait. Job boards throttle clients that
// fetch on a metronome; jitter spreads requests so the loop does not look
// automated. Each domain gets its own limiter with a burst of 1.
//
// DomainLimiter is safe for concurrent use.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
	jitter   time.Duration
}

// NewDomainLimiter creates a new DomainLimiter with the specified requests
// per second limit. A non-zero jitter adds a random sleep of up to that
// duration after each wait.
func NewDomainLimiter(rps float64, jitter time.Duration) *DomainLimiter {
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
		jitter:   jitter,
	}
}

// Wait blocks until the rate limit allows a request to the domain, then
// sleeps the jitter. Returns an error if the context is canceled before the
// wait completes.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	d.mu.Lock()
	limiter, ok := d.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(d.rps), 1)
		d.limiters[domain] = limiter
	}
	d.mu.Unlock()

	if err := limiter.Wait(ctx); err != nil {
		return err
	}

	if d.jitter > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(rand.Int63n(int64(d.jitter)))):
		}
	}

	return nil
}
