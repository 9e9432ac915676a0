package hunt

import "context"

// Fetcher retrieves the rendered description HTML of a job posting.
// Implementations may use browser automation to handle JavaScript-rendered
// pages and logged-in sessions.
type Fetcher interface {
	// Fetch navigates to the posting URL, waits for the page to render,
	// and returns the HTML of the description region (falling back to the
	// whole body when no description element is found).
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases browser resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
