package rod

import (
	"context"
	"strings"
	"sync/atomic"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
	"github.com/jobhunt-dev/hunt"
)

// Ensure Fetcher implements hunt.Fetcher at compile time.
var _ hunt.Fetcher = (*Fetcher)(nil)

// authWallMarkers identify URLs a job board redirects to when it demands a
// signed-in session. The posting is not gone; it just cannot be read
// anonymously right now.
var authWallMarkers = []string{
	"authwall",
	"session_key",
	"/login",
	"/checkpoint",
}

// showMoreSelectors locate the truncation toggle that hides the bottom of a
// description until clicked.
var showMoreSelectors = []string{
	"button.show-more-less-html__button",
	"button[aria-label='Click to see more description']",
	".jobs-description__footer-button",
}

// descriptionSelectors locate the description container on known job boards,
// tried in order. When none matches the whole page is returned and the
// content cleaner deals with the chrome.
var descriptionSelectors = []string{
	".jobs-description__content",
	"#job-details",
	".show-more-less-html__markup",
	".description__text",
	"#jobDescriptionText",
}

// elementWait bounds how long to wait for an optional element before moving
// on to the next selector.
const elementWait = 2 * time.Second

// Fetcher retrieves rendered posting HTML using Chrome browser automation.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	manager      *BrowserManager
	fetchTimeout time.Duration
	closed       atomic.Bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout bounds each Fetch call. Zero means no per-fetch timeout;
// the caller's context still applies.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.fetchTimeout = d
	}
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	manager, err := NewBrowserManager()
	if err != nil {
		return nil, err
	}

	f := &Fetcher{manager: manager}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Fetch navigates to the posting URL and returns the rendered description
// HTML. Returns EUNAVAILABLE when the board redirects to a sign-in wall.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.closed.Load() {
		return "", hunt.Errorf(hunt.EINVALID, "fetcher is closed")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if f.fetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.fetchTimeout)
		defer cancel()
	}

	page, err := f.manager.Browser().Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", err
	}
	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	// Boards redirect anonymous sessions to a sign-in wall instead of
	// serving the posting.
	info, err := page.Info()
	if err != nil {
		return "", err
	}
	if isAuthWall(info.URL) {
		return "", hunt.Errorf(hunt.EUNAVAILABLE, "sign-in wall at %s", info.URL)
	}

	expandDescription(page)

	html := descriptionHTML(page)
	if html == "" {
		if html, err = page.HTML(); err != nil {
			return "", err
		}
	}

	f.manager.IncrementPageCount()
	return html, nil
}

// Close releases browser resources. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	f.closed.Store(true)
	return f.manager.Close()
}

// LauncherPID returns the process ID of the browser launcher.
// This method exists for testing purposes to verify proper cleanup.
func (f *Fetcher) LauncherPID() int {
	return f.manager.LauncherPID()
}

func isAuthWall(url string) bool {
	for _, marker := range authWallMarkers {
		if strings.Contains(url, marker) {
			return true
		}
	}
	return false
}

// expandDescription clicks the first truncation toggle found so the full
// description is in the DOM. Failure to find or click one is not an error;
// many boards serve the full text directly.
func expandDescription(page *rod.Page) {
	for _, sel := range showMoreSelectors {
		el, err := page.Timeout(elementWait).Element(sel)
		if err != nil {
			continue
		}
		if err := el.Click(proto.InputMouseButtonLeft, 1); err == nil {
			return
		}
	}
}

// descriptionHTML returns the outer HTML of the first matching description
// container, or "" when no known container is present.
func descriptionHTML(page *rod.Page) string {
	for _, sel := range descriptionSelectors {
		el, err := page.Timeout(elementWait).Element(sel)
		if err != nil {
			continue
		}
		html, err := el.HTML()
		if err != nil || strings.TrimSpace(html) == "" {
			continue
		}
		return html
	}
	return ""
}
