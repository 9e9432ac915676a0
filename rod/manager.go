// Package rod provides a browser-based posting fetcher using Chrome automation.
package rod

import (
	"fmt"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// DefaultMaxPages is the number of pages served before the browser is
// replaced with a fresh one.
const DefaultMaxPages = 50

// BrowserManager hands out a shared Chrome instance and replaces it after a
// fixed number of pages. Job boards ship heavy client-side apps and Chrome's
// memory footprint only grows over a long fetch run even when every page is
// closed properly, so the whole process gets restarted periodically.
//
// BrowserManager is safe for concurrent use.
type BrowserManager struct {
	mu          sync.Mutex
	browser     *rod.Browser
	launcher    *launcher.Launcher
	pagesServed int64
	maxPages    int64
	closed      bool
}

// ManagerOption configures a BrowserManager.
type ManagerOption func(*BrowserManager)

// WithMaxPages overrides DefaultMaxPages as the recycling threshold.
func WithMaxPages(n int64) ManagerOption {
	return func(bm *BrowserManager) {
		bm.maxPages = n
	}
}

// NewBrowserManager launches a headless Chrome and returns a manager that
// owns it. Close must be called when the manager is no longer needed.
func NewBrowserManager(opts ...ManagerOption) (*BrowserManager, error) {
	bm := &BrowserManager{maxPages: DefaultMaxPages}
	for _, opt := range opts {
		opt(bm)
	}

	browser, lnchr, err := launchHeadless()
	if err != nil {
		return nil, err
	}
	bm.browser = browser
	bm.launcher = lnchr

	return bm, nil
}

// Browser returns the current browser, first replacing it when the page
// budget is spent. Callers report consumption through IncrementPageCount.
func (bm *BrowserManager) Browser() *rod.Browser {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if bm.pagesServed >= bm.maxPages {
		bm.recycle()
	}

	return bm.browser
}

// IncrementPageCount records one served page against the recycling budget.
// Call it after each page the browser processed.
func (bm *BrowserManager) IncrementPageCount() {
	bm.mu.Lock()
	bm.pagesServed++
	bm.mu.Unlock()
}

// Close shuts the browser down. Safe to call more than once.
func (bm *BrowserManager) Close() error {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if bm.closed {
		return nil
	}
	bm.closed = true

	var err error
	if bm.browser != nil {
		err = bm.browser.Close()
		bm.browser = nil
	}
	if bm.launcher != nil {
		bm.launcher.Kill()
		bm.launcher = nil
	}
	return err
}

// recycle swaps in a fresh browser and tears down the old one. A failed
// launch keeps the old browser running rather than leaving the manager
// empty-handed. Must be called with mu held.
func (bm *BrowserManager) recycle() {
	browser, lnchr, err := launchHeadless()
	if err != nil {
		return
	}

	if bm.browser != nil {
		_ = bm.browser.Close()
	}
	if bm.launcher != nil {
		bm.launcher.Kill()
	}

	bm.browser = browser
	bm.launcher = lnchr
	bm.pagesServed = 0
}

// launchHeadless starts a headless Chrome with stability flags and connects
// to it.
func launchHeadless() (*rod.Browser, *launcher.Launcher, error) {
	lnchr := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(true)

	u, err := lnchr.Launch()
	if err != nil {
		return nil, nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill()
		return nil, nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return browser, lnchr, nil
}

// LauncherPID reports the launcher's process ID so tests can verify the
// browser process goes away on Close.
func (bm *BrowserManager) LauncherPID() int {
	bm.mu.Lock()
	defer bm.mu.Unlock()
	if bm.launcher == nil {
		return 0
	}
	return bm.launcher.PID()
}
