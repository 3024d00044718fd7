// Package rod provides a docscrape.Fetcher that renders pages in headless
// Chrome, for documentation sites that build their content with JavaScript.
package rod

import (
	"context"
	"time"

	"github.com/fwojciec/docscrape"
	"github.com/go-rod/rod/lib/devices"
)

// DefaultFetchTimeout is the default timeout for rendering one page.
const DefaultFetchTimeout = 30 * time.Second

// Ensure Fetcher implements docscrape.Fetcher at compile time.
var _ docscrape.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	pool      *pool
	timeout   time.Duration
	waitFor   time.Duration
	mobile    bool
	budget    int64
	onRecycle RecycleFunc
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout sets the timeout for rendering one page.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithWaitFor sets how long to wait after the load event before capturing
// the page, for content that renders late.
func WithWaitFor(d time.Duration) Option {
	return func(f *Fetcher) {
		f.waitFor = d
	}
}

// WithMobile renders pages with a mobile device viewport and user agent.
func WithMobile(mobile bool) Option {
	return func(f *Fetcher) {
		f.mobile = mobile
	}
}

// WithRecycleAfter sets the number of pages after which the browser is
// replaced by a fresh instance. Zero or less never recycles.
func WithRecycleAfter(n int64) Option {
	return func(f *Fetcher) {
		f.budget = n
	}
}

// WithOnRecycle sets a func called after every browser recycle attempt.
func WithOnRecycle(fn RecycleFunc) Option {
	return func(f *Fetcher) {
		f.onRecycle = fn
	}
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
		budget:  DefaultRecycleAfter,
	}
	for _, opt := range opts {
		opt(f)
	}

	p, err := newPool(f.budget, f.onRecycle)
	if err != nil {
		return nil, err
	}
	f.pool = p

	return f, nil
}

// Fetch navigates to the URL and returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	page, release, err := f.pool.page()
	if err != nil {
		return "", err
	}
	defer release()

	if f.mobile {
		if err := page.Emulate(devices.IPhoneX); err != nil {
			return "", err
		}
	}

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", err
	}
	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	if f.waitFor > 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(f.waitFor):
		}
	}

	return page.HTML()
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	return f.pool.close()
}

// LauncherPID returns the process ID of the current browser launcher, or 0
// once closed.
func (f *Fetcher) LauncherPID() int {
	return f.pool.pid()
}
