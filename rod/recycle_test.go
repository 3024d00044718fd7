//go:build integration

package rod_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/fwojciec/docscrape/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recycleEvent struct {
	rendered int64
	err      error
}

func docPage(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><p>` + r.URL.Path + `</p></body></html>`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

// Story: Browser recycling
// A long render crawl swaps Chrome for a fresh process every N pages.

func TestFetcher_RecyclesBrowserAfterBudget(t *testing.T) {
	t.Parallel()

	// Given a fetcher that recycles every two pages
	srv := docPage(t)
	var mu sync.Mutex
	var events []recycleEvent
	fetcher, err := rod.NewFetcher(
		rod.WithRecycleAfter(2),
		rod.WithOnRecycle(func(rendered int64, err error) {
			mu.Lock()
			defer mu.Unlock()
			events = append(events, recycleEvent{rendered, err})
		}),
	)
	require.NoError(t, err)
	defer fetcher.Close()
	firstPID := fetcher.LauncherPID()

	// When three pages are rendered
	for _, path := range []string{"/a", "/b", "/c"} {
		html, err := fetcher.Fetch(context.Background(), srv.URL+path)
		require.NoError(t, err)
		assert.Contains(t, html, path)
	}

	// Then the third page ran on a new browser
	mu.Lock()
	defer mu.Unlock()
	require.Len(t, events, 1)
	assert.Equal(t, int64(2), events[0].rendered)
	assert.NoError(t, events[0].err)
	assert.NotEqual(t, firstPID, fetcher.LauncherPID())
}

func TestFetcher_KeepsBrowserWithinBudget(t *testing.T) {
	t.Parallel()

	srv := docPage(t)
	recycled := false
	fetcher, err := rod.NewFetcher(
		rod.WithRecycleAfter(5),
		rod.WithOnRecycle(func(int64, error) { recycled = true }),
	)
	require.NoError(t, err)
	defer fetcher.Close()
	pid := fetcher.LauncherPID()

	for _, path := range []string{"/a", "/b"} {
		_, err := fetcher.Fetch(context.Background(), srv.URL+path)
		require.NoError(t, err)
	}

	assert.False(t, recycled)
	assert.Equal(t, pid, fetcher.LauncherPID())
}
