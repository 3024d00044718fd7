//go:build integration && !windows

package rod_test

import (
	"context"
	"syscall"
	"testing"
	"time"

	"github.com/fwojciec/docscrape/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// running reports whether pid exists, using signal 0.
func running(pid int) bool {
	return syscall.Kill(pid, syscall.Signal(0)) == nil
}

func TestFetcher_Close_KillsBrowserProcess(t *testing.T) {
	t.Parallel()

	fetcher, err := rod.NewFetcher()
	require.NoError(t, err)
	pid := fetcher.LauncherPID()
	require.NotZero(t, pid)
	require.True(t, running(pid))

	require.NoError(t, fetcher.Close())

	assert.Eventually(t, func() bool { return !running(pid) }, 2*time.Second, 50*time.Millisecond)
	assert.Zero(t, fetcher.LauncherPID())
}

func TestFetcher_Recycle_KillsRetiredBrowserProcess(t *testing.T) {
	t.Parallel()

	// Given a fetcher that recycles after every page
	srv := docPage(t)
	fetcher, err := rod.NewFetcher(rod.WithRecycleAfter(1))
	require.NoError(t, err)
	defer fetcher.Close()

	_, err = fetcher.Fetch(context.Background(), srv.URL+"/a")
	require.NoError(t, err)
	retired := fetcher.LauncherPID()

	// When the next page forces a recycle with no page left open
	_, err = fetcher.Fetch(context.Background(), srv.URL+"/b")
	require.NoError(t, err)

	// Then the old Chrome process is gone
	assert.Eventually(t, func() bool { return !running(retired) }, 2*time.Second, 50*time.Millisecond)
	assert.True(t, running(fetcher.LauncherPID()))
}
