package watch_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tokapit/internal/watch"
	"github.com/katalvlaran/tokapit/pit"
	"github.com/katalvlaran/tokapit/validate"
)

func next(t *testing.T, ch <-chan watch.Report) watch.Report {
	t.Helper()
	select {
	case r := <-ch:
		return r
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for report")
		return watch.Report{}
	}
}

func TestWatcher_Revalidates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pit.toml")
	require.NoError(t, pit.WriteFile(path, pit.Default()))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reports := make(chan watch.Report, 8)
	w := watch.New(path, nil)
	w.Debounce = 20 * time.Millisecond

	done := make(chan error, 1)
	go func() { done <- w.Run(ctx, func(r watch.Report) { reports <- r }) }()

	first := next(t, reports)
	require.NoError(t, first.Err)
	assert.Empty(t, first.Findings)
	assert.Equal(t, 16.0, first.Params.OuterRadius)

	require.NoError(t, pit.WriteFile(path, pit.Default().WithOuterRadius(9)))

	// A save can surface as several settled events; wait for the new content.
	var r watch.Report
	for i := 0; i < 5; i++ {
		r = next(t, reports)
		if r.Err == nil && r.Params.OuterRadius == 9 {
			break
		}
	}
	require.NoError(t, r.Err)
	assert.True(t, validate.HasErrors(r.Findings))

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestWatcher_MissingDir(t *testing.T) {
	w := watch.New(filepath.Join(t.TempDir(), "absent", "pit.toml"), nil)
	err := w.Run(context.Background(), func(watch.Report) {})
	require.Error(t, err)
}
