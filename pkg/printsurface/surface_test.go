package printsurface

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpoolSurface_FullJobLifecycle(t *testing.T) {
	dir := t.TempDir()
	surface := NewSpoolSurface(dir)
	o := NewOrchestrator(surface, time.Second)

	require.NoError(t, o.Print("<html><body>ticket</body></html>"))

	jobs, err := filepath.Glob(filepath.Join(dir, "job-*.html"))
	require.NoError(t, err)
	require.Len(t, jobs, 1)

	content, err := os.ReadFile(jobs[0])
	require.NoError(t, err)
	assert.Equal(t, "<html><body>ticket</body></html>", string(content))

	pending, err := filepath.Glob(filepath.Join(dir, "*.pending*"))
	require.NoError(t, err)
	assert.Empty(t, pending, "triggered jobs must leave no pending file behind")
}

func TestSpoolSurface_ConcurrentPrintsStaySeparateJobs(t *testing.T) {
	// The register fires prints from concurrent requests against one shared
	// surface. Jobs must not interleave: a second Open while a first job is
	// mid flight would swap the file and ready channel under it.
	dir := t.TempDir()
	o := NewOrchestrator(NewSpoolSurface(dir), time.Second)

	const jobs = 8
	errs := make([]error, jobs)
	var wg sync.WaitGroup
	for i := 0; i < jobs; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = o.Print(fmt.Sprintf("<html><body>job %d</body></html>", i))
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		assert.NoError(t, err, "job %d", i)
	}

	files, err := filepath.Glob(filepath.Join(dir, "job-*.html"))
	require.NoError(t, err)
	require.Len(t, files, jobs)

	var contents []string
	for _, f := range files {
		data, err := os.ReadFile(f)
		require.NoError(t, err)
		contents = append(contents, string(data))
	}
	sort.Strings(contents)
	for i, c := range contents {
		assert.Equal(t, fmt.Sprintf("<html><body>job %d</body></html>", i), c)
	}
}

func TestSpoolSurface_DoubleTriggerIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	surface := NewSpoolSurface(dir)

	require.NoError(t, surface.Open())
	require.NoError(t, surface.Write("<html></html>"))
	require.NoError(t, surface.Trigger())
	require.NoError(t, surface.Trigger())
	require.NoError(t, surface.Close())

	jobs, err := filepath.Glob(filepath.Join(dir, "job-*.html"))
	require.NoError(t, err)
	assert.Len(t, jobs, 1)
}

func TestSpoolSurface_ReadyClosesAfterWrite(t *testing.T) {
	surface := NewSpoolSurface(t.TempDir())

	require.NoError(t, surface.Open())

	select {
	case <-surface.Ready():
		t.Fatal("ready before write")
	default:
	}

	require.NoError(t, surface.Write("<html></html>"))

	select {
	case <-surface.Ready():
	case <-time.After(time.Second):
		t.Fatal("ready never signalled after write")
	}

	require.NoError(t, surface.Trigger())
	require.NoError(t, surface.Close())
}

func TestSpoolSurface_UnusableDirBlocks(t *testing.T) {
	// A regular file where the spool dir should be makes MkdirAll fail
	base := t.TempDir()
	blocked := filepath.Join(base, "spool")
	require.NoError(t, os.WriteFile(blocked, []byte("x"), 0o644))

	surface := NewSpoolSurface(blocked)
	err := surface.Open()

	assert.ErrorIs(t, err, ErrSurfaceBlocked)
}

func TestSpoolSurface_TriggerWithoutOpen(t *testing.T) {
	surface := NewSpoolSurface(t.TempDir())

	assert.ErrorIs(t, surface.Trigger(), ErrPrintTrigger)
}

func TestNullSurface_AlwaysSucceeds(t *testing.T) {
	surface := NewNullSurface()
	o := NewOrchestrator(surface, time.Second)

	assert.NoError(t, o.Print("<html></html>"))
	assert.NoError(t, o.Print("<html></html>"))
}

func TestNewSurfaceFromConfig(t *testing.T) {
	tests := []struct {
		name        string
		surfaceType string
		spoolDir    string
		wantErr     bool
	}{
		{"spool", "spool", t.TempDir(), false},
		{"spool without dir", "spool", "", true},
		{"none", "none", "", false},
		{"empty defaults to none", "", "", false},
		{"unknown type", "laser", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			surface, err := NewSurfaceFromConfig(tt.surfaceType, tt.spoolDir)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, surface)
		})
	}
}
