package printsurface

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var (
	// ErrSurfaceBlocked means no rendering surface could be opened (the
	// browser-popup-blocked case). Callers must surface an actionable
	// message; this is never swallowed.
	ErrSurfaceBlocked = errors.New("print surface could not be opened")

	// ErrPrintTrigger wraps any failure while triggering the actual print
	ErrPrintTrigger = errors.New("print trigger failed")
)

// Surface is one print job's rendering surface: open it, write the HTML,
// wait for Ready, then Trigger the print. The original app's browser window
// and the headless test double both satisfy it.
type Surface interface {
	// Open acquires the surface. Failure maps to ErrSurfaceBlocked.
	Open() error
	// Write stores the rendered HTML document on the surface.
	Write(html string) error
	// Ready is closed once the surface has finished loading the document.
	// The signal is not guaranteed to arrive; callers fall back on a timer.
	Ready() <-chan struct{}
	// Trigger starts printing. Triggering twice must not fail.
	Trigger() error
	// Close releases the surface.
	Close() error
}

// --- Spool surface (writes print jobs to a spool directory) ---

type spoolSurface struct {
	dir string

	mu        sync.Mutex
	file      *os.File
	path      string
	ready     chan struct{}
	triggered bool
}

// NewSpoolSurface creates a surface that writes each job as an HTML file in
// dir. Trigger marks the job ready for pickup by renaming it.
func NewSpoolSurface(dir string) Surface {
	return &spoolSurface{dir: dir}
}

func (s *spoolSurface) Open() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("%w: spool dir %s: %v", ErrSurfaceBlocked, s.dir, err)
	}
	f, err := os.CreateTemp(s.dir, "job-*.html.pending")
	if err != nil {
		return fmt.Errorf("%w: spool dir %s: %v", ErrSurfaceBlocked, s.dir, err)
	}
	s.file = f
	s.path = f.Name()
	s.ready = make(chan struct{})
	s.triggered = false
	return nil
}

func (s *spoolSurface) Write(html string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil {
		return fmt.Errorf("printsurface: write before open")
	}
	if _, err := s.file.WriteString(html); err != nil {
		return fmt.Errorf("printsurface: failed to write job %s: %w", s.path, err)
	}
	if err := s.file.Sync(); err != nil {
		return fmt.Errorf("printsurface: failed to flush job %s: %w", s.path, err)
	}
	close(s.ready)
	return nil
}

func (s *spoolSurface) Ready() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ready == nil {
		s.ready = make(chan struct{})
	}
	return s.ready
}

func (s *spoolSurface) Trigger() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.triggered {
		return nil
	}
	if s.file == nil {
		return fmt.Errorf("%w: no open job", ErrPrintTrigger)
	}

	final := filepath.Join(s.dir, fmt.Sprintf("job-%d.html", time.Now().UnixNano()))
	if err := os.Rename(s.path, final); err != nil {
		return fmt.Errorf("%w: %v", ErrPrintTrigger, err)
	}
	s.path = final
	s.triggered = true
	return nil
}

func (s *spoolSurface) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	return err
}

// --- Null surface (no-op, used when printing is disabled) ---

type nullSurface struct {
	ready chan struct{}
}

// NewNullSurface creates a no-op surface for environments without a printer
func NewNullSurface() Surface {
	return &nullSurface{}
}

func (s *nullSurface) Open() error {
	s.ready = make(chan struct{})
	close(s.ready)
	return nil
}

func (s *nullSurface) Write(string) error { return nil }

func (s *nullSurface) Ready() <-chan struct{} {
	if s.ready == nil {
		s.ready = make(chan struct{})
		close(s.ready)
	}
	return s.ready
}

func (s *nullSurface) Trigger() error { return nil }
func (s *nullSurface) Close() error   { return nil }

// NewSurfaceFromConfig creates the appropriate Surface based on type.
//
//	surfaceType: "spool" or "none"
//	spoolDir: directory for spool surfaces
func NewSurfaceFromConfig(surfaceType, spoolDir string) (Surface, error) {
	switch surfaceType {
	case "spool":
		if spoolDir == "" {
			return nil, fmt.Errorf("printsurface: spool dir is required for spool surface type")
		}
		return NewSpoolSurface(spoolDir), nil
	case "none", "":
		return NewNullSurface(), nil
	default:
		return nil, fmt.Errorf("printsurface: unknown surface type %q (use spool or none)", surfaceType)
	}
}
