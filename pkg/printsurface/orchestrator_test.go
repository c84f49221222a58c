package printsurface

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSurface is a controllable surface for orchestrator tests.
type stubSurface struct {
	mu sync.Mutex

	openErr        error
	writeErr       error
	triggerErr     error
	panicOnTrigger bool
	readyOnWrite   bool

	ready    chan struct{}
	opens    int
	writes   int
	triggers int
	closes   int
}

func newStubSurface() *stubSurface {
	return &stubSurface{ready: make(chan struct{}), readyOnWrite: true}
}

func (s *stubSurface) Open() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.opens++
	return s.openErr
}

func (s *stubSurface) Write(string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes++
	if s.writeErr != nil {
		return s.writeErr
	}
	if s.readyOnWrite {
		close(s.ready)
	}
	return nil
}

func (s *stubSurface) Ready() <-chan struct{} {
	return s.ready
}

func (s *stubSurface) signalReady() {
	close(s.ready)
}

func (s *stubSurface) Trigger() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.triggers++
	if s.panicOnTrigger {
		panic("window closed mid print")
	}
	return s.triggerErr
}

func (s *stubSurface) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closes++
	return nil
}

func (s *stubSurface) triggerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.triggers
}

func TestPrint_ReadySignalTriggersOnce(t *testing.T) {
	surface := newStubSurface()
	o := NewOrchestrator(surface, 5*time.Second)

	require.NoError(t, o.Print("<html></html>"))

	assert.Equal(t, 1, surface.triggerCount())
	assert.Equal(t, 1, surface.closes)
}

func TestPrint_BlockedSurface(t *testing.T) {
	surface := newStubSurface()
	surface.openErr = fmt.Errorf("%w: popup blocked", ErrSurfaceBlocked)
	o := NewOrchestrator(surface, 5*time.Second)

	err := o.Print("<html></html>")

	assert.ErrorIs(t, err, ErrSurfaceBlocked)
	assert.Equal(t, 0, surface.triggerCount())
	assert.Equal(t, 0, surface.closes, "a surface that never opened must not be closed")
}

func TestPrint_WriteError(t *testing.T) {
	surface := newStubSurface()
	surface.writeErr = errors.New("disk full")
	o := NewOrchestrator(surface, 5*time.Second)

	err := o.Print("<html></html>")

	require.Error(t, err)
	assert.Equal(t, 0, surface.triggerCount())
	assert.Equal(t, 1, surface.closes)
}

func TestPrint_FallbackTimerFiresWithoutReady(t *testing.T) {
	surface := newStubSurface()
	surface.readyOnWrite = false
	o := NewOrchestrator(surface, 20*time.Millisecond)

	start := time.Now()
	require.NoError(t, o.Print("<html></html>"))

	assert.Equal(t, 1, surface.triggerCount())
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestPrint_LateReadyAfterFallbackTriggersAgain(t *testing.T) {
	surface := newStubSurface()
	surface.readyOnWrite = false
	o := NewOrchestrator(surface, 20*time.Millisecond)

	go func() {
		time.Sleep(30 * time.Millisecond)
		surface.signalReady()
	}()

	require.NoError(t, o.Print("<html></html>"))

	// Fallback trigger plus the late-ready trigger; idempotency is the
	// surface's contract.
	assert.Equal(t, 2, surface.triggerCount())
}

func TestPrint_TriggerErrorWrapped(t *testing.T) {
	surface := newStubSurface()
	surface.triggerErr = errors.New("print dialog failed")
	o := NewOrchestrator(surface, 5*time.Second)

	err := o.Print("<html></html>")

	assert.ErrorIs(t, err, ErrPrintTrigger)
}

func TestPrint_TriggerPanicBecomesError(t *testing.T) {
	surface := newStubSurface()
	surface.panicOnTrigger = true
	o := NewOrchestrator(surface, 5*time.Second)

	err := o.Print("<html></html>")

	require.ErrorIs(t, err, ErrPrintTrigger)
	assert.Contains(t, err.Error(), "window closed mid print")
}

func TestNewOrchestrator_DefaultFallback(t *testing.T) {
	o := NewOrchestrator(newStubSurface(), 0)

	assert.Equal(t, 1500*time.Millisecond, o.fallback)
}
