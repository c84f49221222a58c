package printsurface

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// Orchestrator runs one print job against a surface: open, write, wait for
// the ready signal, trigger. The ready signal is not reliably delivered, so
// a fallback timer re-attempts the trigger exactly once; a late ready after
// the timer fired still gets its trigger, which surfaces must treat as a
// no-op. A job in flight cannot be aborted.
//
// The surface holds one job's state at a time, so whole jobs are serialized:
// concurrent Print calls queue on the mutex.
type Orchestrator struct {
	mu       sync.Mutex
	surface  Surface
	fallback time.Duration
}

// NewOrchestrator creates an orchestrator with the given fallback delay
func NewOrchestrator(surface Surface, fallback time.Duration) *Orchestrator {
	if fallback <= 0 {
		fallback = 1500 * time.Millisecond
	}
	return &Orchestrator{surface: surface, fallback: fallback}
}

// Print writes html to the surface and triggers printing
func (o *Orchestrator) Print(html string) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.surface.Open(); err != nil {
		return err
	}
	defer o.surface.Close()

	if err := o.surface.Write(html); err != nil {
		return err
	}

	timer := time.NewTimer(o.fallback)
	defer timer.Stop()

	select {
	case <-o.surface.Ready():
		return o.trigger()
	case <-timer.C:
		// Ready never arrived; print best effort, and honor a late ready
		// with a bounded wait. The second trigger is idempotent.
		err := o.trigger()
		select {
		case <-o.surface.Ready():
			_ = o.trigger()
		case <-time.After(o.fallback):
		}
		return err
	}
}

// trigger wraps the surface trigger so that neither an error nor a panic
// escapes as anything but ErrPrintTrigger
func (o *Orchestrator) trigger() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrPrintTrigger, r)
		}
	}()
	if terr := o.surface.Trigger(); terr != nil {
		if errors.Is(terr, ErrPrintTrigger) {
			return terr
		}
		return fmt.Errorf("%w: %v", ErrPrintTrigger, terr)
	}
	return nil
}
