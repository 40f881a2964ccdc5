package usecase

import (
	"context"
	"time"
)

// gateRetryInterval is the fixed backoff between acquisition attempts when
// the gate is held by another task.
const gateRetryInterval = 1500 * time.Millisecond

// volumeGate serializes every read-modify-write cycle against the volume
// ledger document. The backing store offers no compare-and-swap, so two
// interleaved critical sections would silently overwrite each other's
// reservations; the gate makes check-then-write a single critical section.
//
// It is a single-permit channel semaphore: process-local only, no fairness
// between waiters. A waiter that finds the gate held sleeps a fixed
// interval and tries again until the permit frees or ctx is done.
type volumeGate struct {
	permit chan struct{}
	retry  time.Duration
}

func newVolumeGate(retry time.Duration) *volumeGate {
	g := &volumeGate{permit: make(chan struct{}, 1), retry: retry}
	g.permit <- struct{}{}
	return g
}

// acquire blocks until the permit is claimed. It retries indefinitely with
// the fixed backoff; only ctx expiry bounds the wait.
func (g *volumeGate) acquire(ctx context.Context) error {
	for {
		select {
		case <-g.permit:
			return nil
		default:
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(g.retry):
		}
	}
}

// release returns the permit. Must be called exactly once per successful
// acquire; callers defer it so every exit path of the critical section
// frees the gate.
func (g *volumeGate) release() {
	g.permit <- struct{}{}
}
