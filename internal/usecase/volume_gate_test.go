package usecase

import (
	"context"
	"testing"
	"time"
)

func TestVolumeGate_AcquireRelease(t *testing.T) {
	gate := newVolumeGate(2 * time.Millisecond)

	if err := gate.acquire(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	gate.release()

	if err := gate.acquire(context.Background()); err != nil {
		t.Fatalf("reacquire after release failed: %v", err)
	}
	gate.release()
}

func TestVolumeGate_BlocksSecondHolder(t *testing.T) {
	gate := newVolumeGate(2 * time.Millisecond)

	if err := gate.acquire(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	acquired := make(chan struct{})
	go func() {
		if err := gate.acquire(context.Background()); err == nil {
			close(acquired)
		}
	}()

	select {
	case <-acquired:
		t.Fatalf("second holder entered while the gate was held")
	case <-time.After(20 * time.Millisecond):
	}

	gate.release()

	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatalf("waiter never entered after release")
	}
}

func TestVolumeGate_AcquireHonorsContext(t *testing.T) {
	gate := newVolumeGate(2 * time.Millisecond)

	if err := gate.acquire(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer gate.release()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if err := gate.acquire(ctx); err != context.DeadlineExceeded {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}
