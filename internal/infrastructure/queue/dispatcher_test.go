package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/i-am-Shekinah/alx-workspace-booking-app-backend/internal/core/domain"
)

type captureRecorder struct {
	mu     sync.Mutex
	events []domain.AuthEvent
	done   chan struct{}
	want   int
}

func newCaptureRecorder(want int) *captureRecorder {
	return &captureRecorder{done: make(chan struct{}), want: want}
}

func (r *captureRecorder) Record(_ context.Context, event domain.AuthEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	if len(r.events) == r.want {
		close(r.done)
	}
	return nil
}

func TestDispatcher_RecordsAllEvents(t *testing.T) {
	recorder := newCaptureRecorder(3)
	d := NewDispatcher(2, recorder, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue(domain.AuthEvent{ID: "1", UserID: "user-a", Type: domain.EventSignup})
	d.Enqueue(domain.AuthEvent{ID: "2", UserID: "user-a", Type: domain.EventLogin})
	d.Enqueue(domain.AuthEvent{ID: "3", UserID: "user-b", Type: domain.EventLogout})

	select {
	case <-recorder.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for events")
	}
}

func TestDispatcher_PreservesPerUserOrder(t *testing.T) {
	const n = 20
	recorder := newCaptureRecorder(n)
	d := NewDispatcher(4, recorder, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i := 0; i < n; i++ {
		d.Enqueue(domain.AuthEvent{ID: string(rune('a' + i)), UserID: "user-a", Type: domain.EventRefresh})
	}

	select {
	case <-recorder.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for events")
	}

	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	for i := 1; i < n; i++ {
		if recorder.events[i].ID <= recorder.events[i-1].ID {
			t.Fatalf("events out of order at %d: %q after %q", i, recorder.events[i].ID, recorder.events[i-1].ID)
		}
	}
}

func TestDispatcher_ShardIsDeterministic(t *testing.T) {
	d := NewDispatcher(8, newCaptureRecorder(0), zerolog.Nop())
	a := d.shardIndex("user-a")
	for i := 0; i < 10; i++ {
		if d.shardIndex("user-a") != a {
			t.Fatalf("shard index not stable")
		}
	}
}
