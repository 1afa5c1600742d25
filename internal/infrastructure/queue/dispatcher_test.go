package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ridehail/admin-api/internal/core/domain"
)

type recordingRepo struct {
	mu     sync.Mutex
	events []domain.AuditEvent
}

func (r *recordingRepo) Insert(_ context.Context, ev *domain.AuditEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, *ev)
	return nil
}

func (r *recordingRepo) ListRecent(context.Context, int) ([]domain.AuditEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.AuditEvent, len(r.events))
	copy(out, r.events)
	return out, nil
}

func (r *recordingRepo) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met before deadline")
}

func TestDispatcher_PersistsEvents(t *testing.T) {
	repo := &recordingRepo{}
	d := NewAuditDispatcher(4, repo, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i := 0; i < 20; i++ {
		d.Record(domain.AuditEvent{
			ActorID:  "u-1",
			Action:   domain.AuditActionCreate,
			Entity:   "trip",
			EntityID: "t-1",
			At:       time.Now().UTC(),
		})
	}

	waitFor(t, func() bool { return repo.len() == 20 })
}

func TestDispatcher_SameActorSameShard(t *testing.T) {
	d := NewAuditDispatcher(8, &recordingRepo{}, zerolog.Nop())

	first := d.shardIndex("u-42")
	for i := 0; i < 100; i++ {
		if got := d.shardIndex("u-42"); got != first {
			t.Fatalf("shard changed between calls: %d vs %d", first, got)
		}
	}
}

func TestDispatcher_RecordDropsWhenQueueFull(t *testing.T) {
	// Workers are never started, so the single shard fills up and stays full.
	d := NewAuditDispatcher(1, &recordingRepo{}, zerolog.Nop())

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < channelBuffer+50; i++ {
			d.Record(domain.AuditEvent{ActorID: "u-1", Entity: "trip", Action: domain.AuditActionCreate})
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("record blocked on a full queue")
	}
	if got := len(d.workers[0]); got != channelBuffer {
		t.Fatalf("expected a full buffer of %d, got %d", channelBuffer, got)
	}
}

func TestDispatcher_DefaultWorkerCount(t *testing.T) {
	d := NewAuditDispatcher(0, &recordingRepo{}, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}
