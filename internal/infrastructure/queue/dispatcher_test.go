package queue

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tasknest/tasknest/internal/core/ports"
)

type recordingService struct {
	mu     sync.Mutex
	events []ports.ActivityInput
	done   chan struct{}
	want   int
}

func newRecordingService(want int) *recordingService {
	return &recordingService{done: make(chan struct{}), want: want}
}

func (s *recordingService) Process(_ context.Context, event ports.ActivityInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = append(s.events, event)
	if len(s.events) == s.want {
		close(s.done)
	}
	return nil
}

func (s *recordingService) wait(t *testing.T) []ports.ActivityInput {
	t.Helper()
	select {
	case <-s.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for events")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]ports.ActivityInput(nil), s.events...)
}

func TestDispatcher_DeliversAllEvents(t *testing.T) {
	const total = 20
	svc := newRecordingService(total)

	d := NewDispatcher(4, svc, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i := 0; i < total; i++ {
		d.Record(ports.ActivityInput{
			ResourceID: fmt.Sprintf("todo-%d", i),
			Action:     "created",
		})
	}

	events := svc.wait(t)
	if len(events) != total {
		t.Fatalf("expected %d events, got %d", total, len(events))
	}
}

func TestDispatcher_PreservesPerResourceOrder(t *testing.T) {
	const perResource = 10
	resources := []string{"alpha", "beta", "gamma"}
	svc := newRecordingService(perResource * len(resources))

	d := NewDispatcher(3, svc, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i := 0; i < perResource; i++ {
		for _, id := range resources {
			d.Record(ports.ActivityInput{
				ResourceID: id,
				Action:     fmt.Sprintf("seq-%d", i),
			})
		}
	}

	events := svc.wait(t)

	seen := make(map[string]int)
	for _, ev := range events {
		want := fmt.Sprintf("seq-%d", seen[ev.ResourceID])
		if ev.Action != want {
			t.Fatalf("resource %s: expected %s, got %s", ev.ResourceID, want, ev.Action)
		}
		seen[ev.ResourceID]++
	}
	for _, id := range resources {
		if seen[id] != perResource {
			t.Fatalf("resource %s: expected %d events, got %d", id, perResource, seen[id])
		}
	}
}

func TestDispatcher_ShardIsDeterministic(t *testing.T) {
	d := NewDispatcher(4, newRecordingService(1), zerolog.Nop())

	for _, id := range []string{"a", "abc", "507f1f77bcf86cd799439011"} {
		first := d.shardIndex(id)
		for i := 0; i < 5; i++ {
			if got := d.shardIndex(id); got != first {
				t.Fatalf("shardIndex(%q) not stable: %d vs %d", id, got, first)
			}
		}
		if first < 0 || first >= len(d.workers) {
			t.Fatalf("shardIndex(%q) out of range: %d", id, first)
		}
	}
}

func TestDispatcher_DefaultWorkerCount(t *testing.T) {
	d := NewDispatcher(0, newRecordingService(1), zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}
