package notify

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisabledNotifier(t *testing.T) {
	n := New(nil, "changes:")
	n.Watch("content_sections", func(_ context.Context) {})

	// nil transport: Start and Stop are no-ops and must not panic
	require.NoError(t, n.Start(context.Background()))
	require.NoError(t, n.Start(context.Background()), "disabled notifier may be started repeatedly")

	n.Stop()
	n.Stop()
}

func TestStopBeforeStart(t *testing.T) {
	n := New(nil, "changes:")

	assert.NotPanics(t, func() { n.Stop() })
}

func TestWatchRegistersTarget(t *testing.T) {
	n := New(nil, "changes:")

	n.Watch("services", func(_ context.Context) {})
	n.Watch("services", func(_ context.Context) {})
	n.Watch("testimonials", func(_ context.Context) {})

	n.mu.Lock()
	defer n.mu.Unlock()

	assert.Len(t, n.targets, 2, "watching a table twice keeps one target")
}

func TestDispatchRoutesEventsToWatchedTables(t *testing.T) {
	n := New(nil, "changes:")

	fired := make(chan string, 4)
	n.Watch("services", func(_ context.Context) { fired <- "services" })
	n.Watch("testimonials", func(_ context.Context) { fired <- "testimonials" })

	events := make(chan *redis.Message, 3)
	done := make(chan struct{})

	go n.dispatch(context.Background(), events, done)

	events <- &redis.Message{Channel: "changes:services"}
	events <- &redis.Message{Channel: "changes:certifications"} // unwatched, skipped
	events <- &redis.Message{Channel: "changes:testimonials"}

	got := []string{<-fired, <-fired}
	assert.ElementsMatch(t, []string{"services", "testimonials"}, got)

	close(events)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("dispatch loop did not drain after the event channel closed")
	}

	assert.Empty(t, fired, "the unwatched table must not trigger a refetch")
}

func TestDispatchDoesNotCoalesceEvents(t *testing.T) {
	n := New(nil, "changes:")

	var calls atomic.Int32

	refetched := make(chan struct{}, 3)
	n.Watch("content_sections", func(_ context.Context) {
		calls.Add(1)
		refetched <- struct{}{}
	})

	events := make(chan *redis.Message, 3)
	done := make(chan struct{})

	go n.dispatch(context.Background(), events, done)

	for i := 0; i < 3; i++ {
		events <- &redis.Message{Channel: "changes:content_sections"}
	}

	for i := 0; i < 3; i++ {
		select {
		case <-refetched:
		case <-time.After(time.Second):
			t.Fatal("expected one refetch per event")
		}
	}

	assert.Equal(t, int32(3), calls.Load())

	close(events)
	<-done
}

func TestDispatchStopsOnContextCancel(t *testing.T) {
	n := New(nil, "changes:")

	events := make(chan *redis.Message)
	done := make(chan struct{})

	ctx, cancel := context.WithCancel(context.Background())

	go n.dispatch(ctx, events, done)

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("dispatch loop did not stop on context cancellation")
	}
}
