package notifier

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeSource struct {
	mu     sync.Mutex
	events [][]Event
	calls  int
}

func (f *fakeSource) Poll(context.Context) ([]Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls >= len(f.events) {
		return nil, nil
	}
	batch := f.events[f.calls]
	f.calls++
	return batch, nil
}

func TestNotifierDeliversEventsToHandlers(t *testing.T) {
	src := &fakeSource{events: [][]Event{{{ID: "evt-1"}}}}
	n := NewNotifier(src, WithPollInterval(time.Millisecond))

	var mu sync.Mutex
	var seen []string
	n.OnEvent(func(_ context.Context, evt Event) error {
		mu.Lock()
		seen = append(seen, evt.ID)
		mu.Unlock()
		return nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	f := n.StartListening(ctx)
	_, _ = f.Await(context.Background())

	mu.Lock()
	defer mu.Unlock()
	assert.Contains(t, seen, "evt-1")
}

func TestNotifierNextEventReturnsObservedEvent(t *testing.T) {
	src := &fakeSource{events: [][]Event{{{ID: "evt-2"}}}}
	n := NewNotifier(src, WithPollInterval(time.Millisecond))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	f := n.StartListening(ctx)
	defer func() { _, _ = f.Await(context.Background()) }()

	evt, err := n.NextEvent(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "evt-2", evt.ID)
}
