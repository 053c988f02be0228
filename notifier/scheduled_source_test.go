package notifier

import (
	"context"
	"testing"
	"time"

	"github.com/reugn/go-quartz/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelsoft/future/logger"
)

func TestScheduledSourceOnlyPollsWhenDue(t *testing.T) {
	inner := &fakeSource{events: [][]Event{{{ID: "due"}}, {{ID: "due-2"}}}}
	trigger := quartz.NewSimpleTrigger(20 * time.Millisecond)
	scheduled := NewScheduledSource(inner, trigger, logger.NewLogger())

	events, err := scheduled.Poll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, events)

	time.Sleep(25 * time.Millisecond)
	events, err = scheduled.Poll(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "due", events[0].ID)
}
