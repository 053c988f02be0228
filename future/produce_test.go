package future

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveWhenWaitsForReady(t *testing.T) {
	var calls int32
	f := ResolveWhen(context.Background(), Background(), time.Millisecond, func() (int, bool, error) {
		n := atomic.AddInt32(&calls, 1)
		if n < 3 {
			return 0, false, nil
		}
		return 99, true, nil
	})
	value, err, st := wait(t, f)
	require.NoError(t, err)
	assert.Equal(t, Done, st)
	assert.Equal(t, 99, value)
}

func TestResolveWhenFailsOnPollError(t *testing.T) {
	f := ResolveWhen(context.Background(), Background(), time.Millisecond, func() (int, bool, error) {
		return 0, false, errors.New("boom")
	})
	_, err, st := wait(t, f)
	require.Error(t, err)
	assert.Equal(t, Failed, st)
}

func TestResolveUntilRetriesUntilSuccess(t *testing.T) {
	var attempts int32
	f := ResolveUntil(context.Background(), Background(), func() Future[int] {
		n := atomic.AddInt32(&attempts, 1)
		if n < 3 {
			return Errored[int](errors.New("transient"))
		}
		return Const(7)
	}, backoff.NewConstantBackOff(time.Millisecond))
	value, err, st := wait(t, f)
	require.NoError(t, err)
	assert.Equal(t, Done, st)
	assert.Equal(t, 7, value)
	assert.GreaterOrEqual(t, atomic.LoadInt32(&attempts), int32(3))
}

// TestResolveUntilStopsOnInnerCancellation covers the literal scenario of a
// producer whose second yield is Cancelled: the outer Future is cancelled
// too and the producer is never called a third time.
func TestResolveUntilStopsOnInnerCancellation(t *testing.T) {
	var attempts int32
	f := ResolveUntil(context.Background(), Background(), func() Future[int] {
		n := atomic.AddInt32(&attempts, 1)
		if n == 1 {
			return Errored[int](errors.New("transient"))
		}
		r := NewResolvable[int]("")
		r.CancelSelf()
		return r.Future()
	}, backoff.NewConstantBackOff(time.Millisecond))

	_, _, st := wait(t, f)
	assert.Equal(t, Cancelled, st)
	assert.Equal(t, int32(2), atomic.LoadInt32(&attempts))
}

func TestResolveUntilStopsOnCancel(t *testing.T) {
	f := ResolveUntil(context.Background(), Background(), func() Future[int] {
		return Errored[int](errors.New("always fails"))
	}, backoff.NewConstantBackOff(5*time.Millisecond))

	time.AfterFunc(10*time.Millisecond, func() { f.Cancel() })

	_, _, st := wait(t, f)
	assert.Equal(t, Cancelled, st)
}
