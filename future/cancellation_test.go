package future

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCancelInvokesResponderOnce(t *testing.T) {
	r := NewResolvable[int]("")
	calls := 0
	r.Future().RespondToCancellation(func() Future[Unit] {
		calls++
		return Const(Unit{})
	})
	r.Future().Cancel()
	r.Future().Cancel()
	assert.Equal(t, 1, calls)
}

func TestCancelFirstResponderWins(t *testing.T) {
	r := NewResolvable[int]("")
	f1 := r.Future()
	f2 := r.Future()

	first := 0
	second := 0
	f1.RespondToCancellation(func() Future[Unit] {
		first++
		return Const(Unit{})
	})
	f2.RespondToCancellation(func() Future[Unit] {
		second++
		return Const(Unit{})
	})

	f2.Cancel()

	assert.Equal(t, 1, first)
	assert.Equal(t, 0, second)
}

// TestCancelIdentity covers testable property S7: cancel(), called twice,
// returns handles satisfying identity equality - the cancellation Future
// is created once, lazily, on the first call.
func TestCancelIdentity(t *testing.T) {
	r := NewResolvable[int]("")
	r.Future().RespondToCancellation(func() Future[Unit] {
		return Const(Unit{})
	})

	first := r.Future().Cancel()
	second := r.Future().Cancel()

	assert.Same(t, first.s, second.s)
}

func TestCancelWithoutResponderResolvesDoneImmediately(t *testing.T) {
	r := NewResolvable[int]("")
	cf := r.Future().Cancel()
	assert.Equal(t, Running, r.Future().State())
	_, err, st := wait(t, cf)
	require.NoError(t, err)
	assert.Equal(t, Done, st)
}

func TestCancelOnAlreadyTerminalResolvesDoneWithoutResponder(t *testing.T) {
	r := NewResolvable[int]("")
	called := false
	r.Future().RespondToCancellation(func() Future[Unit] {
		called = true
		return Const(Unit{})
	})
	r.Resolve(1)

	cf := r.Future().Cancel()
	assert.False(t, called)
	_, err, st := wait(t, cf)
	require.NoError(t, err)
	assert.Equal(t, Done, st)
}

func TestCancelFutureMirrorsResponderOutcome(t *testing.T) {
	r := NewResolvable[int]("")
	r.Future().RespondToCancellation(func() Future[Unit] {
		inner := NewResolvable[Unit]("")
		inner.Fail(errCancelled)
		return inner.Future()
	})

	cf := r.Future().Cancel()
	_, err, st := wait(t, cf)
	require.Error(t, err)
	assert.Equal(t, Failed, st)
}

func TestMapPropagatesCancelToUpstream(t *testing.T) {
	r := NewResolvable[int]("")
	upstreamCancelled := false
	r.Future().RespondToCancellation(func() Future[Unit] {
		upstreamCancelled = true
		r.CancelSelf()
		return Const(Unit{})
	})

	downstream := Map(r.Future(), Inline(), func(v int) (int, error) { return v, nil })
	downstream.Cancel()

	assert.True(t, upstreamCancelled)
	_, _, st := wait(t, downstream)
	assert.Equal(t, Cancelled, st)
}

func TestChainRetargetsCancelToInnerFuture(t *testing.T) {
	outer := NewResolvable[int]("")
	inner := NewResolvable[string]("")
	innerCancelled := false
	inner.Future().RespondToCancellation(func() Future[Unit] {
		innerCancelled = true
		inner.CancelSelf()
		return Const(Unit{})
	})

	downstream := Chain(outer.Future(), Inline(), func(int) Future[string] {
		return inner.Future()
	})

	outer.Resolve(1)
	downstream.Cancel()

	assert.True(t, innerCancelled)
	_, _, st := wait(t, downstream)
	assert.Equal(t, Cancelled, st)
}
