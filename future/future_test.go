package future

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstResolvesImmediately(t *testing.T) {
	f := Const(42)
	assert.Equal(t, Done, f.State())
}

func TestErroredFailsImmediately(t *testing.T) {
	f := Errored[int](errors.New("boom"))
	assert.Equal(t, Failed, f.State())
}

func TestNewResolvesOnSuccess(t *testing.T) {
	f := New(Inline(), func() (int, error) { return 7, nil })
	value, err, st := wait(t, f)
	require.NoError(t, err)
	assert.Equal(t, Done, st)
	assert.Equal(t, 7, value)
}

func TestNewFailsAndWrapsDomainUser(t *testing.T) {
	f := New(Inline(), func() (int, error) { return 0, errors.New("bad") })
	_, err, st := wait(t, f)
	require.Error(t, err)
	assert.Equal(t, Failed, st)
	var info *ErrorInfo
	require.ErrorAs(t, err, &info)
	assert.Equal(t, DomainUser, info.Domain)
}

func TestOnContextDeliversOnceForAlreadySettled(t *testing.T) {
	f := Const(1)
	calls := 0
	done := make(chan struct{})
	f.OnContext(Background(), func(int, error, State) {
		calls++
		close(done)
	})
	<-done
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, 1, calls)
}

func TestSecondResolveIsDiscarded(t *testing.T) {
	r := NewResolvable[int]("")
	assert.True(t, r.Resolve(1))
	assert.False(t, r.Resolve(2))
	value, _, _, ok := r.s.snapshot()
	require.True(t, ok)
	assert.Equal(t, 1, value)
}

// wait blocks until f settles using the Inline execution context, failing
// the test if it takes more than a second.
func wait[T any](t *testing.T, f Future[T]) (T, error, State) {
	t.Helper()
	type outcome struct {
		value T
		err   error
		st    State
	}
	ch := make(chan outcome, 1)
	f.OnContext(Inline(), func(value T, err error, st State) {
		ch <- outcome{value: value, err: err, st: st}
	})
	select {
	case o := <-ch:
		return o.value, o.err, o.st
	case <-time.After(time.Second):
		t.Fatal("future did not settle in time")
		var zero T
		return zero, nil, Running
	}
}
