package future

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDelayResolvesAfterDuration(t *testing.T) {
	start := time.Now()
	f := Delay(20*time.Millisecond, "ok")
	value, err, st := wait(t, f)
	require.NoError(t, err)
	assert.Equal(t, Done, st)
	assert.Equal(t, "ok", value)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestDelayCancelStopsTimer(t *testing.T) {
	f := Delay(time.Hour, "never")
	f.Cancel()
	_, _, st := wait(t, f)
	assert.Equal(t, Cancelled, st)
}

func TestTimeoutOnlyLeavesUpstreamRunning(t *testing.T) {
	r := NewResolvable[int]("")
	f := TimeoutOnly(r.Future(), 10*time.Millisecond)
	_, err, st := wait(t, f)
	require.Error(t, err)
	assert.Equal(t, Failed, st)
	var info *ErrorInfo
	require.ErrorAs(t, err, &info)
	assert.Equal(t, DomainTimeout, info.Domain)
	assert.Equal(t, Running, r.Future().State())
}

func TestTimeoutAndCancelCancelsUpstream(t *testing.T) {
	r := NewResolvable[int]("")
	upstreamCancelled := false
	r.Future().RespondToCancellation(func() Future[Unit] {
		upstreamCancelled = true
		r.CancelSelf()
		return Const(Unit{})
	})

	f := TimeoutAndCancel(r.Future(), 10*time.Millisecond)
	_, err, st := wait(t, f)
	require.Error(t, err)
	assert.Equal(t, Failed, st)
	assert.True(t, upstreamCancelled)
}

func TestTimeoutForwardsFastResult(t *testing.T) {
	f := Timeout(Const(5), time.Hour)
	value, err, st := wait(t, f)
	require.NoError(t, err)
	assert.Equal(t, Done, st)
	assert.Equal(t, 5, value)
}
