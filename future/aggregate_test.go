package future

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompositeSuccess(t *testing.T) {
	inputs := []Future[int]{Const(1), Const(2), Const(3)}
	f := All(context.Background(), Background(), inputs...)
	value, err, st := wait(t, f)
	require.NoError(t, err)
	assert.Equal(t, Done, st)
	assert.Equal(t, []int{1, 2, 3}, value)
}

func TestAllFailsOnFirstError(t *testing.T) {
	inputs := []Future[int]{Const(1), Errored[int](errors.New("boom")), Const(3)}
	f := All(context.Background(), Background(), inputs...)
	_, err, st := wait(t, f)
	require.Error(t, err)
	assert.Equal(t, Failed, st)
}

func TestAllLeavesOthersUntouchedOnFailure(t *testing.T) {
	slow := NewResolvable[int]("")
	slowCancelled := false
	slow.Future().RespondToCancellation(func() Future[Unit] {
		slowCancelled = true
		slow.CancelSelf()
		return Const(Unit{})
	})

	f := All(context.Background(), Background(), Errored[int](errors.New("boom")), slow.Future())
	_, _, _ = wait(t, f)
	time.Sleep(20 * time.Millisecond)
	assert.False(t, slowCancelled)
	assert.Equal(t, Running, slow.Future().State())
}

func TestAllCancelsOnInputCancellation(t *testing.T) {
	cancelled := NewResolvable[int]("")
	other := NewResolvable[int]("")

	f := All(context.Background(), Background(), cancelled.Future(), other.Future())
	cancelled.CancelSelf()
	_, _, st := wait(t, f)
	assert.Equal(t, Cancelled, st)
	assert.Equal(t, Running, other.Future().State())
}

func TestRaceReturnsFirstWinner(t *testing.T) {
	winner := NewResolvable[int]("")
	loser := NewResolvable[int]("")

	f := Race(winner.Future(), loser.Future())
	winner.Resolve(1)
	value, err, st := wait(t, f)
	require.NoError(t, err)
	assert.Equal(t, Done, st)
	assert.Equal(t, 1, value)
}

func TestRaceCancelsLosers(t *testing.T) {
	winner := NewResolvable[int]("")
	loser := NewResolvable[int]("")
	loserCancelled := false
	loser.Future().RespondToCancellation(func() Future[Unit] {
		loserCancelled = true
		loser.CancelSelf()
		return Const(Unit{})
	})

	f := Race(winner.Future(), loser.Future())
	winner.Resolve(1)
	_, _, _ = wait(t, f)

	assert.True(t, loserCancelled)
}

func TestAllCancelledRace(t *testing.T) {
	a := NewResolvable[int]("")
	b := NewResolvable[int]("")
	a.Future().RespondToCancellation(func() Future[Unit] {
		a.CancelSelf()
		return Const(Unit{})
	})
	b.Future().RespondToCancellation(func() Future[Unit] {
		b.CancelSelf()
		return Const(Unit{})
	})

	f := Race(a.Future(), b.Future())
	a.Future().Cancel()
	b.Future().Cancel()

	_, _, st := wait(t, f)
	assert.Equal(t, Cancelled, st)
}
