package future

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapTransformsSuccess(t *testing.T) {
	f := Map(Const(2), Inline(), func(v int) (int, error) { return v * 10, nil })
	value, err, st := wait(t, f)
	require.NoError(t, err)
	assert.Equal(t, Done, st)
	assert.Equal(t, 20, value)
}

func TestFmapTerminatesOnError(t *testing.T) {
	calls := 0
	f := Map(Errored[int](errors.New("boom")), Inline(), func(v int) (int, error) {
		calls++
		return v, nil
	})
	_, err, st := wait(t, f)
	require.Error(t, err)
	assert.Equal(t, Failed, st)
	assert.Equal(t, 0, calls)
}

func TestMapWrapsMapperError(t *testing.T) {
	f := Map(Const(1), Inline(), func(int) (int, error) { return 0, errors.New("nope") })
	_, err, st := wait(t, f)
	require.Error(t, err)
	assert.Equal(t, Failed, st)
	var info *ErrorInfo
	require.ErrorAs(t, err, &info)
	assert.Equal(t, DomainUser, info.Domain)
}

func TestChainFlattensInnerFuture(t *testing.T) {
	f := Chain(Const(3), Inline(), func(v int) Future[string] {
		if v == 3 {
			return Const("three")
		}
		return Errored[string](errors.New("unexpected"))
	})
	value, err, st := wait(t, f)
	require.NoError(t, err)
	assert.Equal(t, Done, st)
	assert.Equal(t, "three", value)
}

func TestChainSkipsOnCancel(t *testing.T) {
	r := NewResolvable[int]("")
	calls := 0
	downstream := Chain(r.Future(), Inline(), func(v int) Future[string] {
		calls++
		return Const("never")
	})
	r.CancelSelf()
	_, _, st := wait(t, downstream)
	assert.Equal(t, Cancelled, st)
	assert.Equal(t, 0, calls)
}

func TestFallbackRecoversFromFailure(t *testing.T) {
	f := Fallback(Errored[int](errors.New("boom")), Inline(), func(error) Future[int] {
		return Const(99)
	})
	value, err, st := wait(t, f)
	require.NoError(t, err)
	assert.Equal(t, Done, st)
	assert.Equal(t, 99, value)
}

func TestFallbackIgnoresSuccess(t *testing.T) {
	calls := 0
	f := Fallback(Const(5), Inline(), func(error) Future[int] {
		calls++
		return Const(0)
	})
	value, _, _ := wait(t, f)
	assert.Equal(t, 5, value)
	assert.Equal(t, 0, calls)
}

func TestReplaceDiscardsOriginalValue(t *testing.T) {
	f := Replace(Const(1), Inline(), "replacement")
	value, _, _ := wait(t, f)
	assert.Equal(t, "replacement", value)
}

func TestReplaceWithAdoptsOtherFutureOutcome(t *testing.T) {
	other := NewResolvable[string]("")
	f := ReplaceWith[int](Const(1), other.Future())
	other.Resolve("from-other")
	value, err, st := wait(t, f)
	require.NoError(t, err)
	assert.Equal(t, Done, st)
	assert.Equal(t, "from-other", value)
}

func TestReplaceWithSkipsOtherOnFailure(t *testing.T) {
	other := NewResolvable[string]("")
	f := ReplaceWith[int](Errored[int](errors.New("boom")), other.Future())
	_, err, st := wait(t, f)
	require.Error(t, err)
	assert.Equal(t, Failed, st)
	assert.Equal(t, Running, other.Future().State())
}

func TestFallbackValueSubstitutesConstant(t *testing.T) {
	f := FallbackValue(Errored[int](errors.New("boom")), Inline(), 42)
	value, err, st := wait(t, f)
	require.NoError(t, err)
	assert.Equal(t, Done, st)
	assert.Equal(t, 42, value)
}

func TestTransformSeesFailedState(t *testing.T) {
	f := Transform(Errored[int](errors.New("boom")), Inline(), func(u Future[int]) Future[string] {
		if u.State() == Failed {
			return Const("recovered")
		}
		return Const("other")
	})
	value, err, st := wait(t, f)
	require.NoError(t, err)
	assert.Equal(t, Done, st)
	assert.Equal(t, "recovered", value)
}

func TestTransformSkipsOnCancelLikeChain(t *testing.T) {
	r := NewResolvable[int]("")
	calls := 0
	f := Transform(r.Future(), Inline(), func(u Future[int]) Future[string] {
		calls++
		return Const("never")
	})
	r.CancelSelf()
	_, _, st := wait(t, f)
	assert.Equal(t, 0, calls)
	assert.Equal(t, Cancelled, st)
}
