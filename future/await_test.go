package future

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAwaitReturnsValue(t *testing.T) {
	value, err := Const(11).Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 11, value)
}

func TestAwaitReturnsContextErrorWithoutCancellingFuture(t *testing.T) {
	r := NewResolvable[int]("")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := r.Future().Await(ctx)
	require.Error(t, err)
	assert.Equal(t, context.DeadlineExceeded, err)
	assert.Equal(t, Running, r.Future().State())
}
