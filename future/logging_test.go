package future

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kestrelsoft/future/logger"
)

func TestWithLoggerReplacesPackageDefault(t *testing.T) {
	original := currentLogger()
	defer WithLogger(original)

	replacement := logger.NewLogger(logger.WithNop())
	WithLogger(replacement)

	assert.Same(t, replacement, currentLogger())
}

func TestIgnoredSettleAndCancelRunWithLoggerInstalled(t *testing.T) {
	original := currentLogger()
	defer WithLogger(original)
	WithLogger(logger.NewLogger(logger.WithNop()))

	r := NewResolvable[int]("")
	assert.True(t, r.Resolve(1))
	assert.False(t, r.Fail(assertionError{}))

	r2 := NewResolvable[int]("")
	r2.Future().Cancel()
}

type assertionError struct{}

func (assertionError) Error() string { return "boom" }
