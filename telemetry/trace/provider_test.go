package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewProvider(t *testing.T) {
	p := NewProvider("127.0.0.1:4317", "future-test")
	assert.NotNil(t, p)
}
