package metric

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewProvider(t *testing.T) {
	p := NewProvider("127.0.0.1:4317", "future-test", time.Second)
	assert.NotNil(t, p)
}
