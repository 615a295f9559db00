package ratelimit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryLimiterBurstThenDeny(t *testing.T) {
	l := NewMemoryLimiter(1, 3)

	assert.True(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"))
}

func TestMemoryLimiterKeysAreIndependent(t *testing.T) {
	l := NewMemoryLimiter(1, 1)

	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"))

	// a different caller gets its own bucket
	assert.True(t, l.Allow("10.0.0.2"))
}

func TestMemoryLimiterReset(t *testing.T) {
	l := NewMemoryLimiter(1, 1)

	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"))

	l.Reset("10.0.0.1")
	assert.True(t, l.Allow("10.0.0.1"))
}

func TestMemoryLimiterCleanup(t *testing.T) {
	l := NewMemoryLimiter(1, 1)

	assert.True(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.2"))

	l.Cleanup()
	assert.True(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.2"))
}
