package ofpact

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiterAllowsUpToBurst(t *testing.T) {
	rl := newRateLimiter(1, 3)

	assert.True(t, rl.Allow())
	assert.True(t, rl.Allow())
	assert.True(t, rl.Allow())
	assert.False(t, rl.Allow())
}

func TestRateLimiterRefillsOverTime(t *testing.T) {
	rl := newRateLimiter(1000, 1)

	assert.True(t, rl.Allow())
	assert.False(t, rl.Allow())

	// Backdate lastFill far enough that the high refill rate guarantees
	// at least one token has accrued by the next Allow call.
	rl.mu.Lock()
	rl.lastFill = rl.lastFill.Add(-time.Second)
	rl.mu.Unlock()

	assert.True(t, rl.Allow())
}

func TestDiagnosticDoesNotPanicWhenRateLimited(t *testing.T) {
	saved := diagnosticLimiter
	defer func() { diagnosticLimiter = saved }()

	diagnosticLimiter = newRateLimiter(0, 0)
	diagnostic("dropped action type=%d", OUTPUT)
}
