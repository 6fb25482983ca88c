package ofpact

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Logger is the diagnostic sink named in spec §5/§7: decode conditions
// (unknown or obsolete types, unsupported instructions) are reported
// through it, never through a return value. It is a package variable, so
// the rest of the switch can redirect it.
var Logger = logrus.New()

// rateLimiter is a minimal token bucket guarding Logger against a flood of
// malformed input amplifying into a logging storm. It has no third-party
// equivalent in the example pack (see DESIGN.md); the bucket itself is a
// handful of lines and the behavior it needs — a fixed refill rate and a
// burst allowance — doesn't warrant pulling in a dependency for.
type rateLimiter struct {
	mu       sync.Mutex
	tokens   float64
	max      float64
	rate     float64 // tokens per second
	lastFill time.Time
}

func newRateLimiter(rate float64, burst int) *rateLimiter {
	return &rateLimiter{
		tokens:   float64(burst),
		max:      float64(burst),
		rate:     rate,
		lastFill: time.Now(),
	}
}

// Allow reports whether the caller may emit one more diagnostic message
// right now, consuming a token if so. It is safe for concurrent use, as
// required by spec §5.
func (r *rateLimiter) Allow() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(r.lastFill).Seconds()
	r.lastFill = now

	r.tokens += elapsed * r.rate
	if r.tokens > r.max {
		r.tokens = r.max
	}

	if r.tokens < 1 {
		return false
	}
	r.tokens--
	return true
}

// diagnosticLimiter throttles the package-wide diagnostic() helper. It
// allows up to 5 messages per second with a burst of 20, loosely mirroring
// the magnitude OVS's own vlog rate limiter uses for per-flow decode
// failures.
var diagnosticLimiter = newRateLimiter(5, 20)

// diagnostic reports a decode condition through Logger,
// subject to diagnosticLimiter. It never affects any return value.
func diagnostic(format string, args ...interface{}) {
	if !diagnosticLimiter.Allow() {
		return
	}
	Logger.WithField("component", "ofpact").Warnf(format, args...)
}
