// Package system provides the process-level RandomSource and Clock.
package system

import (
	"math/rand/v2"
	"time"

	"github.com/exponent-labs/leetgen/internal/core/ports/driven"
)

// Verify interface compliance.
var (
	_ driven.RandomSource = Random{}
	_ driven.Clock        = Clock{}
)

// Random draws from the runtime's automatically seeded generator.
// It is safe for concurrent use.
type Random struct{}

// IntN returns a uniform integer in [0, n).
func (Random) IntN(n int) int {
	return rand.IntN(n)
}

// Clock reads the local wall clock.
type Clock struct{}

// Now returns the current local time.
func (Clock) Now() time.Time {
	return time.Now()
}
