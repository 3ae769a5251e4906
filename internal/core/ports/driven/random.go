package driven

import "time"

// RandomSource supplies uniform random integers.
// Tests substitute a seeded or scripted source.
type RandomSource interface {
	// IntN returns a uniform integer in [0, n). n is always positive.
	IntN(n int) int
}

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}
