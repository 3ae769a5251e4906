package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRandom_IntN(t *testing.T) {
	var r Random
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		v := r.IntN(4)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 4)
		seen[v] = true
	}
	assert.Len(t, seen, 4)
	assert.Equal(t, 0, r.IntN(1))
}

func TestClock_Now(t *testing.T) {
	before := time.Now()
	got := Clock{}.Now()
	after := time.Now()

	assert.False(t, got.Before(before))
	assert.False(t, got.After(after))
	assert.Equal(t, time.Local, got.Location())
}
