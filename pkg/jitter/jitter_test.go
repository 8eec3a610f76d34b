package jitter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDurationRange(t *testing.T) {
	base := 100 * time.Millisecond

	for i := 0; i < 100; i++ {
		got := Duration(base, DefaultJitter)
		assert.GreaterOrEqual(t, got, base)
		assert.LessOrEqual(t, got, base+base/2)
	}
}

func TestDurationZeroJitter(t *testing.T) {
	base := 250 * time.Millisecond

	assert.Equal(t, base, Duration(base, 0))
}

func TestExponentialBackoffDoubles(t *testing.T) {
	base := time.Second
	max := 30 * time.Second

	assert.Equal(t, time.Second, ExponentialBackoff(base, max, 0, 0))
	assert.Equal(t, 2*time.Second, ExponentialBackoff(base, max, 1, 0))
	assert.Equal(t, 4*time.Second, ExponentialBackoff(base, max, 2, 0))
}

func TestExponentialBackoffCapsAtMax(t *testing.T) {
	got := ExponentialBackoff(time.Second, 10*time.Second, 20, 0)

	assert.Equal(t, 10*time.Second, got)
}
