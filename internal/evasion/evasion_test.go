package evasion

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestController(seed uint64) *Controller {
	return New(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

func TestOffsetStartsAtZero(t *testing.T) {
	c := newTestController(1)
	assert.Equal(t, Offset{}, c.Offset())
}

func TestEvadeStaysInBounds(t *testing.T) {
	c := newTestController(42)

	var sumX, sumY float64
	const n = 1000
	for i := 0; i < n; i++ {
		o := c.Evade(150)
		require.GreaterOrEqual(t, o.X, -75.0)
		require.LessOrEqual(t, o.X, 75.0)
		require.GreaterOrEqual(t, o.Y, -75.0)
		require.LessOrEqual(t, o.Y, 75.0)
		sumX += o.X
		sumY += o.Y
	}

	// Standard error of the mean for U(-75,75) over 1000 draws is ~1.37.
	assert.InDelta(t, 0, sumX/n, 6)
	assert.InDelta(t, 0, sumY/n, 6)
}

func TestEvadeApproximatesUniform(t *testing.T) {
	c := newTestController(7)

	const (
		n       = 20000
		buckets = 10
	)
	var xs, ys [buckets]int
	for i := 0; i < n; i++ {
		o := c.Evade(80)
		xs[bucketOf(o.X, 80, buckets)]++
		ys[bucketOf(o.Y, 80, buckets)]++
	}

	expected := float64(n) / buckets
	for i := 0; i < buckets; i++ {
		assert.InDelta(t, expected, float64(xs[i]), expected*0.1, "x bucket %d", i)
		assert.InDelta(t, expected, float64(ys[i]), expected*0.1, "y bucket %d", i)
	}
}

func TestEvadeReplacesOffset(t *testing.T) {
	c := newTestController(3)

	first := c.Evade(150)
	second := c.Evade(150)

	assert.NotEqual(t, first, second)
	assert.Equal(t, second, c.Offset())
}

func TestEvadeZeroDistance(t *testing.T) {
	c := newTestController(9)
	c.Evade(150)

	assert.Equal(t, Offset{}, c.Evade(0))
}

func TestEvadeIsDeterministicForSeed(t *testing.T) {
	a := newTestController(11)
	b := newTestController(11)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Evade(150), b.Evade(150))
	}
}

func bucketOf(v, maxDistance float64, buckets int) int {
	i := int(math.Floor((v + maxDistance/2) / maxDistance * float64(buckets)))
	if i >= buckets {
		i = buckets - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}
