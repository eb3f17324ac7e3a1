package bloom

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerator(seed uint64) *Generator {
	return NewGenerator(rand.New(rand.NewPCG(seed, 0xdecafbad)))
}

func TestGenerateCount(t *testing.T) {
	g := newTestGenerator(1)

	assert.Len(t, g.Generate(DefaultCount), 100)
	assert.Len(t, g.Generate(7), 7)
	assert.Empty(t, g.Generate(0))
	assert.Empty(t, g.Generate(-3))
}

func TestGenerateRanges(t *testing.T) {
	g := newTestGenerator(2)

	colours := map[string]int{}
	for _, p := range g.Generate(5000) {
		require.GreaterOrEqual(t, p.X, -SpreadX/2)
		require.Less(t, p.X, SpreadX/2)
		require.GreaterOrEqual(t, p.Y, -SpreadY/2)
		require.Less(t, p.Y, SpreadY/2)
		require.GreaterOrEqual(t, p.Scale, MinScale)
		require.LessOrEqual(t, p.Scale, MaxScale)
		require.GreaterOrEqual(t, p.Rotation, 0.0)
		require.Less(t, p.Rotation, 360.0)
		require.GreaterOrEqual(t, p.Delay, 0.0)
		require.Less(t, p.Delay, MaxDelay)
		require.True(t, slices.Contains(Palette, p.Color), "unexpected colour %q", p.Color)
		colours[p.Color]++
	}

	// Every palette entry shows up with roughly equal weight.
	for _, c := range Palette {
		assert.InDelta(t, 1000, colours[c], 150, "colour %s", c)
	}
}

func TestSeparateGenerationsDiffer(t *testing.T) {
	g := newTestGenerator(3)

	first := g.Generate(DefaultCount)
	second := g.Generate(DefaultCount)

	assert.NotEqual(t, first, second)
}

func TestSameSeedSameField(t *testing.T) {
	assert.Equal(t, newTestGenerator(5).Generate(20), newTestGenerator(5).Generate(20))
}

func TestDrifters(t *testing.T) {
	g := newTestGenerator(9)

	ds := g.Drifters(DriftCount)
	assert.Len(t, ds, 10)
	for _, d := range ds {
		assert.GreaterOrEqual(t, d.Column, 0.0)
		assert.Less(t, d.Column, 1.0)
	}
	assert.Empty(t, g.Drifters(-1))
}
