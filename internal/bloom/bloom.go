// Package bloom generates the blossom particle burst shown once the tree
// has finished growing.
package bloom

import "math/rand/v2"

// Spread of the burst around the crown anchor, in scene units.
const (
	SpreadX = 380.0
	SpreadY = 320.0

	MinScale = 0.4
	MaxScale = 1.6

	MaxDelay = 1.5 // seconds
)

// DefaultCount is the number of particles in a burst.
const DefaultCount = 100

// Background petals falling behind the tree.
const (
	DriftCount  = 10
	DriftPeriod = 20.0 // seconds per fall, top to bottom
)

// Palette holds the petal colours particles are drawn from.
var Palette = []string{"#ffb7b2", "#ff9a9e", "#fad0c4", "#e11d48", "#ffffff"}

// Particle is one petal in the burst. Values are fixed at generation time.
type Particle struct {
	X        float64 // offset from the crown anchor
	Y        float64
	Scale    float64
	Rotation float64 // degrees, [0, 360)
	Delay    float64 // seconds before the entrance starts
	Color    string
}

// Generator samples particles from a seedable source.
type Generator struct {
	rng     *rand.Rand
	palette []string
}

// NewGenerator creates a Generator using rng and the default palette.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng, palette: Palette}
}

// Generate returns count independently sampled particles.
func (g *Generator) Generate(count int) []Particle {
	if count < 0 {
		count = 0
	}
	out := make([]Particle, count)
	for i := range out {
		out[i] = Particle{
			X:        g.rng.Float64()*SpreadX - SpreadX/2,
			Y:        g.rng.Float64()*SpreadY - SpreadY/2,
			Scale:    MinScale + g.rng.Float64()*(MaxScale-MinScale),
			Rotation: g.rng.Float64() * 360,
			Delay:    g.rng.Float64() * MaxDelay,
			Color:    g.palette[g.rng.IntN(len(g.palette))],
		}
	}
	return out
}

// Drifter is a background petal falling on a fixed column.
type Drifter struct {
	Column float64 // fraction of the scene width, [0, 1)
}

// Drifters returns count background petals on random columns.
func (g *Generator) Drifters(count int) []Drifter {
	if count < 0 {
		count = 0
	}
	out := make([]Drifter, count)
	for i := range out {
		out[i] = Drifter{Column: g.rng.Float64()}
	}
	return out
}
