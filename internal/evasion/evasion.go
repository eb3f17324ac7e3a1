// Package evasion moves the rejection control out of the pointer's way.
package evasion

import "math/rand/v2"

// Offset is a displacement applied to the rejection control, in abstract
// layout units.
type Offset struct {
	X float64
	Y float64
}

// Controller produces a fresh random offset on every evasion trigger.
// It keeps only the most recent offset.
type Controller struct {
	rng    *rand.Rand
	offset Offset
}

// New creates a Controller drawing from rng.
func New(rng *rand.Rand) *Controller {
	return &Controller{rng: rng}
}

// Evade replaces the current offset with a new one whose axes are drawn
// independently and uniformly from [-maxDistance/2, +maxDistance/2].
func (c *Controller) Evade(maxDistance float64) Offset {
	if maxDistance < 0 {
		maxDistance = -maxDistance
	}
	c.offset = Offset{
		X: c.rng.Float64()*maxDistance - maxDistance/2,
		Y: c.rng.Float64()*maxDistance - maxDistance/2,
	}
	return c.offset
}

// Offset returns the most recent offset, or the zero offset before the
// first evasion.
func (c *Controller) Offset() Offset {
	return c.offset
}
