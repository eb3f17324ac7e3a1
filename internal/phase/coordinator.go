package phase

import (
	"time"

	"github.com/abhisek/blossom/internal/bloom"
	"github.com/abhisek/blossom/internal/evasion"
)

// GrowDelay is how long the tree grows before the blossoms appear.
const GrowDelay = 3500 * time.Millisecond

// Task is the one-shot Growing→Bloomed advance. It can be cancelled,
// though nothing in the greeting currently does.
type Task struct {
	id       uint64
	due      time.Time
	canceled bool
}

// ID identifies the task in advance messages.
func (t *Task) ID() uint64 { return t.id }

// Due is the instant the task becomes eligible to fire.
func (t *Task) Due() time.Time { return t.due }

// Cancel prevents the task from advancing the phase.
func (t *Task) Cancel() { t.canceled = true }

// Canceled reports whether Cancel was called.
func (t *Task) Canceled() bool { return t.canceled }

// Options configures a Coordinator.
type Options struct {
	Evader        *evasion.Controller
	Particles     *bloom.Generator
	ParticleCount int
	GrowDelay     time.Duration
}

// Coordinator owns the phase and is its only writer.
type Coordinator struct {
	phase     Phase
	growDelay time.Duration

	evader        *evasion.Controller
	gen           *bloom.Generator
	particleCount int
	particles     []bloom.Particle
	drifters      []bloom.Drifter

	growingAt time.Time
	bloomedAt time.Time

	nextID  uint64
	pending *Task
}

// New creates a Coordinator in the Asking phase.
func New(opts Options) *Coordinator {
	if opts.GrowDelay <= 0 {
		opts.GrowDelay = GrowDelay
	}
	if opts.ParticleCount <= 0 {
		opts.ParticleCount = bloom.DefaultCount
	}
	return &Coordinator{
		phase:         Asking,
		growDelay:     opts.GrowDelay,
		evader:        opts.Evader,
		gen:           opts.Particles,
		particleCount: opts.ParticleCount,
	}
}

// Phase returns the current phase.
func (c *Coordinator) Phase() Phase { return c.phase }

// GrowDelay is how long Growing lasts before the advance task is due.
func (c *Coordinator) GrowDelay() time.Duration { return c.growDelay }

// GrowingAt is when Growing was entered; zero before that.
func (c *Coordinator) GrowingAt() time.Time { return c.growingAt }

// BloomedAt is when Bloomed was entered; zero before that.
func (c *Coordinator) BloomedAt() time.Time { return c.bloomedAt }

// SubmitAffirmative moves Asking to Growing and arms the advance task.
// In any other phase it does nothing and returns nil.
func (c *Coordinator) SubmitAffirmative(now time.Time) *Task {
	if c.phase != Asking {
		return nil
	}
	c.phase = Growing
	c.growingAt = now
	if c.gen != nil {
		c.drifters = c.gen.Drifters(bloom.DriftCount)
	}
	c.nextID++
	c.pending = &Task{id: c.nextID, due: now.Add(c.growDelay)}
	return c.pending
}

// Pending returns the armed advance task, or nil when none is armed.
func (c *Coordinator) Pending() *Task {
	if c.pending == nil || c.pending.canceled {
		return nil
	}
	return c.pending
}

// Remaining returns how long the armed task still has to wait at now, or
// zero when nothing is armed or the task is already due.
func (c *Coordinator) Remaining(now time.Time) time.Duration {
	if c.pending == nil || c.pending.canceled {
		return 0
	}
	if d := c.pending.due.Sub(now); d > 0 {
		return d
	}
	return 0
}

// Advance fires the task with the given id. It enters Bloomed and reports
// true only if that task is still armed and due at now.
func (c *Coordinator) Advance(id uint64, now time.Time) bool {
	t := c.pending
	if c.phase != Growing || t == nil || t.id != id || t.canceled {
		return false
	}
	if now.Before(t.due) {
		return false
	}
	c.pending = nil
	c.phase = Bloomed
	c.bloomedAt = now
	if c.particles == nil && c.gen != nil {
		c.particles = c.gen.Generate(c.particleCount)
	}
	return true
}

// Particles returns the burst generated on entry to Bloomed. The same
// slice is returned on every call; it is nil before Bloomed.
func (c *Coordinator) Particles() []bloom.Particle {
	return c.particles
}

// Drifters returns the background petals chosen on entry to Growing; nil
// before that.
func (c *Coordinator) Drifters() []bloom.Drifter {
	return c.drifters
}

// RequestEvasion moves the rejection control. Valid in any phase.
func (c *Coordinator) RequestEvasion(maxDistance float64) evasion.Offset {
	if c.evader == nil {
		return evasion.Offset{}
	}
	return c.evader.Evade(maxDistance)
}

// EvasionOffset returns the current offset of the rejection control.
func (c *Coordinator) EvasionOffset() evasion.Offset {
	if c.evader == nil {
		return evasion.Offset{}
	}
	return c.evader.Offset()
}
