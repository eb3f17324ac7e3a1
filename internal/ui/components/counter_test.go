package components

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/blossom/internal/elapsed"
)

var since = time.Date(2025, time.November, 30, 0, 0, 0, 0, time.UTC)

func TestCounterMountComputesImmediately(t *testing.T) {
	c := NewCounter(since)
	assert.False(t, c.Mounted())

	cmd := c.Mount(time.Date(2025, time.December, 1, 0, 0, 1, 0, time.UTC))
	require.NotNil(t, cmd)
	assert.True(t, c.Mounted())
	assert.Equal(t, elapsed.Breakdown{Days: 1, Seconds: 1}, c.Breakdown())
	assert.Equal(t, 1, c.TotalDays())
}

func TestCounterTickRecomputes(t *testing.T) {
	c := NewCounter(since)
	c.Mount(since)

	cmd := c.Update(counterTickMsg{gen: c.gen, at: since.Add(90 * time.Second)})
	require.NotNil(t, cmd, "tick should reschedule itself")
	assert.Equal(t, elapsed.Breakdown{Minutes: 1, Seconds: 30}, c.Breakdown())
}

func TestCounterUnmountStopsTicks(t *testing.T) {
	c := NewCounter(since)
	c.Mount(since)
	stale := counterTickMsg{gen: c.gen, at: since.Add(time.Hour)}

	c.Unmount()
	assert.False(t, c.Mounted())
	assert.Nil(t, c.Update(stale))
	assert.Equal(t, elapsed.Breakdown{}, c.Breakdown())
}

func TestCounterRemountDropsOldLoop(t *testing.T) {
	c := NewCounter(since)
	c.Mount(since)
	old := counterTickMsg{gen: c.gen, at: since.Add(time.Hour)}

	c.Unmount()
	c.Mount(since)
	assert.Nil(t, c.Update(old))
	assert.NotNil(t, c.Update(counterTickMsg{gen: c.gen, at: since.Add(time.Second)}))
}

func TestCounterIgnoresOtherMessages(t *testing.T) {
	c := NewCounter(since)
	c.Mount(since)
	assert.Nil(t, c.Update("noise"))
}

func TestCounterViewHidesZeroYearsAndMonths(t *testing.T) {
	c := NewCounter(since)
	c.Mount(time.Date(2025, time.December, 3, 4, 5, 6, 0, time.UTC))

	view := c.View()
	assert.NotContains(t, view, "YRS")
	assert.NotContains(t, view, "MOS")
	for _, label := range []string{"DAYS", "HRS", "MIN", "SEC"} {
		assert.Contains(t, view, label)
	}
	assert.Contains(t, view, "( 3 days together )")

	c.Mount(time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC))
	view = c.View()
	assert.True(t, strings.Contains(view, "YRS") && strings.Contains(view, "MOS"))
}
