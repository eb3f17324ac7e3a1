package components

import (
	"fmt"
	"strconv"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/blossom/internal/elapsed"
	"github.com/abhisek/blossom/internal/ui/theme"
)

// counterTickMsg carries the mount generation that scheduled it, so ticks
// from an earlier mount are dropped instead of rescheduled.
type counterTickMsg struct {
	gen uint64
	at  time.Time
}

// Counter shows the time elapsed since a reference instant, recomputed
// once per second while mounted.
type Counter struct {
	since   time.Time
	gen     uint64
	mounted bool

	breakdown elapsed.Breakdown
	totalDays int
}

// NewCounter creates an unmounted counter anchored at since.
func NewCounter(since time.Time) *Counter {
	return &Counter{since: since}
}

// Mount computes the breakdown for now and starts the per-second tick.
// Mounting an already mounted counter restarts its tick loop.
func (c *Counter) Mount(now time.Time) tea.Cmd {
	c.gen++
	c.mounted = true
	c.recompute(now)
	return c.tick()
}

// Unmount stops the tick loop. Ticks already in flight are ignored.
func (c *Counter) Unmount() {
	c.gen++
	c.mounted = false
}

// Mounted reports whether the tick loop is live.
func (c *Counter) Mounted() bool { return c.mounted }

// Update handles the counter's own tick messages.
func (c *Counter) Update(msg tea.Msg) tea.Cmd {
	m, ok := msg.(counterTickMsg)
	if !ok || !c.mounted || m.gen != c.gen {
		return nil
	}
	c.recompute(m.at)
	return c.tick()
}

// Breakdown returns the last computed breakdown.
func (c *Counter) Breakdown() elapsed.Breakdown { return c.breakdown }

// TotalDays returns the last computed whole-day count.
func (c *Counter) TotalDays() int { return c.totalDays }

func (c *Counter) recompute(now time.Time) {
	c.breakdown = elapsed.Between(c.since, now)
	c.totalDays = elapsed.TotalWholeDays(c.since, now)
}

func (c *Counter) tick() tea.Cmd {
	gen := c.gen
	return tea.Every(time.Second, func(t time.Time) tea.Msg {
		return counterTickMsg{gen: gen, at: t}
	})
}

// View renders one box per unit. Years and months only appear once
// non-zero.
func (c *Counter) View() string {
	b := c.breakdown

	var boxes []string
	if b.Years > 0 {
		boxes = append(boxes, timeBox(b.Years, "YRS"))
	}
	if b.Months > 0 {
		boxes = append(boxes, timeBox(b.Months, "MOS"))
	}
	boxes = append(boxes,
		timeBox(b.Days, "DAYS"),
		timeBox(b.Hours, "HRS"),
		timeBox(b.Minutes, "MIN"),
		timeBox(b.Seconds, "SEC"),
	)

	row := lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
	total := theme.Hint.Render(fmt.Sprintf("( %d days together )", c.totalDays))

	return lipgloss.JoinVertical(lipgloss.Center, row, "", total)
}

func timeBox(v int, label string) string {
	return lipgloss.JoinVertical(lipgloss.Center,
		theme.CounterValue.Width(6).Render(strconv.Itoa(v)),
		theme.CounterLabel.Width(6).Render(label),
	)
}
