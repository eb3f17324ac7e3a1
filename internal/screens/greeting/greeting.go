package greeting

import (
	"fmt"
	"log/slog"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/blossom/internal/audio"
	"github.com/abhisek/blossom/internal/config"
	"github.com/abhisek/blossom/internal/phase"
	"github.com/abhisek/blossom/internal/screen"
	"github.com/abhisek/blossom/internal/ui/components"
	"github.com/abhisek/blossom/internal/ui/layout"
)

const (
	frameInterval = 50 * time.Millisecond

	// Once everything else has settled only the background petals move.
	driftInterval = 500 * time.Millisecond
)

// advanceMsg fires the Growing→Bloomed task armed by the coordinator.
type advanceMsg struct {
	id uint64
	at time.Time
}

// frameMsg redraws the tree and petals while they are animating.
type frameMsg struct {
	gen uint64
	at  time.Time
}

// audioFailedMsg reports that the song could not start.
type audioFailedMsg struct {
	err error
}

type keyMap struct {
	Yes   key.Binding
	No    key.Binding
	Press key.Binding
	Focus key.Binding
}

var keys = keyMap{
	Yes:   key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "Yes")),
	No:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "No")),
	Press: key.NewBinding(key.WithKeys("enter", "space"), key.WithHelp("Enter", "Press")),
	Focus: key.NewBinding(key.WithKeys("tab", "shift+tab", "left", "right"), key.WithHelp("Tab", "Switch")),
}

// Options wires the greeting to its collaborators.
type Options struct {
	Config      config.Config
	Since       time.Time
	Coordinator *phase.Coordinator
	Player      audio.Player
	Logger      *slog.Logger

	// Now defaults to time.Now.
	Now func() time.Time
}

// Screen hosts the whole greeting: the question, the growing tree and the
// bloomed message card.
type Screen struct {
	cfg     config.Config
	coord   *phase.Coordinator
	player  audio.Player
	log     *slog.Logger
	now     func() time.Time
	counter *components.Counter

	width  int
	height int

	frameGen  uint64
	animating bool
	lastFrame time.Time
}

var (
	_ screen.Screen          = (*Screen)(nil)
	_ screen.Unmounter       = (*Screen)(nil)
	_ screen.KeyHintProvider = (*Screen)(nil)
	_ screen.StatusProvider  = (*Screen)(nil)
)

// New creates the greeting screen in whatever phase the coordinator is in.
func New(opts Options) *Screen {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Player == nil {
		opts.Player = audio.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Screen{
		cfg:     opts.Config,
		coord:   opts.Coordinator,
		player:  opts.Player,
		log:     opts.Logger,
		now:     opts.Now,
		counter: components.NewCounter(opts.Since),
	}
}

func (s *Screen) Title() string {
	if s.coord.Phase() == phase.Bloomed {
		return s.cfg.Story
	}
	return ""
}

// Status shows the whole-day count once the counter is running.
func (s *Screen) Status() string {
	if !s.counter.Mounted() {
		return ""
	}
	return fmt.Sprintf("❀ %d days", s.counter.TotalDays())
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.coord.Phase() != phase.Asking {
		return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	}
	return []layout.KeyHint{
		{Key: keys.Focus.Help().Key, Description: keys.Focus.Help().Desc},
		{Key: keys.Press.Help().Key, Description: keys.Press.Help().Desc},
		{Key: keys.Yes.Help().Key, Description: keys.Yes.Help().Desc},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *Screen) Init() tea.Cmd {
	// Resuming a screen over an already running coordinator restarts the
	// views that depend on its phase.
	switch s.coord.Phase() {
	case phase.Growing:
		return tea.Batch(s.armAdvance(s.now()), s.startFrames())
	case phase.Bloomed:
		return tea.Batch(s.counter.Mount(s.now()), s.startFrames())
	}
	return nil
}

// Unmount stops the counter and the frame and drift loops.
func (s *Screen) Unmount() {
	s.counter.Unmount()
	s.frameGen++
	s.animating = false
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case layout.ContentSizeMsg:
		s.width, s.height = msg.Width, msg.Height
		return s, nil

	case tea.KeyPressMsg:
		return s, s.handleKey(msg)

	case tea.MouseMotionMsg:
		m := msg.Mouse()
		if s.coord.Phase() == phase.Asking && s.askingLayout().no.near(m.X, m.Y) {
			s.evade()
		}
		return s, nil

	case tea.MouseClickMsg:
		m := msg.Mouse()
		if m.Button != tea.MouseLeft || s.coord.Phase() != phase.Asking {
			return s, nil
		}
		l := s.askingLayout()
		switch {
		case l.no.contains(m.X, m.Y):
			s.evade()
		case l.yes.contains(m.X, m.Y):
			return s, s.affirm()
		}
		return s, nil

	case advanceMsg:
		return s, s.advance(msg)

	case frameMsg:
		if msg.gen != s.frameGen || s.coord.Phase() == phase.Asking {
			return s, nil
		}
		s.lastFrame = msg.at
		if s.settled(msg.at) {
			s.animating = false
			return s, s.tick(driftInterval)
		}
		return s, s.tick(frameInterval)

	case audioFailedMsg:
		s.log.Warn("audio playback did not start", "path", s.cfg.Audio.Path, "err", msg.err)
		return s, nil
	}

	return s, s.counter.Update(msg)
}

func (s *Screen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	if s.coord.Phase() != phase.Asking {
		return nil
	}
	switch {
	case key.Matches(msg, keys.Yes):
		return s.affirm()
	case key.Matches(msg, keys.No):
		s.evade()
	case key.Matches(msg, keys.Focus):
		// Focus never settles on "No": it runs away and focus stays on "Yes".
		s.evade()
	case key.Matches(msg, keys.Press):
		return s.affirm()
	}
	return nil
}

// evade moves the rejection button, bounded by the terminal class.
func (s *Screen) evade() {
	d := s.cfg.Evade.Distance
	if layout.IsCompactWidth(s.width) {
		d = s.cfg.Evade.CompactDistance
	}
	o := s.coord.RequestEvasion(d)
	s.log.Debug("evaded", "x", o.X, "y", o.Y, "bound", d)
}

// affirm enters Growing, arms the bloom timer and starts the song.
func (s *Screen) affirm() tea.Cmd {
	now := s.now()
	task := s.coord.SubmitAffirmative(now)
	if task == nil {
		return nil
	}
	s.log.Info("phase changed", "phase", s.coord.Phase().String(), "bloom_due", task.Due())
	return tea.Batch(s.armAdvance(now), s.startFrames(), s.playSong())
}

func (s *Screen) armAdvance(now time.Time) tea.Cmd {
	task := s.coord.Pending()
	if task == nil {
		return nil
	}
	id := task.ID()
	return tea.Tick(s.coord.Remaining(now), func(t time.Time) tea.Msg {
		return advanceMsg{id: id, at: t}
	})
}

func (s *Screen) advance(msg advanceMsg) tea.Cmd {
	if s.coord.Advance(msg.id, msg.at) {
		s.log.Info("phase changed", "phase", s.coord.Phase().String(), "particles", len(s.coord.Particles()))
		return tea.Batch(s.counter.Mount(msg.at), s.startFrames())
	}
	// Delivered early: wait out the rest.
	if s.coord.Phase() == phase.Growing && s.coord.Remaining(msg.at) > 0 {
		return s.armAdvance(msg.at)
	}
	return nil
}

func (s *Screen) playSong() tea.Cmd {
	if s.cfg.Audio.Mute {
		return nil
	}
	player, path, volume := s.player, s.cfg.Audio.Path, s.cfg.Audio.Volume
	return func() tea.Msg {
		if err := player.Play(path, volume); err != nil {
			return audioFailedMsg{err: err}
		}
		return nil
	}
}

// startFrames begins a fresh frame loop, dropping any earlier one.
func (s *Screen) startFrames() tea.Cmd {
	s.frameGen++
	s.animating = true
	s.lastFrame = s.now()
	return s.tick(frameInterval)
}

func (s *Screen) tick(d time.Duration) tea.Cmd {
	gen := s.frameGen
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return frameMsg{gen: gen, at: t}
	})
}

// settled reports whether nothing but the background petals will change
// until the next phase or counter tick.
func (s *Screen) settled(now time.Time) bool {
	switch s.coord.Phase() {
	case phase.Bloomed:
		return treeDone(s.growT(now)) && burstDone(s.bloomT(now)) && cardDone(s.bloomT(now))
	case phase.Growing:
		return false
	}
	return true
}

func (s *Screen) growT(now time.Time) float32 {
	return seconds(now.Sub(s.coord.GrowingAt()))
}

func (s *Screen) bloomT(now time.Time) float32 {
	if s.coord.Phase() != phase.Bloomed {
		return 0
	}
	return seconds(now.Sub(s.coord.BloomedAt()))
}

func seconds(d time.Duration) float32 {
	if d < 0 {
		return 0
	}
	return float32(d.Seconds())
}
