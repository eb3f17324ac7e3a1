package app

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/blossom/internal/audio"
	"github.com/abhisek/blossom/internal/bloom"
	"github.com/abhisek/blossom/internal/config"
	"github.com/abhisek/blossom/internal/evasion"
	"github.com/abhisek/blossom/internal/phase"
	"github.com/abhisek/blossom/internal/router"
	"github.com/abhisek/blossom/internal/screen"
	"github.com/abhisek/blossom/internal/screens/greeting"
	"github.com/abhisek/blossom/internal/ui/layout"
)

// Options holds the dependencies for the application.
type Options struct {
	Config config.Config
	Player audio.Player
	Logger *slog.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel with the greeting screen.
func newAppModel(opts Options) (AppModel, error) {
	since, err := opts.Config.SinceTime()
	if err != nil {
		return AppModel{}, err
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	seed := opts.Config.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	opts.Logger.Info("starting greeting", "since", since.Format(config.DateLayout), "seed", seed)

	rng := rand.New(rand.NewPCG(seed, seed>>1|1))
	coord := phase.New(phase.Options{
		Evader:        evasion.New(rng),
		Particles:     bloom.NewGenerator(rng),
		ParticleCount: opts.Config.Bloom.ParticleCount,
		GrowDelay:     opts.Config.Bloom.GrowDelay,
	})

	g := greeting.New(greeting.Options{
		Config:      opts.Config,
		Since:       since,
		Coordinator: coord,
		Player:      opts.Player,
		Logger:      opts.Logger,
		Now:         time.Now,
	})
	return AppModel{router: router.New(g)}, nil
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cmd := m.router.Update(layout.ContentSizeMsg{
			Width:  msg.Width,
			Height: layout.ContentHeight(msg.Height),
		})
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.router.Close()
			return m, tea.Quit
		}

	// Screens see mouse positions relative to their own content area.
	case tea.MouseClickMsg:
		mouse := msg.Mouse()
		mouse.Y -= layout.HeaderHeight
		return m, m.router.Update(tea.MouseClickMsg(mouse))

	case tea.MouseMotionMsg:
		mouse := msg.Mouse()
		mouse.Y -= layout.HeaderHeight
		return m, m.router.Update(tea.MouseMotionMsg(mouse))
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.MouseMode = tea.MouseModeAllMotion
	v.SetContent(m.render())
	return v
}

// render draws the header, the active screen and the footer.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title, status := "", ""
	footerHints := []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
		if hp, ok := active.(screen.KeyHintProvider); ok {
			footerHints = hp.KeyHints()
		}
	}

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	model, err := newAppModel(opts)
	if err != nil {
		return err
	}
	defer model.router.Close()

	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
