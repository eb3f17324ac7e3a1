package router

import (
	"github.com/abhisek/blossom/internal/screen"

	tea "charm.land/bubbletea/v2"
)

// Router owns the active screen and tears it down on Close.
type Router struct {
	active screen.Screen
}

// New creates a Router showing the given screen.
func New(initial screen.Screen) *Router {
	return &Router{active: initial}
}

// Close unmounts the active screen. The router is empty afterwards.
func (r *Router) Close() {
	if u, ok := r.active.(screen.Unmounter); ok {
		u.Unmount()
	}
	r.active = nil
}

// Active returns the screen being shown, or nil after Close.
func (r *Router) Active() screen.Screen {
	return r.active
}

// Update forwards a message to the active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	if r.active == nil {
		return nil
	}
	updated, cmd := r.active.Update(msg)
	r.active = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	if r.active == nil {
		return ""
	}
	return r.active.View(width, height)
}
