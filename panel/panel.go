package panel

import (
	"context"
	"sync"

	"github.com/tailored-agentic-units/assistant/observability"
)

// EventToggle is emitted after every visibility transition.
const EventToggle observability.EventType = "panel.toggle"

// Host is the surface that displays the panel. Calls are made while the
// panel holds its lock and must not call back into the Panel.
type Host interface {
	// EnsureAttached adds the panel to the surface if it is not already
	// present. Repeated calls must be harmless.
	EnsureAttached()
	// SlideIn moves the panel into view.
	SlideIn()
	// SlideOut moves the panel out of view without detaching it.
	SlideOut()
}

// Option configures a Panel.
type Option func(*Panel)

// WithObserver sets the observer that receives toggle events.
func WithObserver(o observability.Observer) Option {
	return func(p *Panel) { p.observer = o }
}

// Panel drives a Host through visibility transitions. It is safe for
// concurrent use.
type Panel struct {
	host     Host
	observer observability.Observer
	state    Visibility
	mu       sync.Mutex
}

// New creates a hidden Panel for host.
func New(host Host, opts ...Option) *Panel {
	p := &Panel{
		host:     host,
		observer: observability.NoOpObserver{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Toggle flips the panel's visibility and returns the new state.
func (p *Panel) Toggle() Visibility {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.toggle()
}

// Show makes the panel visible if it is hidden.
func (p *Panel) Show() Visibility {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == Visible {
		return p.state
	}
	return p.toggle()
}

// Hide slides the panel out if it is visible.
func (p *Panel) Hide() Visibility {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == Hidden {
		return p.state
	}
	return p.toggle()
}

// State returns the current visibility.
func (p *Panel) State() Visibility {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Panel) toggle() Visibility {
	from := p.state
	p.state = Toggle(from)

	if p.state == Visible {
		p.host.EnsureAttached()
		p.host.SlideIn()
	} else {
		p.host.SlideOut()
	}

	p.observer.OnEvent(context.Background(), observability.NewEvent(
		EventToggle,
		observability.LevelVerbose,
		"panel.Toggle",
		map[string]any{
			"from": from.String(),
			"to":   p.state.String(),
		},
	))

	return p.state
}
