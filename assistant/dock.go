package assistant

import (
	"context"

	"github.com/tailored-agentic-units/assistant/panel"
)

// Dock is the docked side panel: an Assistant on SurfacePanel whose
// visibility is driven by a panel state machine. The conversation persists
// across any number of toggles.
type Dock struct {
	*Assistant
	panel *panel.Panel
}

// NewDock creates a hidden Dock displayed by host.
func NewDock(ctx context.Context, cfg *Config, host panel.Host, opts ...Option) (*Dock, error) {
	a, err := New(ctx, cfg, SurfacePanel, opts...)
	if err != nil {
		return nil, err
	}

	return &Dock{
		Assistant: a,
		panel:     panel.New(host, panel.WithObserver(a.observer)),
	}, nil
}

// Toggle shows a hidden panel or hides a visible one and returns the new
// visibility.
func (d *Dock) Toggle() panel.Visibility {
	return d.panel.Toggle()
}

// Visibility returns the panel's current visibility.
func (d *Dock) Visibility() panel.Visibility {
	return d.panel.State()
}

// Show slides the panel in if it is hidden.
func (d *Dock) Show() panel.Visibility {
	return d.panel.Show()
}

// Hide slides the panel out if it is visible. The panel stays attached.
func (d *Dock) Hide() panel.Visibility {
	return d.panel.Hide()
}
