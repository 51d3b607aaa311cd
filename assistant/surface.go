package assistant

import "github.com/tailored-agentic-units/assistant/catalog"

// Surface identifies where a conversation is presented.
type Surface int

const (
	// SurfacePage is the full-page assistant view.
	SurfacePage Surface = iota
	// SurfacePanel is the docked side panel.
	SurfacePanel
)

func (s Surface) String() string {
	switch s {
	case SurfacePage:
		return "page"
	case SurfacePanel:
		return "panel"
	default:
		return "unknown"
	}
}

// IsValid reports whether s is a defined surface.
func (s Surface) IsValid() bool {
	return s == SurfacePage || s == SurfacePanel
}

// WelcomeKey returns the catalog key of the surface's greeting.
func (s Surface) WelcomeKey() string {
	if s == SurfacePanel {
		return catalog.KeyPanelWelcome
	}
	return catalog.KeyWelcome
}
