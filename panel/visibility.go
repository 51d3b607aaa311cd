// Package panel implements the show/hide state machine of the docked
// assistant panel.
//
// The panel starts hidden. Showing it attaches it to the host surface on
// first use and slides it into view; hiding only slides it out of view. The
// panel is never detached, so its conversation survives any number of
// toggles.
package panel

// Visibility is the display state of the docked panel.
type Visibility int

const (
	Hidden Visibility = iota
	Visible
)

func (v Visibility) String() string {
	switch v {
	case Hidden:
		return "hidden"
	case Visible:
		return "visible"
	default:
		return "unknown"
	}
}

// Toggle returns the state that follows v.
func Toggle(v Visibility) Visibility {
	if v == Visible {
		return Hidden
	}
	return Visible
}
