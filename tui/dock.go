package tui

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"

	"github.com/tailored-agentic-units/assistant/assistant"
)

const (
	fps             = 60
	dockWidthRatio  = 0.4
	minDockWidth    = 32
	settleThreshold = 0.5
)

// frameMsg advances the panel slide animation by one frame.
type frameMsg time.Time

func animate() tea.Cmd {
	return tea.Tick(time.Second/fps, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// dockView is the terminal host of the docked panel. Its chat view is
// created on first attach and kept for the life of the program; hiding only
// slides its width back to zero.
type dockView struct {
	dock   *assistant.Dock
	chat   *chatView
	spring harmonica.Spring

	pos, vel, target float64
	animating        bool

	full   int
	height int
}

func newDockView() *dockView {
	return &dockView{
		spring: harmonica.NewSpring(harmonica.FPS(fps), 6.0, 1.0),
	}
}

func (v *dockView) EnsureAttached() {
	if v.chat != nil {
		return
	}
	v.chat = newChatView(v.dock.Assistant, "Ask the assistant...", v.innerWidth(), v.innerHeight())
}

func (v *dockView) SlideIn() {
	v.target = float64(v.full)
}

func (v *dockView) SlideOut() {
	v.target = 0
}

func (v *dockView) mounted() bool {
	return v.chat != nil
}

// step advances the spring one frame and reports whether the panel is
// still moving.
func (v *dockView) step() bool {
	v.pos, v.vel = v.spring.Update(v.pos, v.vel, v.target)
	if math.Abs(v.pos-v.target) < settleThreshold && math.Abs(v.vel) < settleThreshold {
		v.pos, v.vel = v.target, 0
		v.animating = false
		return false
	}
	return true
}

// start begins the animation unless a frame chain is already running.
func (v *dockView) start() tea.Cmd {
	if v.animating {
		return nil
	}
	v.animating = true
	return animate()
}

func (v *dockView) width() int {
	return int(math.Round(v.pos))
}

// occupied is the width reserved for the panel when laying out the page.
func (v *dockView) occupied() int {
	if v.target > 0 || v.animating {
		return v.full
	}
	return 0
}

func (v *dockView) resize(total, height int) {
	v.full = min(max(int(float64(total)*dockWidthRatio), minDockWidth), total)
	v.height = height

	if v.target > 0 {
		v.target = float64(v.full)
		if !v.animating {
			v.pos = v.target
		}
	}
	if v.chat != nil {
		v.chat.setSize(v.innerWidth(), v.innerHeight())
	}
}

func (v *dockView) innerWidth() int {
	return max(v.full-1, 1)
}

func (v *dockView) innerHeight() int {
	return max(v.height-2, 1)
}

func (v *dockView) view() string {
	w := v.width()
	if !v.mounted() || w <= 0 {
		return ""
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("AI Assistant"),
		"",
		v.chat.view(),
	)
	return panelStyle.
		Width(v.innerWidth()).
		Height(v.height).
		MaxWidth(w).
		Render(content)
}
