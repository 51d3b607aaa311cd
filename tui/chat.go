package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tailored-agentic-units/assistant/assistant"
)

const inputHeight = 3

// chatView presents one assistant conversation: a scrolling transcript over
// a multi-line input.
type chatView struct {
	assistant *assistant.Assistant
	input     textarea.Model
	viewport  viewport.Model
	render    *renderer
	width     int
	height    int
}

func newChatView(a *assistant.Assistant, placeholder string, width, height int) *chatView {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetHeight(inputHeight)
	ta.KeyMap.InsertNewline = key.NewBinding(key.WithKeys("alt+enter"))

	c := &chatView{
		assistant: a,
		input:     ta,
		viewport:  viewport.New(width, max(height-inputHeight, 1)),
	}
	c.setSize(width, height)
	return c
}

func (c *chatView) setSize(width, height int) {
	if c.render != nil && width == c.width && height == c.height {
		return
	}

	c.width, c.height = width, height
	c.input.SetWidth(max(width, minWrapWidth))
	c.viewport.Width = width
	c.viewport.Height = max(height-inputHeight-1, 1)
	c.render = newRenderer(width)
	c.refresh()
}

// refresh re-renders the whole conversation and scrolls to the latest
// message.
func (c *chatView) refresh() {
	c.viewport.SetContent(c.render.conversation(c.assistant.Render()))
	c.viewport.GotoBottom()
}

// submit sends the current input. Blank input is left in place.
func (c *chatView) submit() bool {
	if !c.assistant.Submit(c.input.Value()) {
		return false
	}
	c.input.Reset()
	c.refresh()
	return true
}

func (c *chatView) reset() {
	c.assistant.Reset()
	c.input.Reset()
	c.refresh()
}

func (c *chatView) focus() tea.Cmd {
	return c.input.Focus()
}

func (c *chatView) blur() {
	c.input.Blur()
}

// update routes typing to the input and scrolling to the transcript.
func (c *chatView) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "pgup", "pgdown":
			c.viewport, cmd = c.viewport.Update(msg)
		default:
			c.input, cmd = c.input.Update(msg)
		}
		return cmd
	}

	var cmds []tea.Cmd
	c.input, cmd = c.input.Update(msg)
	cmds = append(cmds, cmd)
	c.viewport, cmd = c.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return tea.Batch(cmds...)
}

func (c *chatView) view() string {
	return lipgloss.JoinVertical(lipgloss.Left, c.viewport.View(), "", c.input.View())
}
