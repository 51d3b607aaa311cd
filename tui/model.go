// Package tui hosts the assistant in a terminal: a full-page conversation
// with a docked side panel that slides in and out on demand. The page and
// the panel each run their own assistant and never share messages.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tailored-agentic-units/assistant/assistant"
	"github.com/tailored-agentic-units/assistant/panel"
)

const (
	defaultWidth  = 100
	defaultHeight = 30

	// header, chip row (bordered), shortcut hints, help line
	pageChrome = 6
)

type focus int

const (
	focusPage focus = iota
	focusPanel
)

// Model is the bubbletea model for the assistant terminal UI.
type Model struct {
	page *chatView
	dock *assistant.Dock
	side *dockView

	keys  keyMap
	help  help.Model
	focus focus

	width  int
	height int
}

// New creates the page assistant and the docked panel from configuration.
// Options apply to both.
func New(ctx context.Context, cfg *assistant.Config, opts ...assistant.Option) (*Model, error) {
	page, err := assistant.New(ctx, cfg, assistant.SurfacePage, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create page assistant: %w", err)
	}

	side := newDockView()
	dock, err := assistant.NewDock(ctx, cfg, side, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create panel assistant: %w", err)
	}
	side.dock = dock

	m := &Model{
		page: newChatView(page, "Ask me anything... (Enter to send, Alt+Enter for newline)", defaultWidth, defaultHeight-pageChrome),
		dock: dock,
		side: side,
		keys: defaultKeyMap(),
		help: help.New(),
	}
	m.page.focus()
	m.resize(defaultWidth, defaultHeight)

	return m, nil
}

// Run starts the terminal program and blocks until it exits or ctx is
// cancelled.
func Run(ctx context.Context, cfg *assistant.Config, opts ...assistant.Option) error {
	m, err := New(ctx, cfg, opts...)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal program failed: %w", err)
	}
	return nil
}

func (m *Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case frameMsg:
		if m.side.step() {
			return m, animate()
		}
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	return m, m.focused().update(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	visible := m.dock.Visibility() == panel.Visible

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit

	case key.Matches(msg, m.keys.Toggle):
		return m.togglePanel()

	case key.Matches(msg, m.keys.Close) && visible:
		return m.togglePanel()

	case key.Matches(msg, m.keys.Focus) && visible:
		if m.focus == focusPage {
			return m.setFocus(focusPanel)
		}
		return m.setFocus(focusPage)

	case key.Matches(msg, m.keys.NewChat):
		m.focused().reset()
		return nil

	case key.Matches(msg, m.keys.Send):
		m.focused().submit()
		return nil
	}

	for i, chip := range m.keys.Chips {
		if key.Matches(msg, chip) {
			return m.applySuggestion(i)
		}
	}

	return m.focused().update(msg)
}

func (m *Model) togglePanel() tea.Cmd {
	next := focusPage
	if m.dock.Toggle() == panel.Visible {
		next = focusPanel
	}
	anim := m.side.start()
	m.layout()
	return tea.Batch(m.setFocus(next), anim)
}

// applySuggestion pre-fills the page input with a chip's command. It never
// submits.
func (m *Model) applySuggestion(i int) tea.Cmd {
	suggestions := assistant.Suggestions()
	if i < 0 || i >= len(suggestions) {
		return nil
	}
	m.page.input.SetValue(suggestions[i].Command)
	return m.setFocus(focusPage)
}

func (m *Model) setFocus(f focus) tea.Cmd {
	if f == focusPanel && !m.side.mounted() {
		f = focusPage
	}
	m.focus = f

	m.page.blur()
	if m.side.mounted() {
		m.side.chat.blur()
	}
	return m.focused().focus()
}

func (m *Model) focused() *chatView {
	if m.focus == focusPanel && m.side.mounted() {
		return m.side.chat
	}
	return m.page
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width
	m.side.resize(width, height)
	m.layout()
}

// layout sizes the page around the space the panel occupies.
func (m *Model) layout() {
	m.page.setSize(max(m.width-m.side.occupied(), minWrapWidth), max(m.height-pageChrome, inputHeight+2))
}

func (m *Model) View() string {
	page := lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(),
		m.chipsView(),
		m.page.view(),
		m.shortcutsView(),
		m.help.View(m.keys),
	)

	if side := m.side.view(); side != "" {
		return lipgloss.JoinHorizontal(lipgloss.Top, page, side)
	}
	return page
}

func (m *Model) headerView() string {
	return titleStyle.Render("AI Assistant") + "  " + hintStyle.Render("ctrl+n New Chat")
}

func (m *Model) chipsView() string {
	suggestions := assistant.Suggestions()
	chips := make([]string, len(suggestions))
	for i, s := range suggestions {
		chips[i] = chipStyle.Render(s.Label)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}

func (m *Model) shortcutsView() string {
	return hintStyle.Render("Shortcuts: " + strings.Join(assistant.Shortcuts(), "  "))
}
