package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Send    key.Binding
	NewChat key.Binding
	Toggle  key.Binding
	Close   key.Binding
	Focus   key.Binding
	Quit    key.Binding
	Chips   []key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Send: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "send"),
		),
		NewChat: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "new chat"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("ctrl+a"),
			key.WithHelp("ctrl+a", "assistant panel"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close panel"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch focus"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Chips: []key.Binding{
			key.NewBinding(key.WithKeys("alt+1"), key.WithHelp("alt+1", "explain")),
			key.NewBinding(key.WithKeys("alt+2"), key.WithHelp("alt+2", "find bugs")),
			key.NewBinding(key.WithKeys("alt+3"), key.WithHelp("alt+3", "write tests")),
			key.NewBinding(key.WithKeys("alt+4"), key.WithHelp("alt+4", "optimize")),
		},
	}
}

// ShortHelp implements [help.KeyMap].
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Send, k.NewChat, k.Toggle, k.Focus, k.Quit}
}

// FullHelp implements [help.KeyMap].
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Send, k.NewChat, k.Quit},
		{k.Toggle, k.Close, k.Focus},
		k.Chips,
	}
}
