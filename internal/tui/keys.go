package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	PrevRange key.Binding
	NextRange key.Binding
	Copy      key.Binding
	Quit      key.Binding
	ChartUp   key.Binding
	ChartDn   key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+k"),
		key.WithHelp("up/C-k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+j"),
		key.WithHelp("dn/C-j", "down"),
	),
	PrevRange: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("left", "previous range"),
	),
	NextRange: key.NewBinding(
		key.WithKeys("right", "l", "tab"),
		key.WithHelp("right", "next range"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy chart"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "q", "ctrl+c"),
		key.WithHelp("esc", "quit"),
	),
	ChartUp: key.NewBinding(
		key.WithKeys("ctrl+u"),
		key.WithHelp("C-u", "chart up"),
	),
	ChartDn: key.NewBinding(
		key.WithKeys("ctrl+d"),
		key.WithHelp("C-d", "chart down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "chart pgup"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdn", "chart pgdn"),
	),
}
