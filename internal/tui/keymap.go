package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the solve viewer.
type KeyMap struct {
	Step    key.Binding
	Auto    key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// Keys is the default KeyMap.
var Keys = KeyMap{
	Step: key.NewBinding(
		key.WithKeys(" ", "n"),
		key.WithHelp("space/n", "next pass"),
	),
	Auto: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "autoplay"),
	),
	Restart: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "restart with a new seed"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
