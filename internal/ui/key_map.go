package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up       key.Binding
	down     key.Binding
	toggle   key.Binding
	enter    key.Binding
	nextView key.Binding
	prevView key.Binding
	discover key.Binding
	practice key.Binding
	complete key.Binding
	theme    key.Binding
	reset    key.Binding
	quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		toggle:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		nextView: key.NewBinding(key.WithKeys("tab", "right"), key.WithHelp("tab", "next section")),
		prevView: key.NewBinding(key.WithKeys("shift+tab", "left"), key.WithHelp("shift+tab", "prev section")),
		discover: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "discover artists")),
		practice: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "practice lesson")),
		complete: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "complete lesson")),
		theme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		reset:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset exercises")),
		quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.nextView, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.toggle, k.enter},
		{k.nextView, k.prevView, k.discover},
		{k.practice, k.complete, k.theme, k.reset, k.quit},
	}
}
