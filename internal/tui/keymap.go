package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the visualizer.
type KeyMap struct {
	Toggle     key.Binding
	Cancel     key.Binding
	Reset      key.Binding
	NextStyle  key.Binding
	PrevStyle  key.Binding
	HeightMode key.Binding
	LayoutMode key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "start/stop recording"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "cancel recording"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset waveform"),
		),
		NextStyle: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next style"),
		),
		PrevStyle: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous style"),
		),
		HeightMode: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "cycle height mode"),
		),
		LayoutMode: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "cycle layout"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the short help bindings.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.NextStyle, k.HeightMode, k.LayoutMode, k.Quit}
}

// FullHelp returns the full help bindings.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Cancel, k.Reset},
		{k.NextStyle, k.PrevStyle, k.HeightMode, k.LayoutMode, k.Quit},
	}
}
