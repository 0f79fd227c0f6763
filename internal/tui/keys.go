package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	BigLeft  key.Binding
	BigRight key.Binding
	Min      key.Binding
	Max      key.Binding
	Chart    key.Binding
	Reset    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next")),
	Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "less")),
	Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "more")),
	BigLeft:  key.NewBinding(key.WithKeys("shift+left", "pgdown", "H"), key.WithHelp("pgdn", "much less")),
	BigRight: key.NewBinding(key.WithKeys("shift+right", "pgup", "L"), key.WithHelp("pgup", "much more")),
	Min:      key.NewBinding(key.WithKeys("home", "0"), key.WithHelp("home", "min")),
	Max:      key.NewBinding(key.WithKeys("end", "$"), key.WithHelp("end", "max")),
	Chart:    key.NewBinding(key.WithKeys("tab", "c"), key.WithHelp("tab", "chart")),
	Reset:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// shortHelp lists the bindings shown in the status bar
func (k keyMap) shortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Left, k.Right, k.Chart, k.Reset, k.Help, k.Quit}
}

// fullHelp lists every binding for the help overlay
func (k keyMap) fullHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.BigLeft, k.BigRight, k.Min, k.Max, k.Chart, k.Reset, k.Help, k.Quit}
}
