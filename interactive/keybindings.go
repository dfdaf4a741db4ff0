package interactive

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds all the key bindings for the menu TUI
type KeyMap struct {
	Quit key.Binding
	Help key.Binding

	// Navigation (vim-style)
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding

	// Selection
	Select key.Binding
	Back   key.Binding
	Digit  key.Binding
	Clear  key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "Q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "bottom"),
		),

		Select: key.NewBinding(
			key.WithKeys("enter", "l", "right"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "B", "esc", "h", "left"),
			key.WithHelp("b/esc", "back"),
		),
		Digit: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("0-9", "choose"),
		),
		Clear: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "clear"),
		),
	}
}

// ShortHelp lists bindings for the bottom menu bar.
func (it KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{it.Digit, it.Select, it.Back, it.Quit, it.Help}
}

func (it KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{it.Up, it.Down, it.Top, it.Bottom},
		{it.Digit, it.Clear, it.Select},
		{it.Back, it.Quit, it.Help},
	}
}

// keys is the global key map instance
var keys = DefaultKeyMap()
