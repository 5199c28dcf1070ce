package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists every hotkey of the palette screen
type keyMap struct {
	Generate key.Binding
	Save     key.Binding
	Export   key.Binding
	Copy     key.Binding
	CopyN    key.Binding
	Left     key.Binding
	Right    key.Binding
	Up       key.Binding
	Down     key.Binding
	Restore  key.Binding
	Focus    key.Binding
	Theme    key.Binding
	Seed     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Generate: key.NewBinding(key.WithKeys("g", " "), key.WithHelp("g/space", "generate")),
		Save:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
		Export:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export json")),
		Copy:     key.NewBinding(key.WithKeys("c", "enter"), key.WithHelp("c/enter", "copy color")),
		CopyN:    key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "copy nth color")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev color")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next color")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev saved")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next saved")),
		Restore:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restore saved")),
		Focus:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "palette/saved")),
		Theme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "dark/light")),
		Seed:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "seed")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q/esc", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Generate, k.Save, k.Export, k.Copy, k.Theme, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Generate, k.Seed, k.Save, k.Export},
		{k.Copy, k.CopyN, k.Left, k.Right},
		{k.Focus, k.Up, k.Down, k.Restore},
		{k.Theme, k.Help, k.Quit},
	}
}
