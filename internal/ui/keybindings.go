package ui

import "github.com/charmbracelet/bubbles/key"

// --- Key Map ---

type keyMap struct {
	Search    key.Binding
	Up        key.Binding
	Down      key.Binding
	PrevPage  key.Binding
	NextPage  key.Binding
	Select    key.Binding
	Back      key.Binding
	Reload    key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/↓", "Move"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("left", "pgup", "h"),
			key.WithHelp("←/→", "Page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("right", "pgdown", "l"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Details"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Back"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Reload"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "Quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

// listBindings returns the bindings shown in the status bar.
func (k keyMap) listBindings(searching, detailOpen bool) []key.Binding {
	if searching {
		done := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter/esc", "Done"))
		return []key.Binding{done}
	}
	bindings := []key.Binding{k.Search, k.Up, k.PrevPage, k.Select}
	if detailOpen {
		bindings = append(bindings, k.Back)
	}
	return append(bindings, k.Reload, k.Quit)
}
