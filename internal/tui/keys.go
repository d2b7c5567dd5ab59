package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next      key.Binding
	Prev      key.Binding
	Activate  key.Binding
	Up        key.Binding
	Down      key.Binding
	First     key.Binding
	Last      key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Top       key.Binding
	End       key.Binding
	NavIcon   key.Binding
	Play      key.Binding
	Like      key.Binding
	More      key.Binding
	Card      key.Binding
	Button    key.Binding
	NavFirst  key.Binding
	NavSecond key.Binding
	FAB       key.Binding
	Drawer    key.Binding
	Copy      key.Binding
	Help      key.Binding
	Quit      key.Binding
	Escape    key.Binding
}

var keys = keyMap{
	Next: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next control"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous control"),
	),
	Activate: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "click focused"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "select previous"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "select next"),
	),
	First: key.NewBinding(
		key.WithKeys("home"),
		key.WithHelp("home", "select first"),
	),
	Last: key.NewBinding(
		key.WithKeys("end"),
		key.WithHelp("end", "select last"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup", "ctrl+u"),
		key.WithHelp("pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown", "ctrl+d"),
		key.WithHelp("pgdn", "page down"),
	),
	Top: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "scroll to the top"),
	),
	End: key.NewBinding(
		key.WithKeys("G"),
		key.WithHelp("G", "scroll to the end"),
	),
	NavIcon: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "nav icon"),
	),
	Play: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "play"),
	),
	Like: key.NewBinding(
		key.WithKeys("l"),
		key.WithHelp("l", "like"),
	),
	More: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "more menu"),
	),
	Card: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "card"),
	),
	Button: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "button"),
	),
	NavFirst: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "nav item 1"),
	),
	NavSecond: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "nav item 2"),
	),
	FAB: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "action button"),
	),
	Drawer: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "drawer"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy selected item"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Activate, k.Top, k.End, k.More, k.Drawer, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Activate, k.Escape},
		{k.Up, k.Down, k.First, k.Last, k.PageUp, k.PageDown, k.Top, k.End},
		{k.NavIcon, k.Play, k.Like, k.More, k.Card},
		{k.Button, k.NavFirst, k.NavSecond, k.FAB, k.Drawer},
		{k.Copy, k.Help, k.Quit},
	}
}
