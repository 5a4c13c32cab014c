package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Focus          key.Binding
	Submit         key.Binding
	Cancel         key.Binding
	Up             key.Binding
	Down           key.Binding
	Toggle         key.Binding
	Edit           key.Binding
	Delete         key.Binding
	CyclePriority  key.Binding
	High           key.Binding
	Medium         key.Binding
	Low            key.Binding
	CycleFilter    key.Binding
	FilterAll      key.Binding
	FilterActive   key.Binding
	FilterDone     key.Binding
	ClearCompleted key.Binding
	Theme          key.Binding
	Top            key.Binding
	Help           key.Binding
	Quit           key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Focus: key.NewBinding(
			key.WithKeys("i", "a"),
			key.WithHelp("i/a", "new task"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "add/save"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "space", "x"),
			key.WithHelp("space/x", "toggle"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		CyclePriority: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "cycle priority"),
		),
		High: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "high"),
		),
		Medium: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "medium"),
		),
		Low: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "low"),
		),
		CycleFilter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "next filter"),
		),
		FilterAll: key.NewBinding(
			key.WithKeys("A"),
			key.WithHelp("A", "all"),
		),
		FilterActive: key.NewBinding(
			key.WithKeys("V"),
			key.WithHelp("V", "active"),
		),
		FilterDone: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "completed"),
		),
		ClearCompleted: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear completed"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.Toggle, k.Edit, k.Delete, k.CycleFilter, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Focus, k.Submit, k.Cancel, k.Up, k.Down},
		{k.Toggle, k.Edit, k.Delete, k.CyclePriority, k.High, k.Medium, k.Low},
		{k.CycleFilter, k.FilterAll, k.FilterActive, k.FilterDone, k.ClearCompleted},
		{k.Theme, k.Top, k.Help, k.Quit},
	}
}
