package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Summarize     key.Binding
	Copy          key.Binding
	ClearInput    key.Binding
	ClearOutput   key.Binding
	ToggleHistory key.Binding
	SwitchFocus   key.Binding
	Up            key.Binding
	Down          key.Binding
	Reuse         key.Binding
	Delete        key.Binding
	Logout        key.Binding
	Quit          key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Summarize:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "summarize")),
		Copy:          key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy summary")),
		ClearInput:    key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear input")),
		ClearOutput:   key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "clear summary")),
		ToggleHistory: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "history")),
		SwitchFocus:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus history")),
		Up:            key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous")),
		Down:          key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next")),
		Reuse:         key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "reuse")),
		Delete:        key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		Logout:        key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "log out")),
		Quit:          key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Summarize, k.Copy, k.ToggleHistory, k.Logout, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Summarize, k.Copy, k.ClearInput, k.ClearOutput},
		{k.ToggleHistory, k.SwitchFocus, k.Up, k.Down, k.Reuse, k.Delete},
		{k.Logout, k.Quit},
	}
}
