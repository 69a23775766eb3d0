package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Start      key.Binding
	Back       key.Binding
	Quit       key.Binding
	NextField  key.Binding
	PrevField  key.Binding
	Generate   key.Binding
	CopyPost   key.Binding
	CopyThread key.Binding
	CopyScript key.Binding
	Dismiss    key.Binding
}

var keys = keyMap{
	Start:      key.NewBinding(key.WithKeys("enter", "g"), key.WithHelp("enter", "get started")),
	Back:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Quit:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	NextField:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
	PrevField:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
	Generate:   key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "generate")),
	CopyPost:   key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "copy post")),
	CopyThread: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "copy thread")),
	CopyScript: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "copy script")),
	Dismiss:    key.NewBinding(key.WithKeys("enter", "esc"), key.WithHelp("enter", "dismiss")),
}

func (k keyMap) dashboardHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Generate, k.CopyPost, k.CopyThread, k.CopyScript, k.Back, k.Quit}
}
