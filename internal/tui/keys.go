package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit     key.Binding
	Tab1     key.Binding
	Tab2     key.Binding
	Tab3     key.Binding
	NextTab  key.Binding
	PrevTab  key.Binding
	Up       key.Binding
	Down     key.Binding
	Add      key.Binding
	Edit     key.Binding
	Delete   key.Binding
	Toggle   key.Binding
	Theme    key.Binding
	Reset    key.Binding
	Submit   key.Binding
	Cancel   key.Binding
	NextFld  key.Binding
	PrevFld  key.Binding
	CycleFwd key.Binding
	CycleBwd key.Binding
	Yes      key.Binding
	No       key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Tab1:     key.NewBinding(key.WithKeys("1"), key.WithHelp("1-3", "tabs")),
		Tab2:     key.NewBinding(key.WithKeys("2")),
		Tab3:     key.NewBinding(key.WithKeys("3")),
		NextTab:  key.NewBinding(key.WithKeys("right", "l")),
		PrevTab:  key.NewBinding(key.WithKeys("left", "h")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑↓", "navigate")),
		Down:     key.NewBinding(key.WithKeys("down", "j")),
		Add:      key.NewBinding(key.WithKeys("a", "n"), key.WithHelp("a/n", "add")),
		Edit:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Delete:   key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		Toggle:   key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "toggle done")),
		Theme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle theme")),
		Reset:    key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reset database")),
		Submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		NextFld:  key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		PrevFld:  key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
		CycleFwd: key.NewBinding(key.WithKeys("right"), key.WithHelp("←→", "status")),
		CycleBwd: key.NewBinding(key.WithKeys("left")),
		Yes:      key.NewBinding(key.WithKeys("y", "enter"), key.WithHelp("y", "confirm")),
		No:       key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "cancel")),
	}
}
