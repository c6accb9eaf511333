package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up         key.Binding
	down       key.Binding
	enter      key.Binding
	esc        key.Binding
	tab        key.Binding
	backtab    key.Binding
	submit     key.Binding
	test       key.Binding
	clearKey   key.Binding
	regenerate key.Binding
	export     key.Binding
	menu       key.Binding
}

var keys = keyMap{
	up:         key.NewBinding(key.WithKeys("up", "k")),
	down:       key.NewBinding(key.WithKeys("down", "j")),
	enter:      key.NewBinding(key.WithKeys("enter")),
	esc:        key.NewBinding(key.WithKeys("esc")),
	tab:        key.NewBinding(key.WithKeys("tab", "down")),
	backtab:    key.NewBinding(key.WithKeys("shift+tab", "up")),
	submit:     key.NewBinding(key.WithKeys("ctrl+s")),
	test:       key.NewBinding(key.WithKeys("ctrl+t")),
	clearKey:   key.NewBinding(key.WithKeys("ctrl+x")),
	regenerate: key.NewBinding(key.WithKeys("r")),
	export:     key.NewBinding(key.WithKeys("e")),
	menu:       key.NewBinding(key.WithKeys("m")),
}
