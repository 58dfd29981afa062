package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	left      key.Binding
	right     key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	forceQuit key.Binding
	lock      key.Binding
	filter    key.Binding
	newItem   key.Binding
	refresh   key.Binding
	edit      key.Binding
	delete    key.Binding
	copy      key.Binding
	copyUser  key.Binding
	reveal    key.Binding
	generator key.Binding
	generate  key.Binding
	save      key.Binding
	broken    key.Binding
	buildInfo key.Binding
	yes       key.Binding
	no        key.Binding
	numbers   key.Binding
	symbols   key.Binding
	lookalike key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	left:      key.NewBinding(key.WithKeys("left", "-")),
	right:     key.NewBinding(key.WithKeys("right", "+")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab", "down")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab", "up")),
	quit:      key.NewBinding(key.WithKeys("q")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	lock:      key.NewBinding(key.WithKeys("ctrl+l")),
	filter:    key.NewBinding(key.WithKeys("/")),
	newItem:   key.NewBinding(key.WithKeys("n")),
	refresh:   key.NewBinding(key.WithKeys("r")),
	edit:      key.NewBinding(key.WithKeys("e")),
	delete:    key.NewBinding(key.WithKeys("d")),
	copy:      key.NewBinding(key.WithKeys("c")),
	copyUser:  key.NewBinding(key.WithKeys("u")),
	reveal:    key.NewBinding(key.WithKeys(" ")),
	generator: key.NewBinding(key.WithKeys("g")),
	generate:  key.NewBinding(key.WithKeys("ctrl+g")),
	save:      key.NewBinding(key.WithKeys("ctrl+s")),
	broken:    key.NewBinding(key.WithKeys("!")),
	buildInfo: key.NewBinding(key.WithKeys("f1")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n", "esc")),
	numbers:   key.NewBinding(key.WithKeys("1")),
	symbols:   key.NewBinding(key.WithKeys("2")),
	lookalike: key.NewBinding(key.WithKeys("3")),
}
