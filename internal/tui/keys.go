package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	quit     key.Binding
	version  key.Binding
	dismiss  key.Binding
	logout   key.Binding
	more     key.Binding
	refresh  key.Binding
	join     key.Binding
	copy     key.Binding
	upload   key.Binding
	search   key.Binding
	add      key.Binding
	confirm  key.Binding
	remove   key.Binding
	feed     key.Binding
	discover key.Binding
	friends  key.Binding
	profile  key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	quit:     key.NewBinding(key.WithKeys("ctrl+c")),
	version:  key.NewBinding(key.WithKeys("v")),
	dismiss:  key.NewBinding(key.WithKeys("ctrl+x")),
	logout:   key.NewBinding(key.WithKeys("L")),
	more:     key.NewBinding(key.WithKeys("m")),
	refresh:  key.NewBinding(key.WithKeys("r")),
	join:     key.NewBinding(key.WithKeys("J")),
	copy:     key.NewBinding(key.WithKeys("c")),
	upload:   key.NewBinding(key.WithKeys("u")),
	search:   key.NewBinding(key.WithKeys("/")),
	add:      key.NewBinding(key.WithKeys("a")),
	confirm:  key.NewBinding(key.WithKeys("y")),
	remove:   key.NewBinding(key.WithKeys("d")),
	feed:     key.NewBinding(key.WithKeys("1")),
	discover: key.NewBinding(key.WithKeys("2")),
	friends:  key.NewBinding(key.WithKeys("3")),
	profile:  key.NewBinding(key.WithKeys("4")),
}

const sectionHotKeys = "1: feed │ 2: discover │ 3: friends │ 4: profile"

// sectionKey switches between the signed-in sections.
func sectionKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	var page string
	switch {
	case key.Matches(msg, keys.feed):
		page = routeHome
	case key.Matches(msg, keys.discover):
		page = routeDiscover
	case key.Matches(msg, keys.friends):
		page = routeFriends
	case key.Matches(msg, keys.profile):
		page = routeProfile
	default:
		return nil, false
	}
	return navigate(page, nil), true
}

func navigate(page string, payload tea.Msg) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page, Payload: payload} }
}
