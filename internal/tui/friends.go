package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/doin-client/internal/service"
	"github.com/MKhiriev/doin-client/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type friendTab int

const (
	tabFriends friendTab = iota
	tabRequests
	tabSearch
)

var friendTabTitles = []string{"Friends", "Requests", "Search"}

// FriendsModel lists friends and pending requests and looks users up by
// name. The action keys apply to the selected row of the visible tab.
type FriendsModel struct {
	ctx     context.Context
	friends service.FriendService

	tab     friendTab
	lists   [3][]models.Friendship
	idx     int
	search  textinput.Model
	typing  bool
	loading bool

	status string
	errMsg string
}

func NewFriendsModel(ctx context.Context, friends service.FriendService) *FriendsModel {
	in := textinput.New()
	in.Placeholder = "username"
	in.CharLimit = 64
	in.Width = 30

	return &FriendsModel{ctx: ctx, friends: friends, search: in}
}

func (m *FriendsModel) Init() tea.Cmd {
	m.status, m.errMsg = "", ""
	m.loading = true
	return m.cmdLoad()
}

func (m *FriendsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case friendsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = errorText(msg.err)
			return m, reauthenticate(msg.err)
		}
		m.lists[tabFriends] = msg.friends
		m.lists[tabRequests] = msg.requests
		m.idx = clampIndex(m.idx, len(m.lists[m.tab]))
		return m, nil
	case lookupDoneMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = errorText(msg.err)
			return m, reauthenticate(msg.err)
		}
		m.lists[tabSearch] = msg.results
		m.idx = 0
		if len(msg.results) == 0 {
			m.status = "nobody found"
		}
		return m, nil
	case actionDoneMsg:
		if msg.err != nil {
			m.errMsg = errorText(msg.err)
			return m, reauthenticate(msg.err)
		}
		m.status, m.errMsg = msg.status, ""
		m.loading = true
		return m, m.cmdLoad()
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.typing {
		return m.updateTyping(keyMsg)
	}
	if cmd, ok := sectionKey(keyMsg); ok {
		return m, cmd
	}

	rows := m.lists[m.tab]
	switch {
	case key.Matches(keyMsg, keys.tab):
		m.tab = (m.tab + 1) % 3
		m.idx = 0
	case key.Matches(keyMsg, keys.backtab):
		m.tab = (m.tab + 2) % 3
		m.idx = 0
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(rows)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.refresh):
		return m, m.Init()
	case key.Matches(keyMsg, keys.search):
		m.tab = tabSearch
		m.typing = true
		m.search.SetValue("")
		return m, m.search.Focus()
	case key.Matches(keyMsg, keys.add):
		if row, ok := m.selected(); ok && row.Status == models.FriendshipNotAdded {
			return m, m.cmdAction("request sent to "+row.Username, m.friends.Add, row.Username)
		}
	case key.Matches(keyMsg, keys.confirm):
		if row, ok := m.selected(); ok && m.tab == tabRequests {
			return m, m.cmdAction(row.Username+" is now your friend", m.friends.Confirm, row.Username)
		}
	case key.Matches(keyMsg, keys.remove):
		if row, ok := m.selected(); ok && row.Status != models.FriendshipNotAdded {
			return m, m.cmdAction(row.Username+" removed", m.friends.Remove, row.Username)
		}
	}

	return m, nil
}

func (m *FriendsModel) updateTyping(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.typing = false
		m.search.Blur()
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		m.typing = false
		m.search.Blur()
		m.status, m.errMsg = "", ""
		m.loading = true
		return m, m.cmdLookup(m.search.Value())
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(keyMsg)
	return m, cmd
}

func (m *FriendsModel) selected() (models.Friendship, bool) {
	rows := m.lists[m.tab]
	if m.idx < 0 || m.idx >= len(rows) {
		return models.Friendship{}, false
	}
	return rows[m.idx], true
}

func (m *FriendsModel) View() string {
	var b strings.Builder

	for i, title := range friendTabTitles {
		label := fmt.Sprintf(" %s (%d) ", title, len(m.lists[i]))
		if friendTab(i) == m.tab {
			label = selectedStyle.Render("[" + strings.TrimSpace(label) + "]")
		}
		b.WriteString(label)
	}
	b.WriteString("\n\n")

	if m.tab == tabSearch {
		b.WriteString("Find: [")
		b.WriteString(m.search.View())
		b.WriteString("]\n\n")
	}

	rows := m.lists[m.tab]
	if len(rows) == 0 {
		b.WriteString("-\n")
	}
	for i, row := range rows {
		b.WriteString(fmt.Sprintf("%s %-24s │ %s\n", cursor(i == m.idx), fitText(row.Username, 24), row.Status))
	}

	if m.loading {
		b.WriteString("\nLoading...\n")
	}
	renderMessages(&b, m.status, m.errMsg)

	return renderPage("FRIENDS", strings.TrimRight(b.String(), "\n"),
		"tab: switch │ /: search │ a: add │ y: confirm │ d: remove │ r: refresh │ "+sectionHotKeys)
}

func (m *FriendsModel) cmdLoad() tea.Cmd {
	ctx, friends := m.ctx, m.friends

	return func() tea.Msg {
		list, err := friends.Friends(ctx)
		if err != nil {
			return friendsLoadedMsg{err: err}
		}
		requests, err := friends.Requests(ctx)
		return friendsLoadedMsg{friends: list, requests: requests, err: err}
	}
}

func (m *FriendsModel) cmdLookup(username string) tea.Cmd {
	ctx, friends := m.ctx, m.friends

	return func() tea.Msg {
		results, err := friends.Lookup(ctx, username)
		return lookupDoneMsg{results: results, err: err}
	}
}

func (m *FriendsModel) cmdAction(status string, call func(context.Context, string) error, username string) tea.Cmd {
	ctx := m.ctx

	return func() tea.Msg {
		if err := call(ctx, username); err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{status: status}
	}
}
