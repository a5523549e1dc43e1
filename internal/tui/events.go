package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/doin-client/internal/service"
	"github.com/MKhiriev/doin-client/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// EventListModel pages through a listing of events. The home screen and
// the discover screen are two instances with different pagers.
type EventListModel struct {
	ctx      context.Context
	title    string
	route    string
	newPager func() *service.Pager[models.Event]
	upcoming func(context.Context) ([]models.Event, error)

	pager   *service.Pager[models.Event]
	items   []models.Event
	soon    []models.Event
	idx     int
	hasMore bool
	loading bool
	errMsg  string
}

// NewFeedModel is the home screen: the events visible to the user plus the
// upcoming ones.
func NewFeedModel(ctx context.Context, events service.EventService) *EventListModel {
	return &EventListModel{
		ctx:      ctx,
		title:    "FEED",
		route:    routeHome,
		newPager: events.Feed,
		upcoming: events.Upcoming,
	}
}

// NewDiscoverModel lists public events.
func NewDiscoverModel(ctx context.Context, events service.EventService) *EventListModel {
	return &EventListModel{
		ctx:      ctx,
		title:    "DISCOVER",
		route:    routeDiscover,
		newPager: events.Discover,
	}
}

// Init starts the listing from its first page.
func (m *EventListModel) Init() tea.Cmd {
	m.pager = m.newPager()
	m.items, m.soon = nil, nil
	m.idx = 0
	m.errMsg = ""
	m.loading = true

	cmds := []tea.Cmd{m.cmdLoadMore()}
	if m.upcoming != nil {
		cmds = append(cmds, m.cmdUpcoming())
	}
	return tea.Batch(cmds...)
}

func (m *EventListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventsLoadedMsg:
		if msg.source != m.pager {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.errMsg = errorText(msg.err)
			return m, reauthenticate(msg.err)
		}
		m.errMsg = ""
		m.items = append(m.items, msg.items...)
		m.hasMore = msg.hasMore
		m.idx = clampIndex(m.idx, len(m.items))
		return m, nil
	case upcomingLoadedMsg:
		if msg.err == nil {
			m.soon = msg.items
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if cmd, ok := sectionKey(keyMsg); ok {
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.more):
		if m.loading || !m.hasMore {
			return m, nil
		}
		m.loading = true
		return m, m.cmdLoadMore()
	case key.Matches(keyMsg, keys.refresh):
		return m, m.Init()
	case key.Matches(keyMsg, keys.enter):
		if len(m.items) == 0 {
			return m, nil
		}
		return m, navigate(routeEvent, OpenEvent{ID: m.items[m.idx].ID, Back: m.route})
	}

	return m, nil
}

func (m *EventListModel) View() string {
	var b strings.Builder

	if len(m.soon) > 0 {
		b.WriteString(fmt.Sprintf("Upcoming: %d event(s), next at %s\n\n", len(m.soon), valueOrDash(m.soon[0].Location)))
	}

	if len(m.items) == 0 && !m.loading {
		b.WriteString("No events yet\n")
	}
	for i, e := range m.items {
		line := cursor(i == m.idx) + " " + eventLine(e)
		if i == m.idx {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	switch {
	case m.loading:
		b.WriteString("\nLoading...\n")
	case m.hasMore:
		b.WriteString("\n[m: load more]\n")
	}
	renderMessages(&b, "", m.errMsg)

	return renderPage(m.title, strings.TrimRight(b.String(), "\n"), "enter: open │ m: more │ r: refresh │ "+sectionHotKeys)
}

func (m *EventListModel) cmdLoadMore() tea.Cmd {
	ctx := m.ctx
	pager := m.pager

	return func() tea.Msg {
		items, err := pager.LoadMore(ctx)
		return eventsLoadedMsg{source: pager, items: items, hasMore: pager.HasMore(), err: err}
	}
}

func (m *EventListModel) cmdUpcoming() tea.Cmd {
	ctx := m.ctx
	upcoming := m.upcoming

	return func() tea.Msg {
		items, err := upcoming(ctx)
		return upcomingLoadedMsg{items: items, err: err}
	}
}
