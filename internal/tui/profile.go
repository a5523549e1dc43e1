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

type avatarLoadedMsg struct {
	size int
	err  error
}

// ProfileModel shows the signed-in user, their events and lets them change
// the avatar or sign out.
type ProfileModel struct {
	ctx      context.Context
	session  service.SessionService
	profiles service.ProfileService
	events   service.EventService

	pager      *service.Pager[models.Event]
	items      []models.Event
	hasMore    bool
	avatarSize int

	pathInput textinput.Model
	picking   bool
	uploading bool
	percent   int

	status string
	errMsg string
}

func NewProfileModel(ctx context.Context, session service.SessionService, profiles service.ProfileService, events service.EventService) *ProfileModel {
	in := textinput.New()
	in.Placeholder = "/path/to/avatar.png"
	in.Width = 50

	return &ProfileModel{
		ctx:       ctx,
		session:   session,
		profiles:  profiles,
		events:    events,
		pathInput: in,
	}
}

func (m *ProfileModel) Init() tea.Cmd {
	user := m.session.CurrentUser()
	if user == nil {
		return nil
	}

	m.pager = m.events.UserEvents(user.ID)
	m.items, m.hasMore = nil, false
	m.avatarSize = 0
	m.status, m.errMsg = "", ""

	return tea.Batch(m.cmdLoadMore(), m.cmdAvatar(user))
}

func (m *ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventsLoadedMsg:
		if msg.source != m.pager {
			return m, nil
		}
		if msg.err != nil {
			m.errMsg = errorText(msg.err)
			return m, reauthenticate(msg.err)
		}
		m.items = append(m.items, msg.items...)
		m.hasMore = msg.hasMore
		return m, nil
	case avatarLoadedMsg:
		if msg.err == nil {
			m.avatarSize = msg.size
		}
		return m, nil
	case uploadEventMsg:
		return m.updateUpload(msg)
	case logoutDoneMsg:
		if msg.err != nil {
			m.errMsg = errorText(msg.err)
		}
		return m, navigate(routeMenu, nil)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.picking {
		return m.updatePicking(keyMsg)
	}
	if cmd, ok := sectionKey(keyMsg); ok {
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.more):
		if m.hasMore {
			return m, m.cmdLoadMore()
		}
	case key.Matches(keyMsg, keys.upload):
		if m.uploading {
			return m, nil
		}
		m.picking = true
		m.pathInput.SetValue("")
		return m, m.pathInput.Focus()
	case key.Matches(keyMsg, keys.logout):
		return m, m.cmdLogout()
	}

	return m, nil
}

func (m *ProfileModel) updatePicking(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.picking = false
		m.pathInput.Blur()
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		m.picking = false
		m.pathInput.Blur()
		m.uploading, m.percent = true, 0
		m.status, m.errMsg = "", ""

		ctx, profiles := m.ctx, m.profiles
		return m, startUpload(m.pathInput.Value(), func(file models.FileUpload, progress func(models.UploadProgress)) error {
			_, err := profiles.UploadProfileImage(ctx, file, progress)
			return err
		})
	}

	var cmd tea.Cmd
	m.pathInput, cmd = m.pathInput.Update(keyMsg)
	return m, cmd
}

func (m *ProfileModel) updateUpload(msg uploadEventMsg) (tea.Model, tea.Cmd) {
	if !msg.done {
		if msg.progress != nil {
			m.percent = msg.progress.Percent()
		}
		return m, waitUpload(msg.next)
	}

	m.uploading = false
	if msg.err != nil {
		m.errMsg = errorText(msg.err)
		return m, reauthenticate(msg.err)
	}
	m.status = "profile picture updated"

	if user := m.session.CurrentUser(); user != nil {
		return m, m.cmdAvatar(user)
	}
	return m, nil
}

func (m *ProfileModel) View() string {
	var b strings.Builder

	user := m.session.CurrentUser()
	if user == nil {
		b.WriteString("Not signed in\n")
	} else {
		avatar := "-"
		if user.ProfilePicture != nil {
			avatar = fmt.Sprintf("#%d", user.ProfilePicture.ID)
			if m.avatarSize > 0 {
				avatar += fmt.Sprintf(" (%d bytes)", m.avatarSize)
			}
		}
		b.WriteString(fmt.Sprintf("Username │ %s\n", user.Username))
		b.WriteString(fmt.Sprintf("ID       │ %d\n", user.ID))
		b.WriteString(fmt.Sprintf("Avatar   │ %s\n", avatar))
	}

	b.WriteString("\nMy events:\n")
	if len(m.items) == 0 {
		b.WriteString("-\n")
	}
	for _, e := range m.items {
		b.WriteString("  ")
		b.WriteString(eventLine(e))
		b.WriteString("\n")
	}
	if m.hasMore {
		b.WriteString("[m: load more]\n")
	}

	if m.picking {
		b.WriteString("\nImage file: [")
		b.WriteString(m.pathInput.View())
		b.WriteString("]\n")
	}
	if m.uploading {
		b.WriteString(fmt.Sprintf("\nUploading... %d%%\n", m.percent))
	}
	renderMessages(&b, m.status, m.errMsg)

	return renderPage("PROFILE", strings.TrimRight(b.String(), "\n"), "u: change picture │ m: more │ L: sign out │ "+sectionHotKeys)
}

func (m *ProfileModel) cmdLoadMore() tea.Cmd {
	ctx, pager := m.ctx, m.pager

	return func() tea.Msg {
		items, err := pager.LoadMore(ctx)
		return eventsLoadedMsg{source: pager, items: items, hasMore: pager.HasMore(), err: err}
	}
}

func (m *ProfileModel) cmdAvatar(user *models.UserProfile) tea.Cmd {
	if user.ProfilePicture == nil {
		return nil
	}
	ctx, profiles, id := m.ctx, m.profiles, user.ProfilePicture.ID

	return func() tea.Msg {
		data, err := profiles.Image(ctx, id)
		return avatarLoadedMsg{size: len(data), err: err}
	}
}

func (m *ProfileModel) cmdLogout() tea.Cmd {
	ctx, session := m.ctx, m.session

	return func() tea.Msg {
		return logoutDoneMsg{err: session.Logout(ctx)}
	}
}
