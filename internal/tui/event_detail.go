package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/doin-client/internal/service"
	"github.com/MKhiriev/doin-client/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// EventDetailModel shows one event and lets the user join it, copy its
// location and attach images.
type EventDetailModel struct {
	ctx     context.Context
	events  service.EventService
	session service.SessionService

	id    int64
	back  string
	event *models.Event

	pathInput textinput.Model
	picking   bool
	uploading bool
	percent   int

	status string
	errMsg string
}

func NewEventDetailModel(ctx context.Context, events service.EventService, session service.SessionService) *EventDetailModel {
	in := textinput.New()
	in.Placeholder = "/path/to/image.png"
	in.Width = 50

	return &EventDetailModel{
		ctx:       ctx,
		events:    events,
		session:   session,
		back:      routeHome,
		pathInput: in,
	}
}

// Init reloads the event that was opened last.
func (m *EventDetailModel) Init() tea.Cmd {
	if m.id == 0 {
		return nil
	}
	return m.cmdLoad()
}

func (m *EventDetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case OpenEvent:
		m.id = msg.ID
		if msg.Back != "" {
			m.back = msg.Back
		}
		m.event = nil
		m.status, m.errMsg = "", ""
		return m, m.cmdLoad()
	case eventLoadedMsg:
		if msg.err != nil {
			m.errMsg = errorText(msg.err)
			return m, reauthenticate(msg.err)
		}
		event := msg.event
		m.event = &event
		return m, nil
	case actionDoneMsg:
		if msg.err != nil {
			m.errMsg = errorText(msg.err)
			return m, reauthenticate(msg.err)
		}
		m.status, m.errMsg = msg.status, ""
		return m, m.cmdLoad()
	case uploadEventMsg:
		return m.updateUpload(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.picking {
		return m.updatePicking(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		return m, navigate(m.back, nil)
	case key.Matches(keyMsg, keys.refresh):
		return m, m.cmdLoad()
	case key.Matches(keyMsg, keys.join):
		if m.event == nil {
			return m, nil
		}
		if user := m.session.CurrentUser(); user != nil && m.event.HasJoiner(user.ID) {
			m.status = "you already joined this event"
			return m, nil
		}
		return m, m.cmdJoin()
	case key.Matches(keyMsg, keys.copy):
		if m.event == nil || strings.TrimSpace(m.event.Location) == "" {
			m.status = "nothing to copy"
			return m, nil
		}
		if err := clipboard.WriteAll(m.event.Location); err != nil {
			m.errMsg = fmt.Sprintf("copy failed: %v", err)
			return m, nil
		}
		m.status = "location copied"
	case key.Matches(keyMsg, keys.upload):
		if m.uploading || m.event == nil {
			return m, nil
		}
		m.picking = true
		m.pathInput.SetValue("")
		return m, m.pathInput.Focus()
	}

	return m, nil
}

func (m *EventDetailModel) updatePicking(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
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

		ctx, events, id := m.ctx, m.events, m.id
		return m, startUpload(m.pathInput.Value(), func(file models.FileUpload, progress func(models.UploadProgress)) error {
			return events.AddImage(ctx, id, file, progress)
		})
	}

	var cmd tea.Cmd
	m.pathInput, cmd = m.pathInput.Update(keyMsg)
	return m, cmd
}

func (m *EventDetailModel) updateUpload(msg uploadEventMsg) (tea.Model, tea.Cmd) {
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
	m.status = "image uploaded"
	return m, m.cmdLoad()
}

func (m *EventDetailModel) View() string {
	var b strings.Builder

	if m.event == nil {
		b.WriteString("Loading...\n")
	} else {
		e := m.event
		creator := "-"
		if e.Creator != nil {
			creator = e.Creator.Username
		}
		when := "-"
		if !e.Time.IsZero() {
			when = e.Time.Format("2006-01-02 15:04")
		}

		b.WriteString(fmt.Sprintf("Type        │ %s\n", valueOrDash(e.EventType.Name)))
		b.WriteString(fmt.Sprintf("Visibility  │ %s\n", valueOrDash(string(e.Visibility))))
		b.WriteString(fmt.Sprintf("Creator     │ %s\n", creator))
		b.WriteString(fmt.Sprintf("When        │ %s\n", when))
		b.WriteString(fmt.Sprintf("Location    │ %s\n", valueOrDash(e.Location)))
		b.WriteString(fmt.Sprintf("Description │ %s\n", valueOrDash(e.Description)))
		b.WriteString(fmt.Sprintf("Images      │ %d\n", len(e.Images)))

		names := make([]string, 0, len(e.Joiners))
		for _, j := range e.Joiners {
			names = append(names, j.Username)
		}
		b.WriteString(fmt.Sprintf("Joiners     │ %s\n", valueOrDash(strings.Join(names, ", "))))
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

	return renderPage("EVENT", strings.TrimRight(b.String(), "\n"), "esc: back │ J: join │ c: copy location │ u: add image │ r: refresh")
}

func (m *EventDetailModel) cmdLoad() tea.Cmd {
	ctx, events, id := m.ctx, m.events, m.id

	return func() tea.Msg {
		event, err := events.Get(ctx, id)
		return eventLoadedMsg{event: event, err: err}
	}
}

func (m *EventDetailModel) cmdJoin() tea.Cmd {
	ctx, events, id := m.ctx, m.events, m.id

	return func() tea.Msg {
		if err := events.Join(ctx, id); err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{status: "joined"}
	}
}
