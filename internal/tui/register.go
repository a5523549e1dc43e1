package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/doin-client/internal/service"
	"github.com/MKhiriev/doin-client/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// RegisterModel is the sign-up screen. The form is validated by the session
// service before anything is sent; on success the user returns to the menu
// with a [RegisterSuccessNotice].
type RegisterModel struct {
	ctx     context.Context
	session service.SessionService

	form       form
	submitting bool
	errMsg     string
}

func NewRegisterModel(ctx context.Context, session service.SessionService) *RegisterModel {
	return &RegisterModel{
		ctx:     ctx,
		session: session,
		form: newForm(
			formField{label: "Username", charLimit: 64},
			formField{label: "Password", secret: true},
			formField{label: "Repeat password", secret: true},
			formField{label: "Security question"},
			formField{label: "Answer"},
		),
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(formResult); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = errorText(result.err)
			return m, nil
		}

		m.errMsg = ""
		m.form.reset()
		return m, navigate(routeMenu, RegisterSuccessNotice{Username: result.username})
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.errMsg = ""
			return m, navigate(routeMenu, nil)
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(models.RegistrationData{
				Username:         m.form.value(0),
				Password:         m.form.rawValue(1),
				ConfirmPassword:  m.form.rawValue(2),
				SecurityQuestion: m.form.value(3),
				SecurityAnswer:   m.form.value(4),
			})
		}
	}

	return m, m.form.update(msg)
}

func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.view())

	if m.submitting {
		b.WriteString("\n[Signing up...]\n")
	} else {
		b.WriteString("\n[Sign up]\n")
	}
	renderMessages(&b, "", m.errMsg)

	return renderPage("SIGN UP", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *RegisterModel) cmdRegister(data models.RegistrationData) tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		return formResult{username: data.Username, err: session.Register(ctx, data)}
	}
}
