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

// ForgotModel resets a password by answering the security question.
type ForgotModel struct {
	ctx     context.Context
	session service.SessionService

	form       form
	submitting bool
	errMsg     string
}

func NewForgotModel(ctx context.Context, session service.SessionService) *ForgotModel {
	return &ForgotModel{
		ctx:     ctx,
		session: session,
		form: newForm(
			formField{label: "Username", charLimit: 64},
			formField{label: "Security question"},
			formField{label: "Answer"},
			formField{label: "New password", secret: true},
			formField{label: "Repeat password", secret: true},
		),
	}
}

func (m *ForgotModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *ForgotModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(formResult); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = errorText(result.err)
			return m, nil
		}

		m.errMsg = ""
		m.form.reset()
		return m, navigate(routeMenu, PasswordResetNotice{Username: result.username})
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
			return m, m.cmdReset(models.ForgotPasswordData{
				Username:               m.form.value(0),
				SecurityQuestionValue:  m.form.value(1),
				SecurityQuestionAnswer: m.form.value(2),
				Password:               m.form.rawValue(3),
				ConfirmPassword:        m.form.rawValue(4),
			})
		}
	}

	return m, m.form.update(msg)
}

func (m *ForgotModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.view())

	if m.submitting {
		b.WriteString("\n[Resetting...]\n")
	} else {
		b.WriteString("\n[Reset password]\n")
	}
	renderMessages(&b, "", m.errMsg)

	return renderPage("FORGOT PASSWORD", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *ForgotModel) cmdReset(data models.ForgotPasswordData) tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		return formResult{username: data.Username, err: session.ForgotPassword(ctx, data)}
	}
}
