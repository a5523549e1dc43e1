// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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

// LoginModel is the Bubble Tea model for the login screen. It renders the
// username and password inputs and dispatches an async login on enter. On
// success it navigates to the home screen.
type LoginModel struct {
	ctx     context.Context
	session service.SessionService

	form       form
	submitting bool
	errMsg     string
}

func NewLoginModel(ctx context.Context, session service.SessionService) *LoginModel {
	return &LoginModel{
		ctx:     ctx,
		session: session,
		form: newForm(
			formField{label: "Username", charLimit: 64},
			formField{label: "Password", secret: true, charLimit: 256},
		),
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - loginResult: clears submitting state; on error, populates errMsg.
//   - esc: navigates back to the menu.
//   - enter: dispatches the async login command.
//
// All other messages go to the form.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(loginResult); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = errorText(result.err)
			return m, nil
		}
		m.errMsg = ""
		m.form.reset()
		return m, navigate(routeHome, nil)
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
			return m, m.cmdLogin(models.Credentials{
				Username: m.form.value(0),
				Password: m.form.rawValue(1),
			})
		}
	}

	return m, m.form.update(msg)
}

func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.view())

	if m.submitting {
		b.WriteString("\n[Signing in...]\n")
	} else {
		b.WriteString("\n[Sign in]\n")
	}
	renderMessages(&b, "", m.errMsg)

	return renderPage("SIGN IN", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *LoginModel) cmdLogin(credentials models.Credentials) tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		profile, err := session.Login(ctx, credentials)
		return loginResult{profile: profile, err: err}
	}
}
