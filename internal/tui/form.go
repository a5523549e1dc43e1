package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type formField struct {
	label    string
	secret   bool
	charLimit int
}

// form is a vertical list of labelled text inputs with tab focus.
type form struct {
	labels []string
	inputs []textinput.Model
	focus  int
}

func newForm(fields ...formField) form {
	f := form{}
	for i, field := range fields {
		in := textinput.New()
		in.Placeholder = strings.ToLower(field.label)
		in.Width = 40
		if field.charLimit > 0 {
			in.CharLimit = field.charLimit
		}
		if field.secret {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		}
		if i == 0 {
			in.Focus()
		}
		f.labels = append(f.labels, field.label)
		f.inputs = append(f.inputs, in)
	}
	return f
}

func (f *form) value(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

// rawValue returns the input as typed; passwords are not trimmed.
func (f *form) rawValue(i int) string {
	return f.inputs[i].Value()
}

// update moves focus on tab/shift+tab and feeds everything else to the
// focused input.
func (f *form) update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			f.move(1)
			return nil
		case key.Matches(keyMsg, keys.backtab):
			f.move(-1)
			return nil
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *form) move(delta int) {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *form) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focus = 0
	f.inputs[0].Focus()
}

func (f *form) view() string {
	width := 0
	for _, l := range f.labels {
		if len(l) > width {
			width = len(l)
		}
	}

	var b strings.Builder
	for i, l := range f.labels {
		b.WriteString(l)
		b.WriteString(strings.Repeat(" ", width-len(l)))
		b.WriteString(" │ [")
		b.WriteString(f.inputs[i].View())
		b.WriteString("]\n")
	}
	return b.String()
}
