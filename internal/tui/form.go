package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// form is a vertical list of labelled text inputs.
type form struct {
	title  string
	labels []string
	inputs []textinput.Model
	focus  int
}

type formResult int

const (
	formEditing formResult = iota
	formSubmitted
	formCancelled
)

func newForm(title string, labels, values []string, secret ...int) *form {
	f := &form{title: title, labels: labels}
	for i, label := range labels {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = label
		in.CharLimit = 4000
		if i < len(values) {
			in.SetValue(values[i])
		}
		f.inputs = append(f.inputs, in)
	}
	for _, i := range secret {
		f.inputs[i].EchoMode = textinput.EchoPassword
		f.inputs[i].EchoCharacter = '*'
	}
	f.inputs[0].Focus()
	return f
}

func (f *form) values() []string {
	out := make([]string, len(f.inputs))
	for i, in := range f.inputs {
		out[i] = in.Value()
	}
	return out
}

func (f *form) setFocus(i int) {
	f.inputs[f.focus].Blur()
	f.focus = (i + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

// update handles one key. Enter on the last field or ctrl+s submits.
func (f *form) update(msg tea.KeyMsg) (formResult, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return formCancelled, nil
	case "ctrl+s":
		return formSubmitted, nil
	case "tab", "down":
		f.setFocus(f.focus + 1)
		return formEditing, nil
	case "shift+tab", "up":
		f.setFocus(f.focus - 1)
		return formEditing, nil
	case "enter":
		if f.focus == len(f.inputs)-1 {
			return formSubmitted, nil
		}
		f.setFocus(f.focus + 1)
		return formEditing, nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return formEditing, cmd
}

func (f *form) view() string {
	s := headingStyle.Render(f.title) + "\n\n"
	for i, in := range f.inputs {
		label := dimStyle.Render(f.labels[i])
		if i == f.focus {
			label = selectedStyle.Render("> " + f.labels[i])
		}
		s += label + "\n  " + in.View() + "\n"
	}
	s += "\n" + dimStyle.Render("tab next | enter on last field or ctrl+s save | esc cancel")
	return panelStyle.Render(s)
}
