// Package tui renders the portfolio client in the terminal.
package tui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rpggio/comicfolio/internal/app"
	"github.com/rpggio/comicfolio/internal/chat"
	"github.com/rpggio/comicfolio/internal/dashboard"
	"github.com/rpggio/comicfolio/internal/store"
)

// Deps are the components the terminal client drives.
type Deps struct {
	Controller *app.Controller
	Store      *store.Store
	Router     *dashboard.Router
	Chat       *chat.Session
	Logger     *slog.Logger
}

// Model is the bubbletea model for the whole client.
type Model struct {
	ctx    context.Context
	ctrl   *app.Controller
	store  *store.Store
	router *dashboard.Router
	chat   *chat.Session
	logger *slog.Logger

	spinner spinner.Model
	width   int
	height  int

	status    string
	statusErr bool
	cursor    int

	login    *form
	register bool
	editor   *form
	binding  binding
	contact  *form

	chatOpen  bool
	chatInput textinput.Model
}

func New(ctx context.Context, deps Deps) *Model {
	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(comicYellow)

	in := textinput.New()
	in.Placeholder = "Ask the assistant..."
	in.CharLimit = 4000

	return &Model{
		ctx:       ctx,
		ctrl:      deps.Controller,
		store:     deps.Store,
		router:    deps.Router,
		chat:      deps.Chat,
		logger:    logger,
		spinner:   s,
		chatInput: in,
	}
}

// Init starts the session check and the public load side by side.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.checkSession(),
		m.loadPublic(),
	)
}

func (m *Model) setStatus(text string, err error) {
	if err != nil {
		m.status = describeError(text, err)
		m.statusErr = true
		return
	}
	m.status = text
	m.statusErr = false
}

// Update handles messages and keys.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case sessionCheckedMsg:
		if msg.state.View == app.ViewDashboard {
			return m, m.mountDashboard()
		}
		return m, nil

	case publicLoadedMsg:
		if msg.err != nil {
			m.setStatus("some content failed to load", msg.err)
		}
		return m, nil

	case mountedMsg:
		return m, nil

	case loginDoneMsg:
		if msg.err != nil {
			m.setStatus("login failed", msg.err)
			return m, nil
		}
		m.login = nil
		m.setStatus("welcome back", nil)
		return m, m.mountDashboard()

	case logoutDoneMsg:
		m.closeForms()
		if msg.err != nil {
			m.setStatus("signed out locally", msg.err)
		} else {
			m.setStatus("signed out", nil)
		}
		return m, nil

	case opDoneMsg:
		m.setStatus(msg.label, msg.err)
		if msg.closeEditor {
			m.editor = nil
		}
		m.clampCursor()
		return m, nil

	case contactSentMsg:
		m.setStatus("message sent", msg.err)
		if msg.err == nil {
			m.contact = nil
		}
		return m, nil

	case chatReplyMsg:
		if msg.err != nil {
			m.setStatus("chat", msg.err)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) closeForms() {
	m.login = nil
	m.editor = nil
	m.contact = nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.ctrl.State().Blocked(m.store.Loading()) {
		return m, nil
	}

	if m.chatOpen {
		return m.handleChatKey(msg)
	}
	if m.contact != nil {
		return m.handleContactKey(msg)
	}

	switch m.ctrl.State().View {
	case app.ViewLogin:
		return m.handleLoginKey(msg)
	case app.ViewDashboard:
		return m.handleDashboardKey(msg)
	default:
		return m.handleHomeKey(msg)
	}
}

func (m *Model) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "l":
		if err := m.ctrl.OpenLogin(); err != nil {
			m.setStatus("login", err)
			return m, nil
		}
		m.register = false
		m.login = loginForm(false)
	case "c":
		return m, m.openChat()
	case "m":
		m.contact = newForm("Send a signal", []string{"Codename", "Email", "Message"}, nil)
	}
	return m, nil
}

func loginForm(register bool) *form {
	if register {
		return newForm("Join the league", []string{"Name", "Email", "Password"}, nil, 2)
	}
	return newForm("Secret identity check", []string{"Email", "Password"}, nil, 1)
}

func (m *Model) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.login == nil {
		m.login = loginForm(m.register)
	}
	if msg.String() == "ctrl+r" {
		m.register = !m.register
		m.login = loginForm(m.register)
		return m, nil
	}

	result, cmd := m.login.update(msg)
	switch result {
	case formCancelled:
		m.login = nil
		if err := m.ctrl.Back(); err != nil {
			m.setStatus("back", err)
		}
		return m, nil
	case formSubmitted:
		v := m.login.values()
		if m.register {
			return m, m.registerCmd(v[0], v[1], v[2])
		}
		return m, m.loginCmd(v[0], v[1])
	}
	return m, cmd
}

func (m *Model) handleContactKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	result, cmd := m.contact.update(msg)
	switch result {
	case formCancelled:
		m.contact = nil
		return m, nil
	case formSubmitted:
		v := m.contact.values()
		return m, m.sendContact(v[0], v[1], v[2])
	}
	return m, cmd
}

func (m *Model) openChat() tea.Cmd {
	m.chatOpen = true
	return m.chatInput.Focus()
}

func (m *Model) handleChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.chatOpen = false
		m.chatInput.Blur()
		return m, nil
	case "enter":
		text := m.chatInput.Value()
		m.chatInput.SetValue("")
		return m, m.sendChat(text)
	}
	var cmd tea.Cmd
	m.chatInput, cmd = m.chatInput.Update(msg)
	return m, cmd
}
