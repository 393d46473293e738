package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rpggio/comicfolio/internal/app"
	"github.com/rpggio/comicfolio/internal/chat"
	"github.com/rpggio/comicfolio/internal/client"
	"github.com/rpggio/comicfolio/internal/dashboard"
	"github.com/rpggio/comicfolio/internal/domain/message"
	"github.com/rpggio/comicfolio/internal/store"
)

type sessionCheckedMsg struct{ state app.State }

type publicLoadedMsg struct{ err error }

type mountedMsg struct{}

type loginDoneMsg struct{ err error }

type logoutDoneMsg struct{ err error }

type opDoneMsg struct {
	label       string
	err         error
	closeEditor bool
}

type contactSentMsg struct {
	receipt *message.Receipt
	err     error
}

type chatReplyMsg struct {
	reply chat.Message
	err   error
}

func (m *Model) checkSession() tea.Cmd {
	return func() tea.Msg {
		return sessionCheckedMsg{state: m.ctrl.CheckSession(m.ctx)}
	}
}

func (m *Model) loadPublic() tea.Cmd {
	return func() tea.Msg {
		return publicLoadedMsg{err: m.store.LoadPublic(m.ctx)}
	}
}

func (m *Model) mountDashboard() tea.Cmd {
	return func() tea.Msg {
		m.router.Mount(m.ctx)
		return mountedMsg{}
	}
}

func (m *Model) loginCmd(email, password string) tea.Cmd {
	return func() tea.Msg {
		return loginDoneMsg{err: m.ctrl.Login(m.ctx, email, password)}
	}
}

func (m *Model) registerCmd(name, email, password string) tea.Cmd {
	return func() tea.Msg {
		return loginDoneMsg{err: m.ctrl.Register(m.ctx, name, email, password)}
	}
}

func (m *Model) logoutCmd() tea.Cmd {
	return func() tea.Msg {
		return logoutDoneMsg{err: m.ctrl.Logout(m.ctx)}
	}
}

func (m *Model) saveEditor(b binding) tea.Cmd {
	return func() tea.Msg {
		err := b.save(m.ctx)
		closeEditor := err == nil || errors.Is(err, store.ErrReloadFailed)
		return opDoneMsg{label: "saved", err: err, closeEditor: closeEditor}
	}
}

func (m *Model) deleteSelected() tea.Cmd {
	var del func(ctx context.Context) error
	switch m.router.Tab() {
	case dashboard.TabProjects:
		if item, ok := at(m.store.Projects.List(), m.cursor); ok {
			del = func(ctx context.Context) error { return m.router.DeleteProject(ctx, item.ID) }
		}
	case dashboard.TabExperience:
		if item, ok := at(m.store.Experiences.List(), m.cursor); ok {
			del = func(ctx context.Context) error { return m.router.DeleteExperience(ctx, item.ID) }
		}
	case dashboard.TabAbilities:
		if m.router.Section() == dashboard.SectionGadgets {
			if item, ok := at(m.store.Gadgets.List(), m.cursor); ok {
				del = func(ctx context.Context) error { return m.router.DeleteGadget(ctx, item.ID) }
			}
		} else if item, ok := at(m.store.Skills.List(), m.cursor); ok {
			del = func(ctx context.Context) error { return m.router.DeleteSkill(ctx, item.ID) }
		}
	case dashboard.TabMessages:
		if item, ok := at(m.store.Messages.List(), m.cursor); ok {
			del = func(ctx context.Context) error { return m.router.DeleteMessage(ctx, item.ID) }
		}
	}
	if del == nil {
		return nil
	}
	return func() tea.Msg {
		return opDoneMsg{label: "deleted", err: del(m.ctx)}
	}
}

func (m *Model) markSelectedRead() tea.Cmd {
	if m.router.Tab() != dashboard.TabMessages {
		return nil
	}
	item, ok := at(m.store.Messages.List(), m.cursor)
	if !ok || item.Read {
		return nil
	}
	return func() tea.Msg {
		return opDoneMsg{label: "marked read", err: m.router.MarkRead(m.ctx, item.ID)}
	}
}

func (m *Model) sendContact(codename, email, content string) tea.Cmd {
	return func() tea.Msg {
		receipt, err := m.store.SendMessage(m.ctx, message.CreateRequest{
			Codename: codename,
			Email:    email,
			Content:  content,
		})
		return contactSentMsg{receipt: receipt, err: err}
	}
}

func (m *Model) sendChat(text string) tea.Cmd {
	return func() tea.Msg {
		reply, err := m.chat.Send(m.ctx, text)
		return chatReplyMsg{reply: reply, err: err}
	}
}

// describeError turns an operation failure into a status line.
func describeError(label string, err error) string {
	switch {
	case errors.Is(err, store.ErrNotSupported):
		return label + ": not supported"
	case errors.Is(err, store.ErrReloadFailed):
		return label + ", but the list could not be reloaded"
	case errors.Is(err, client.ErrUnauthorized):
		return label + ": not authorized"
	case errors.Is(err, client.ErrConflict):
		return label + ": already exists"
	case errors.Is(err, client.ErrRateLimited):
		return label + ": slow down and try again later"
	case errors.Is(err, chat.ErrBusy):
		return "the assistant is still answering"
	case errors.Is(err, chat.ErrEmptyMessage):
		return "type a message first"
	}
	return label + ": " + err.Error()
}
