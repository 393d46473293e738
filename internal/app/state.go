// Package app holds the top-level view state of the client and the
// transitions between home, login and dashboard.
package app

import (
	"errors"
	"fmt"

	"github.com/rpggio/comicfolio/internal/domain/account"
)

// View is the top-level screen.
type View string

const (
	ViewHome      View = "home"
	ViewLogin     View = "login"
	ViewDashboard View = "dashboard"
)

// ErrInvalidTransition means the event does not apply in the current state.
var ErrInvalidTransition = errors.New("invalid view transition")

// State is the global view container. Checking is true until the initial
// session check settles; nothing else may happen before that.
type State struct {
	View     View
	Session  *account.SessionView
	Checking bool
}

// Initial is the state before the session oracle has answered.
func Initial() State {
	return State{View: ViewHome, Checking: true}
}

// Blocked reports whether the UI must show the loading placeholder.
func (s State) Blocked(storeLoading bool) bool {
	return s.Checking || storeLoading
}

// Authenticated reports whether a session is held.
func (s State) Authenticated() bool {
	return s.Session != nil
}

// Event drives a transition.
type Event interface {
	event()
}

// SessionResolved carries the session oracle answer; nil means no session.
type SessionResolved struct{ Session *account.SessionView }

// SessionCheckFailed means the oracle could not be reached.
type SessionCheckFailed struct{ Err error }

type OpenLogin struct{}

type LoginSucceeded struct{ Session *account.SessionView }

type Back struct{}

type LoggedOut struct{}

func (SessionResolved) event()    {}
func (SessionCheckFailed) event() {}
func (OpenLogin) event()          {}
func (LoginSucceeded) event()     {}
func (Back) event()               {}
func (LoggedOut) event()          {}

// Reduce applies e to s. Rejected events return s unchanged together with
// ErrInvalidTransition. Session results arriving after the gate released
// are ignored.
func Reduce(s State, e Event) (State, error) {
	switch ev := e.(type) {
	case SessionResolved:
		if !s.Checking {
			return s, nil
		}
		if ev.Session != nil {
			return State{View: ViewDashboard, Session: ev.Session}, nil
		}
		return State{View: ViewHome}, nil
	case SessionCheckFailed:
		if !s.Checking {
			return s, nil
		}
		return State{View: ViewHome}, nil
	}

	if s.Checking {
		return s, invalid(s, e)
	}

	switch ev := e.(type) {
	case OpenLogin:
		if s.View == ViewHome {
			return State{View: ViewLogin, Session: s.Session}, nil
		}
	case LoginSucceeded:
		if s.View == ViewLogin && ev.Session != nil {
			return State{View: ViewDashboard, Session: ev.Session}, nil
		}
	case Back:
		if s.View == ViewLogin {
			return State{View: ViewHome, Session: s.Session}, nil
		}
	case LoggedOut:
		return State{View: ViewHome}, nil
	}
	return s, invalid(s, e)
}

func invalid(s State, e Event) error {
	return fmt.Errorf("%w: %T in %s (checking=%t)", ErrInvalidTransition, e, s.View, s.Checking)
}
