package app

import (
	"testing"

	"github.com/rpggio/comicfolio/internal/domain/account"
	"github.com/stretchr/testify/require"
)

func ready(v View) State {
	s := State{View: v}
	if v == ViewDashboard {
		s.Session = &account.SessionView{}
	}
	return s
}

func TestReduce_Transitions(t *testing.T) {
	sess := &account.SessionView{User: account.User{ID: "u1"}}

	tests := []struct {
		name  string
		from  State
		event Event
		want  View
	}{
		{"checking with session", Initial(), SessionResolved{Session: sess}, ViewDashboard},
		{"checking without session", Initial(), SessionResolved{}, ViewHome},
		{"checking failed", Initial(), SessionCheckFailed{}, ViewHome},
		{"home open login", ready(ViewHome), OpenLogin{}, ViewLogin},
		{"login succeeded", ready(ViewLogin), LoginSucceeded{Session: sess}, ViewDashboard},
		{"login back", ready(ViewLogin), Back{}, ViewHome},
		{"dashboard logout", ready(ViewDashboard), LoggedOut{}, ViewHome},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Reduce(tt.from, tt.event)
			require.NoError(t, err)
			require.Equal(t, tt.want, got.View)
			require.False(t, got.Checking)
		})
	}
}

func TestReduce_Rejections(t *testing.T) {
	tests := []struct {
		name  string
		from  State
		event Event
	}{
		{"no home to dashboard edge", ready(ViewHome), LoginSucceeded{Session: &account.SessionView{}}},
		{"open login from dashboard", ready(ViewDashboard), OpenLogin{}},
		{"back from home", ready(ViewHome), Back{}},
		{"login succeeded without session", ready(ViewLogin), LoginSucceeded{}},
		{"open login while checking", Initial(), OpenLogin{}},
		{"logout while checking", Initial(), LoggedOut{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Reduce(tt.from, tt.event)
			require.ErrorIs(t, err, ErrInvalidTransition)
			require.Equal(t, tt.from, got)
		})
	}
}

func TestReduce_LateSessionResultIgnored(t *testing.T) {
	s := ready(ViewLogin)
	got, err := Reduce(s, SessionResolved{Session: &account.SessionView{}})
	require.NoError(t, err)
	require.Equal(t, s, got)

	got, err = Reduce(s, SessionCheckFailed{})
	require.NoError(t, err)
	require.Equal(t, s, got)
}

func TestState_Blocked(t *testing.T) {
	require.True(t, Initial().Blocked(false))
	require.True(t, ready(ViewHome).Blocked(true))
	require.False(t, ready(ViewHome).Blocked(false))
}
