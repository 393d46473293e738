package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rpggio/comicfolio/internal/app"
	"github.com/rpggio/comicfolio/internal/domain/account"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authMock struct {
	mock.Mock
}

func (m *authMock) GetSession(ctx context.Context) (*account.SessionView, error) {
	args := m.Called(ctx)
	view, _ := args.Get(0).(*account.SessionView)
	return view, args.Error(1)
}

func (m *authMock) SignIn(ctx context.Context, email, password string) (*account.SessionView, error) {
	args := m.Called(ctx, email, password)
	view, _ := args.Get(0).(*account.SessionView)
	return view, args.Error(1)
}

func (m *authMock) SignUp(ctx context.Context, name, email, password string) (*account.SessionView, error) {
	args := m.Called(ctx, name, email, password)
	view, _ := args.Get(0).(*account.SessionView)
	return view, args.Error(1)
}

func (m *authMock) SignOut(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func testSession() *account.SessionView {
	return &account.SessionView{
		Session: account.Session{Token: "tok", UserID: "u1"},
		User:    account.User{ID: "u1", Email: "admin@example.com"},
	}
}

func TestCheckSession_WithSessionGoesToDashboard(t *testing.T) {
	auth := new(authMock)
	auth.On("GetSession", mock.Anything).Return(testSession(), nil).Once()
	c := app.NewController(auth, nil)

	require.True(t, c.State().Checking)
	state := c.CheckSession(context.Background())
	require.False(t, state.Checking)
	require.Equal(t, app.ViewDashboard, state.View)
	require.True(t, state.Authenticated())

	state = c.CheckSession(context.Background())
	require.Equal(t, app.ViewDashboard, state.View)
	auth.AssertNumberOfCalls(t, "GetSession", 1)
}

func TestCheckSession_NoSessionGoesHome(t *testing.T) {
	auth := new(authMock)
	auth.On("GetSession", mock.Anything).Return(nil, nil).Once()
	c := app.NewController(auth, nil)

	state := c.CheckSession(context.Background())
	require.False(t, state.Checking)
	require.Equal(t, app.ViewHome, state.View)
	require.False(t, state.Authenticated())
}

func TestCheckSession_ErrorReleasesGateOnce(t *testing.T) {
	auth := new(authMock)
	auth.On("GetSession", mock.Anything).Return(nil, errors.New("offline")).Once()
	c := app.NewController(auth, nil)

	state := c.CheckSession(context.Background())
	require.False(t, state.Checking)
	require.Equal(t, app.ViewHome, state.View)

	c.CheckSession(context.Background())
	auth.AssertNumberOfCalls(t, "GetSession", 1)
}

func TestControllerRejectsEventsWhileChecking(t *testing.T) {
	auth := new(authMock)
	c := app.NewController(auth, nil)

	require.ErrorIs(t, c.OpenLogin(), app.ErrInvalidTransition)
	require.ErrorIs(t, c.Login(context.Background(), "a", "b"), app.ErrInvalidTransition)
	require.ErrorIs(t, c.Logout(context.Background()), app.ErrInvalidTransition)
	auth.AssertNotCalled(t, "SignIn", mock.Anything, mock.Anything, mock.Anything)
	auth.AssertNotCalled(t, "SignOut", mock.Anything)
}

func TestLoginFlow(t *testing.T) {
	ctx := context.Background()
	auth := new(authMock)
	auth.On("GetSession", mock.Anything).Return(nil, nil)
	auth.On("SignIn", mock.Anything, "admin@example.com", "bad").Return(nil, errors.New("invalid credentials")).Once()
	auth.On("SignIn", mock.Anything, "admin@example.com", "good").Return(testSession(), nil).Once()
	c := app.NewController(auth, nil)
	c.CheckSession(ctx)

	require.ErrorIs(t, c.Login(ctx, "admin@example.com", "good"), app.ErrInvalidTransition, "login needs the login view")

	require.NoError(t, c.OpenLogin())
	require.Equal(t, app.ViewLogin, c.State().View)

	require.Error(t, c.Login(ctx, "admin@example.com", "bad"))
	require.Equal(t, app.ViewLogin, c.State().View)

	require.NoError(t, c.Login(ctx, "admin@example.com", "good"))
	require.Equal(t, app.ViewDashboard, c.State().View)
	auth.AssertExpectations(t)
}

func TestRegisterFlow(t *testing.T) {
	ctx := context.Background()
	auth := new(authMock)
	auth.On("GetSession", mock.Anything).Return(nil, nil)
	auth.On("SignUp", mock.Anything, "New", "new@example.com", "password1").Return(testSession(), nil).Once()
	c := app.NewController(auth, nil)
	c.CheckSession(ctx)

	require.NoError(t, c.OpenLogin())
	require.NoError(t, c.Register(ctx, "New", "new@example.com", "password1"))
	require.Equal(t, app.ViewDashboard, c.State().View)
}

func TestBackFromLogin(t *testing.T) {
	auth := new(authMock)
	auth.On("GetSession", mock.Anything).Return(nil, nil)
	c := app.NewController(auth, nil)
	c.CheckSession(context.Background())

	require.ErrorIs(t, c.Back(), app.ErrInvalidTransition)
	require.NoError(t, c.OpenLogin())
	require.NoError(t, c.Back())
	require.Equal(t, app.ViewHome, c.State().View)
}

func TestLogoutAlwaysLandsHome(t *testing.T) {
	ctx := context.Background()
	auth := new(authMock)
	auth.On("GetSession", mock.Anything).Return(testSession(), nil)
	auth.On("SignOut", mock.Anything).Return(errors.New("network down")).Once()
	c := app.NewController(auth, nil)
	c.CheckSession(ctx)
	require.Equal(t, app.ViewDashboard, c.State().View)

	err := c.Logout(ctx)
	require.Error(t, err)
	require.Equal(t, app.ViewHome, c.State().View)
	require.False(t, c.State().Authenticated())
}
