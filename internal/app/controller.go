package app

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/rpggio/comicfolio/internal/domain/account"
)

// Auth is the session oracle and login backend. *client.Client satisfies it.
type Auth interface {
	GetSession(ctx context.Context) (*account.SessionView, error)
	SignIn(ctx context.Context, email, password string) (*account.SessionView, error)
	SignUp(ctx context.Context, name, email, password string) (*account.SessionView, error)
	SignOut(ctx context.Context) error
}

// Controller owns the view state and performs the remote calls behind
// each transition.
type Controller struct {
	auth   Auth
	logger *slog.Logger

	mu    sync.Mutex
	state State

	checkOnce sync.Once
}

func NewController(auth Auth, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Controller{auth: auth, logger: logger, state: Initial()}
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) dispatch(e Event) (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	next, err := Reduce(c.state, e)
	if err != nil {
		return c.state, err
	}
	c.state = next
	return next, nil
}

// CheckSession asks the oracle once per controller. Later calls return the
// current state without another request. An unreachable oracle counts as
// no session.
func (c *Controller) CheckSession(ctx context.Context) State {
	c.checkOnce.Do(func() {
		view, err := c.auth.GetSession(ctx)
		if err != nil {
			c.logger.Warn("session check failed", "error", err)
			_, _ = c.dispatch(SessionCheckFailed{Err: err})
			return
		}
		_, _ = c.dispatch(SessionResolved{Session: view})
	})
	return c.State()
}

func (c *Controller) OpenLogin() error {
	_, err := c.dispatch(OpenLogin{})
	return err
}

func (c *Controller) Back() error {
	_, err := c.dispatch(Back{})
	return err
}

// Login signs in from the login view. On failure the view stays on login.
func (c *Controller) Login(ctx context.Context, email, password string) error {
	if err := c.expect(ViewLogin); err != nil {
		return err
	}
	view, err := c.auth.SignIn(ctx, email, password)
	if err != nil {
		return err
	}
	_, err = c.dispatch(LoginSucceeded{Session: view})
	return err
}

// Register creates an account from the login view and signs it in.
func (c *Controller) Register(ctx context.Context, name, email, password string) error {
	if err := c.expect(ViewLogin); err != nil {
		return err
	}
	view, err := c.auth.SignUp(ctx, name, email, password)
	if err != nil {
		return err
	}
	_, err = c.dispatch(LoginSucceeded{Session: view})
	return err
}

// Logout ends the session and always lands on home. A failed remote
// sign-out is logged and returned for display.
func (c *Controller) Logout(ctx context.Context) error {
	if c.State().Checking {
		return invalid(c.State(), LoggedOut{})
	}
	remoteErr := c.auth.SignOut(ctx)
	if remoteErr != nil {
		c.logger.Warn("sign-out failed", "error", remoteErr)
	}
	_, err := c.dispatch(LoggedOut{})
	return errors.Join(remoteErr, err)
}

func (c *Controller) expect(v View) error {
	s := c.State()
	if s.Checking || s.View != v {
		return invalid(s, LoginSucceeded{})
	}
	return nil
}
