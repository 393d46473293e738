package client

import (
	"context"
	"net/http"

	"github.com/rpggio/comicfolio/internal/domain/account"
)

// GetSession asks the session oracle who is logged in. No session is
// (nil, nil).
func (c *Client) GetSession(ctx context.Context) (*account.SessionView, error) {
	var out *account.SessionView
	if err := c.do(ctx, http.MethodGet, "/auth/get-session", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SignIn(ctx context.Context, email, password string) (*account.SessionView, error) {
	var out account.SessionView
	req := account.SignInRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/auth/sign-in/email", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SignUp(ctx context.Context, name, email, password string) (*account.SessionView, error) {
	var out account.SessionView
	req := account.SignUpRequest{Name: name, Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/auth/sign-up/email", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SignOut(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/sign-out", nil, nil)
}
