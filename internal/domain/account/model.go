package account

import "time"

// User is an administrator able to edit portfolio content.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// Session is a login session identified by an opaque token.
type Session struct {
	Token     string    `json:"token"`
	UserID    string    `json:"userId"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}

// Expired reports whether the session is past its expiry at now.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// SessionView is what the session oracle answers with.
type SessionView struct {
	Session Session `json:"session"`
	User    User    `json:"user"`
}

// SignUpRequest defines account registration inputs.
type SignUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignInRequest defines email and password login inputs.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
