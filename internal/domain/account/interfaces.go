package account

import (
	"context"
	"time"
)

// Repository provides persistence for users and their sessions.
type Repository interface {
	CreateUser(ctx context.Context, user *User, passwordHash string) error
	GetUser(ctx context.Context, id string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, string, error)
	CreateSession(ctx context.Context, sess *Session) error
	GetSession(ctx context.Context, token string) (*Session, error)
	DeleteSession(ctx context.Context, token string) error
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}
