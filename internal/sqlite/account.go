package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/rpggio/comicfolio/internal/domain/account"
	"github.com/rpggio/comicfolio/internal/repository"
)

var _ account.Repository = (*AccountRepository)(nil)

// AccountRepository implements account.Repository for SQLite. Times are
// stored as Unix milliseconds.
type AccountRepository struct {
	db *DB
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(db *DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// CreateUser inserts a user with its password hash
func (r *AccountRepository) CreateUser(ctx context.Context, user *account.User, passwordHash string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, name, email, password_hash, created_at) VALUES (?, ?, ?, ?, ?)`,
		user.ID, user.Name, user.Email, passwordHash, user.CreatedAt.UnixMilli(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrConflict
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUser retrieves a user by ID
func (r *AccountRepository) GetUser(ctx context.Context, id string) (*account.User, error) {
	var (
		user    account.User
		created int64
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, email, created_at FROM users WHERE id = ?`, id,
	).Scan(&user.ID, &user.Name, &user.Email, &created)
	if notFound(err) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	user.CreatedAt = time.UnixMilli(created).UTC()
	return &user, nil
}

// GetUserByEmail retrieves a user and their password hash
func (r *AccountRepository) GetUserByEmail(ctx context.Context, email string) (*account.User, string, error) {
	var (
		user    account.User
		hash    string
		created int64
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, email, password_hash, created_at FROM users WHERE email = ?`, email,
	).Scan(&user.ID, &user.Name, &user.Email, &hash, &created)
	if notFound(err) {
		return nil, "", repository.ErrNotFound
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to get user by email: %w", err)
	}
	user.CreatedAt = time.UnixMilli(created).UTC()
	return &user, hash, nil
}

// CreateSession inserts a session
func (r *AccountRepository) CreateSession(ctx context.Context, sess *account.Session) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO sessions (token, user_id, expires_at, created_at) VALUES (?, ?, ?, ?)`,
		sess.Token, sess.UserID, sess.ExpiresAt.UnixMilli(), sess.CreatedAt.UnixMilli(),
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// GetSession retrieves a session by token
func (r *AccountRepository) GetSession(ctx context.Context, token string) (*account.Session, error) {
	var (
		sess             account.Session
		expires, created int64
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT token, user_id, expires_at, created_at FROM sessions WHERE token = ?`, token,
	).Scan(&sess.Token, &sess.UserID, &expires, &created)
	if notFound(err) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	sess.ExpiresAt = time.UnixMilli(expires).UTC()
	sess.CreatedAt = time.UnixMilli(created).UTC()
	return &sess, nil
}

// DeleteSession removes a session
func (r *AccountRepository) DeleteSession(ctx context.Context, token string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE token = ?`, token)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return expectOneRow(res)
}

// DeleteExpiredSessions removes sessions that expired at or before now
func (r *AccountRepository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at <= ?`, now.UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("failed to purge sessions: %w", err)
	}
	return res.RowsAffected()
}
