package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rpggio/comicfolio/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 8

// DefaultSessionTTL applies when the service is built with a zero TTL.
const DefaultSessionTTL = 7 * 24 * time.Hour

// Service handles registration, login and session lookup.
type Service struct {
	repo     Repository
	ttl      time.Duration
	hashCost int
	logger   *slog.Logger
	now      func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithHashCost overrides the bcrypt cost. Tests use bcrypt.MinCost.
func WithHashCost(cost int) Option {
	return func(s *Service) { s.hashCost = cost }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a new account service.
func NewService(repo Repository, ttl time.Duration, logger *slog.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	s := &Service{
		repo:     repo,
		ttl:      ttl,
		hashCost: bcrypt.DefaultCost,
		logger:   logger,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SignUp registers a user and opens a session for them.
func (s *Service) SignUp(ctx context.Context, req SignUpRequest) (*SessionView, error) {
	email := normalizeEmail(req.Email)
	if email == "" || !strings.Contains(email, "@") || len(req.Password) < MinPasswordLength {
		return nil, ErrInvalidInput
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = email
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.CreateUser(ctx, user, string(hash)); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}
	s.logger.Info("user registered", "user_id", user.ID)

	return s.openSession(ctx, user)
}

// SignIn checks credentials and opens a new session.
func (s *Service) SignIn(ctx context.Context, req SignInRequest) (*SessionView, error) {
	user, hash, err := s.repo.GetUserByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("loading user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
		s.logger.Warn("sign-in rejected", "user_id", user.ID)
		return nil, ErrInvalidCredentials
	}
	return s.openSession(ctx, user)
}

// Resolve returns the session and user for a token. Expired sessions are
// removed and reported as not found.
func (s *Service) Resolve(ctx context.Context, token string) (*SessionView, error) {
	if token == "" {
		return nil, ErrSessionNotFound
	}
	sess, err := s.repo.GetSession(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("loading session: %w", err)
	}
	if sess.Expired(s.now()) {
		if err := s.repo.DeleteSession(ctx, token); err != nil && !errors.Is(err, repository.ErrNotFound) {
			s.logger.Warn("failed to drop expired session", "error", err)
		}
		return nil, ErrSessionNotFound
	}

	user, err := s.repo.GetUser(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("loading session user: %w", err)
	}
	return &SessionView{Session: *sess, User: *user}, nil
}

// SignOut ends a session. Unknown tokens are ignored.
func (s *Service) SignOut(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.repo.DeleteSession(ctx, token); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

// PurgeExpired deletes every expired session.
func (s *Service) PurgeExpired(ctx context.Context) (int64, error) {
	n, err := s.repo.DeleteExpiredSessions(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("purging sessions: %w", err)
	}
	if n > 0 {
		s.logger.Debug("expired sessions purged", "count", n)
	}
	return n, nil
}

func (s *Service) openSession(ctx context.Context, user *User) (*SessionView, error) {
	now := s.now().UTC()
	sess := &Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: now.Add(s.ttl),
		CreatedAt: now,
	}
	if err := s.repo.CreateSession(ctx, sess); err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}
	return &SessionView{Session: *sess, User: *user}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
