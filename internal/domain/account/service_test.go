package account_test

import (
	"context"
	"testing"
	"time"

	"github.com/rpggio/comicfolio/internal/domain/account"
	"github.com/rpggio/comicfolio/internal/repository"
	"github.com/rpggio/comicfolio/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newService(repo account.Repository, now time.Time) *account.Service {
	return account.NewService(repo, time.Hour, nil,
		account.WithHashCost(bcrypt.MinCost),
		account.WithClock(func() time.Time { return now }),
	)
}

func TestAccountService_SignUp(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	repo := &mocks.AccountRepository{}
	repo.On("CreateUser", ctx, mock.MatchedBy(func(u *account.User) bool {
		return u.Email == "tony@stark.com" && u.Name == "Tony"
	}), mock.AnythingOfType("string")).Return(nil)
	repo.On("CreateSession", ctx, mock.Anything).Return(nil)

	svc := newService(repo, now)
	view, err := svc.SignUp(ctx, account.SignUpRequest{Name: "Tony", Email: " Tony@Stark.com ", Password: "iamironman"})
	require.NoError(t, err)
	require.NotEmpty(t, view.Session.Token)
	require.Equal(t, now.Add(time.Hour), view.Session.ExpiresAt)
	require.Equal(t, view.User.ID, view.Session.UserID)
	repo.AssertExpectations(t)
}

func TestAccountService_SignUpShortPassword(t *testing.T) {
	svc := newService(&mocks.AccountRepository{}, time.Now())
	_, err := svc.SignUp(context.Background(), account.SignUpRequest{Email: "a@b.c", Password: "short"})
	require.ErrorIs(t, err, account.ErrInvalidInput)
}

func TestAccountService_SignUpEmailTaken(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.AccountRepository{}
	repo.On("CreateUser", ctx, mock.Anything, mock.Anything).Return(repository.ErrConflict)

	svc := newService(repo, time.Now())
	_, err := svc.SignUp(ctx, account.SignUpRequest{Email: "a@b.c", Password: "password1"})
	require.ErrorIs(t, err, account.ErrEmailTaken)
}

func TestAccountService_SignIn(t *testing.T) {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &account.User{ID: "u1", Email: "admin@folio.dev"}

	repo := &mocks.AccountRepository{}
	repo.On("GetUserByEmail", ctx, "admin@folio.dev").Return(user, string(hash), nil)
	repo.On("CreateSession", ctx, mock.Anything).Return(nil)

	svc := newService(repo, time.Now())

	view, err := svc.SignIn(ctx, account.SignInRequest{Email: "admin@folio.dev", Password: "correct horse"})
	require.NoError(t, err)
	require.Equal(t, "u1", view.User.ID)

	_, err = svc.SignIn(ctx, account.SignInRequest{Email: "admin@folio.dev", Password: "wrong"})
	require.ErrorIs(t, err, account.ErrInvalidCredentials)
}

func TestAccountService_SignInUnknownEmail(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.AccountRepository{}
	repo.On("GetUserByEmail", ctx, "ghost@folio.dev").Return(nil, "", repository.ErrNotFound)

	svc := newService(repo, time.Now())
	_, err := svc.SignIn(ctx, account.SignInRequest{Email: "ghost@folio.dev", Password: "whatever1"})
	require.ErrorIs(t, err, account.ErrInvalidCredentials)
}

func TestAccountService_ResolveExpired(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	repo := &mocks.AccountRepository{}
	repo.On("GetSession", ctx, "tok").Return(&account.Session{
		Token:     "tok",
		UserID:    "u1",
		ExpiresAt: now.Add(-time.Minute),
	}, nil)
	repo.On("DeleteSession", ctx, "tok").Return(nil)

	svc := newService(repo, now)
	_, err := svc.Resolve(ctx, "tok")
	require.ErrorIs(t, err, account.ErrSessionNotFound)
	repo.AssertCalled(t, "DeleteSession", ctx, "tok")
}

func TestAccountService_Resolve(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	repo := &mocks.AccountRepository{}
	repo.On("GetSession", ctx, "tok").Return(&account.Session{
		Token:     "tok",
		UserID:    "u1",
		ExpiresAt: now.Add(time.Minute),
	}, nil)
	repo.On("GetUser", ctx, "u1").Return(&account.User{ID: "u1", Email: "admin@folio.dev"}, nil)

	svc := newService(repo, now)
	view, err := svc.Resolve(ctx, "tok")
	require.NoError(t, err)
	require.Equal(t, "admin@folio.dev", view.User.Email)

	_, err = svc.Resolve(ctx, "")
	require.ErrorIs(t, err, account.ErrSessionNotFound)
}

func TestAccountService_SignOutIgnoresUnknown(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.AccountRepository{}
	repo.On("DeleteSession", ctx, "gone").Return(repository.ErrNotFound)

	svc := newService(repo, time.Now())
	require.NoError(t, svc.SignOut(ctx, "gone"))
	require.NoError(t, svc.SignOut(ctx, ""))
}
