package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/rpggio/comicfolio/internal/domain/account"
	"github.com/rpggio/comicfolio/internal/repository"
	"github.com/stretchr/testify/require"
)

func TestAccountRepository_Users(t *testing.T) {
	db := NewTestDB(t)
	repo := NewAccountRepository(db)
	ctx := context.Background()

	user := &account.User{ID: "u1", Name: "Admin", Email: "admin@folio.dev", CreatedAt: time.Now()}
	require.NoError(t, repo.CreateUser(ctx, user, "hash"))
	require.Equal(t, repository.ErrConflict, repo.CreateUser(ctx, &account.User{ID: "u2", Email: "admin@folio.dev"}, "x"))

	got, hash, err := repo.GetUserByEmail(ctx, "admin@folio.dev")
	require.NoError(t, err)
	require.Equal(t, "u1", got.ID)
	require.Equal(t, "hash", hash)

	_, _, err = repo.GetUserByEmail(ctx, "nobody@folio.dev")
	require.Equal(t, repository.ErrNotFound, err)
}

func TestAccountRepository_Sessions(t *testing.T) {
	db := NewTestDB(t)
	repo := NewAccountRepository(db)
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.CreateUser(ctx, &account.User{ID: "u1", Email: "a@b.c", CreatedAt: now}, "h"))
	require.Equal(t, repository.ErrForeignKeyViolation, repo.CreateSession(ctx, &account.Session{Token: "orphan", UserID: "ghost", ExpiresAt: now}))

	live := &account.Session{Token: "live", UserID: "u1", ExpiresAt: now.Add(time.Hour), CreatedAt: now}
	dead := &account.Session{Token: "dead", UserID: "u1", ExpiresAt: now.Add(-time.Hour), CreatedAt: now}
	require.NoError(t, repo.CreateSession(ctx, live))
	require.NoError(t, repo.CreateSession(ctx, dead))

	got, err := repo.GetSession(ctx, "live")
	require.NoError(t, err)
	require.True(t, live.ExpiresAt.Equal(got.ExpiresAt))

	n, err := repo.DeleteExpiredSessions(ctx, now)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	_, err = repo.GetSession(ctx, "dead")
	require.Equal(t, repository.ErrNotFound, err)

	require.NoError(t, repo.DeleteSession(ctx, "live"))
	require.Equal(t, repository.ErrNotFound, repo.DeleteSession(ctx, "live"))
}
