package store_test

import (
	"context"
	"testing"

	"github.com/rpggio/comicfolio/internal/client"
	"github.com/rpggio/comicfolio/internal/domain/gadget"
	"github.com/rpggio/comicfolio/internal/domain/project"
	"github.com/rpggio/comicfolio/internal/store"
	"github.com/rpggio/comicfolio/internal/testserver"
	"github.com/stretchr/testify/require"
)

func TestStore_AgainstServer(t *testing.T) {
	ts := testserver.New(t, testserver.WithSeed())
	ctx := context.Background()

	anon := store.New(client.New(ts.URL()), nil)
	require.NoError(t, anon.LoadPublic(ctx))
	require.Len(t, anon.Projects.List(), 3)
	anon.RefreshMessages(ctx)
	require.Empty(t, anon.Messages.List())

	err := anon.CreateProject(ctx, project.Project{Title: "Sneaky"})
	require.ErrorIs(t, err, client.ErrUnauthorized)

	c := client.New(ts.URL())
	_, err = c.SignIn(ctx, testserver.AdminEmail, testserver.AdminPassword)
	require.NoError(t, err)
	admin := store.New(c, nil)
	require.NoError(t, admin.LoadPublic(ctx))

	require.NoError(t, admin.CreateProject(ctx, project.Project{Title: "Fresh Issue", Tags: []string{"Go"}}))
	require.Len(t, admin.Projects.List(), 4)

	err = admin.CreateGadget(ctx, gadget.Gadget{ID: "git", Name: "Duplicate"})
	require.ErrorIs(t, err, client.ErrConflict)
	require.Len(t, admin.Gadgets.List(), 6)
}
