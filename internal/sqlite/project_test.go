package sqlite

import (
	"context"
	"testing"

	"github.com/rpggio/comicfolio/internal/domain/project"
	"github.com/rpggio/comicfolio/internal/repository"
	"github.com/stretchr/testify/require"
)

func TestProjectRepository_Create(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	proj := &project.Project{
		Title:       "The Neon Dashboard",
		Description: "A glowing admin panel",
		Tags:        []string{"React", "Tailwind"},
		ImageURL:    "https://picsum.photos/400/300",
		Link:        "#",
	}
	require.NoError(t, repo.Create(ctx, proj))
	require.Positive(t, proj.ID)

	retrieved, err := repo.Get(ctx, proj.ID)
	require.NoError(t, err)
	require.Equal(t, *proj, *retrieved)
}

func TestProjectRepository_GetNotFound(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)

	_, err := repo.Get(context.Background(), 404)
	require.Equal(t, repository.ErrNotFound, err)
}

func TestProjectRepository_ListKeepsInsertionOrder(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	for _, title := range []string{"First", "Second", "Third"} {
		require.NoError(t, repo.Create(ctx, &project.Project{Title: title}))
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, "First", list[0].Title)
	require.Equal(t, "Third", list[2].Title)
	require.Equal(t, []string{}, list[0].Tags)
}

func TestProjectRepository_UpdateAndDelete(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	proj := &project.Project{Title: "Draft", Tags: []string{"WIP"}}
	require.NoError(t, repo.Create(ctx, proj))

	proj.Title = "Pixel Commerce"
	proj.Tags = []string{"Vue", "Stripe"}
	require.NoError(t, repo.Update(ctx, proj))

	retrieved, err := repo.Get(ctx, proj.ID)
	require.NoError(t, err)
	require.Equal(t, "Pixel Commerce", retrieved.Title)
	require.Equal(t, []string{"Vue", "Stripe"}, retrieved.Tags)

	require.NoError(t, repo.Delete(ctx, proj.ID))
	require.Equal(t, repository.ErrNotFound, repo.Delete(ctx, proj.ID))
	require.Equal(t, repository.ErrNotFound, repo.Update(ctx, proj))
}
