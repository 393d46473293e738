package gadget_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rpggio/comicfolio/internal/domain/gadget"
	"github.com/rpggio/comicfolio/internal/repository"
	"github.com/rpggio/comicfolio/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGadgetService_CreateGeneratesID(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.GadgetRepository{}
	repo.On("Create", ctx, mock.Anything).Return(nil)

	svc := gadget.NewService(repo, nil)
	g, err := svc.Create(ctx, gadget.Gadget{Name: "Kubectl", Icon: "☸"})
	require.NoError(t, err)
	_, err = uuid.Parse(g.ID)
	require.NoError(t, err)
}

func TestGadgetService_CreateKeepsSuppliedID(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.GadgetRepository{}
	repo.On("Create", ctx, mock.Anything).Return(nil)

	svc := gadget.NewService(repo, nil)
	g, err := svc.Create(ctx, gadget.Gadget{ID: " vim ", Name: "Vim"})
	require.NoError(t, err)
	require.Equal(t, "vim", g.ID)
}

func TestGadgetService_CreateDuplicate(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.GadgetRepository{}
	repo.On("Create", ctx, mock.Anything).Return(repository.ErrConflict)

	svc := gadget.NewService(repo, nil)
	_, err := svc.Create(ctx, gadget.Gadget{ID: "git", Name: "Git again"})
	require.ErrorIs(t, err, gadget.ErrGadgetExists)
}

func TestGadgetService_UpdateNotFound(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.GadgetRepository{}
	repo.On("Update", ctx, mock.Anything).Return(repository.ErrNotFound)

	svc := gadget.NewService(repo, nil)
	err := svc.Update(ctx, gadget.Gadget{ID: "nope", Name: "Nope"})
	require.ErrorIs(t, err, gadget.ErrGadgetNotFound)
}
