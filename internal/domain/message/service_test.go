package message_test

import (
	"context"
	"testing"

	"github.com/rpggio/comicfolio/internal/domain/message"
	"github.com/rpggio/comicfolio/internal/repository"
	"github.com/rpggio/comicfolio/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMessageService_Create(t *testing.T) {
	ctx := context.Background()

	var stored *message.Message
	repo := &mocks.MessageRepository{}
	repo.On("Create", ctx, mock.Anything).Run(func(args mock.Arguments) {
		stored = args.Get(1).(*message.Message)
	}).Return(nil)

	svc := message.NewService(repo, nil)
	receipt, err := svc.Create(ctx, message.CreateRequest{
		Codename: "Spidey",
		Email:    "peter@bugle.com",
		Content:  "Need a website, villains optional.",
	})
	require.NoError(t, err)
	require.True(t, receipt.Success)
	require.NotEmpty(t, receipt.ID)
	require.Positive(t, receipt.Timestamp)

	require.NotNil(t, stored)
	require.Equal(t, receipt.ID, stored.ID)
	require.False(t, stored.Read)
}

func TestMessageService_CreateValidation(t *testing.T) {
	svc := message.NewService(&mocks.MessageRepository{}, nil)
	_, err := svc.Create(context.Background(), message.CreateRequest{Codename: "X", Email: "x@y.z"})
	require.ErrorIs(t, err, message.ErrInvalidInput)
}

func TestMessageService_MarkReadNotFound(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.MessageRepository{}
	repo.On("MarkRead", ctx, "missing").Return(repository.ErrNotFound)

	svc := message.NewService(repo, nil)
	require.ErrorIs(t, svc.MarkRead(ctx, "missing"), message.ErrMessageNotFound)
}

func TestUnread(t *testing.T) {
	list := []message.Message{{ID: "a"}, {ID: "b", Read: true}, {ID: "c"}}
	require.Equal(t, 2, message.Unread(list))
	require.Zero(t, message.Unread(nil))
}
