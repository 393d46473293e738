package experience_test

import (
	"context"
	"testing"

	"github.com/rpggio/comicfolio/internal/domain/experience"
	"github.com/rpggio/comicfolio/internal/repository"
	"github.com/rpggio/comicfolio/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestExperienceService_CreateDefaultsSide(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ExperienceRepository{}
	repo.On("Create", ctx, mock.MatchedBy(func(exp *experience.Experience) bool {
		return exp.Side == experience.SideLeft
	})).Return(nil)

	svc := experience.NewService(repo, nil)
	exp, err := svc.Create(ctx, experience.Experience{Role: "Senior Tech Lead", Company: "Avengers Tech Division"})
	require.NoError(t, err)
	require.Equal(t, experience.SideLeft, exp.Side)
	repo.AssertExpectations(t)
}

func TestExperienceService_RejectsUnknownSide(t *testing.T) {
	svc := experience.NewService(&mocks.ExperienceRepository{}, nil)

	_, err := svc.Create(context.Background(), experience.Experience{Role: "Intern", Side: "center"})
	require.ErrorIs(t, err, experience.ErrInvalidInput)
}

func TestExperienceService_UpdateNotFound(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ExperienceRepository{}
	repo.On("Update", ctx, mock.Anything).Return(repository.ErrNotFound)

	svc := experience.NewService(repo, nil)
	err := svc.Update(ctx, experience.Experience{ID: 12, Role: "Ghost", Side: experience.SideRight})
	require.ErrorIs(t, err, experience.ErrExperienceNotFound)
}
