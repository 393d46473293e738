package experience

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rpggio/comicfolio/internal/repository"
)

// Service handles experience operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new experience service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{repo: repo, logger: logger}
}

// Create stores a new entry. An empty side defaults to left.
func (s *Service) Create(ctx context.Context, exp Experience) (*Experience, error) {
	if err := normalize(&exp); err != nil {
		return nil, err
	}
	exp.ID = 0

	if err := s.repo.Create(ctx, &exp); err != nil {
		return nil, fmt.Errorf("creating experience: %w", err)
	}
	s.logger.Info("experience created", "id", exp.ID, "role", exp.Role)
	return &exp, nil
}

// List returns every entry in insertion order.
func (s *Service) List(ctx context.Context) ([]Experience, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing experiences: %w", err)
	}
	return list, nil
}

// Update replaces all fields of an existing entry.
func (s *Service) Update(ctx context.Context, exp Experience) error {
	if exp.ID <= 0 {
		return ErrInvalidInput
	}
	if err := normalize(&exp); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, &exp); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrExperienceNotFound
		}
		return fmt.Errorf("updating experience: %w", err)
	}
	return nil
}

func normalize(exp *Experience) error {
	if strings.TrimSpace(exp.Role) == "" {
		return ErrInvalidInput
	}
	switch exp.Side {
	case "":
		exp.Side = SideLeft
	case SideLeft, SideRight:
	default:
		return ErrInvalidInput
	}
	return nil
}
