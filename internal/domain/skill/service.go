package skill

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rpggio/comicfolio/internal/repository"
)

// Service handles skill operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new skill service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{repo: repo, logger: logger}
}

// Create stores a new skill.
func (s *Service) Create(ctx context.Context, sk Skill) (*Skill, error) {
	if strings.TrimSpace(sk.Name) == "" {
		return nil, ErrInvalidInput
	}
	sk.ID = 0
	if err := s.repo.Create(ctx, &sk); err != nil {
		return nil, fmt.Errorf("creating skill: %w", err)
	}
	s.logger.Info("skill created", "id", sk.ID, "name", sk.Name, "level", sk.Level)
	return &sk, nil
}

// List returns every skill in insertion order.
func (s *Service) List(ctx context.Context) ([]Skill, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing skills: %w", err)
	}
	return list, nil
}

// Update replaces all fields of an existing skill.
func (s *Service) Update(ctx context.Context, sk Skill) error {
	if sk.ID <= 0 || strings.TrimSpace(sk.Name) == "" {
		return ErrInvalidInput
	}
	if err := s.repo.Update(ctx, &sk); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrSkillNotFound
		}
		return fmt.Errorf("updating skill: %w", err)
	}
	return nil
}

// Delete removes a skill.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrSkillNotFound
		}
		return fmt.Errorf("deleting skill: %w", err)
	}
	return nil
}
