package project

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rpggio/comicfolio/internal/repository"
)

// Service handles project operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new project service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{repo: repo, logger: logger}
}

// Create stores a new project and returns it with its assigned ID.
func (s *Service) Create(ctx context.Context, proj Project) (*Project, error) {
	if err := validate(proj); err != nil {
		return nil, err
	}
	proj.ID = 0
	proj.Tags = normalizeTags(proj.Tags)

	if err := s.repo.Create(ctx, &proj); err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}
	s.logger.Info("project created", "id", proj.ID, "title", proj.Title)
	return &proj, nil
}

// Get fetches a project by ID.
func (s *Service) Get(ctx context.Context, id int64) (*Project, error) {
	proj, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("getting project: %w", err)
	}
	return proj, nil
}

// List returns every project in insertion order.
func (s *Service) List(ctx context.Context) ([]Project, error) {
	projects, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	return projects, nil
}

// Update replaces all fields of an existing project.
func (s *Service) Update(ctx context.Context, proj Project) error {
	if proj.ID <= 0 {
		return ErrInvalidInput
	}
	if err := validate(proj); err != nil {
		return err
	}
	proj.Tags = normalizeTags(proj.Tags)

	if err := s.repo.Update(ctx, &proj); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("updating project: %w", err)
	}
	return nil
}

// Delete removes a project.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("deleting project: %w", err)
	}
	s.logger.Info("project deleted", "id", id)
	return nil
}

func validate(proj Project) error {
	if strings.TrimSpace(proj.Title) == "" {
		return ErrInvalidInput
	}
	return nil
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}
