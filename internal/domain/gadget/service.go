package gadget

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/rpggio/comicfolio/internal/repository"
)

// Service handles gadget operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new gadget service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{repo: repo, logger: logger}
}

// Create stores a new gadget, generating an ID when none is supplied.
func (s *Service) Create(ctx context.Context, g Gadget) (*Gadget, error) {
	if strings.TrimSpace(g.Name) == "" {
		return nil, ErrInvalidInput
	}
	g.ID = strings.TrimSpace(g.ID)
	if g.ID == "" {
		g.ID = uuid.NewString()
	}

	if err := s.repo.Create(ctx, &g); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrGadgetExists
		}
		return nil, fmt.Errorf("creating gadget: %w", err)
	}
	s.logger.Info("gadget created", "id", g.ID, "name", g.Name)
	return &g, nil
}

// List returns every gadget in insertion order.
func (s *Service) List(ctx context.Context) ([]Gadget, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing gadgets: %w", err)
	}
	return list, nil
}

// Update replaces all fields of an existing gadget.
func (s *Service) Update(ctx context.Context, g Gadget) error {
	if strings.TrimSpace(g.ID) == "" || strings.TrimSpace(g.Name) == "" {
		return ErrInvalidInput
	}
	if err := s.repo.Update(ctx, &g); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrGadgetNotFound
		}
		return fmt.Errorf("updating gadget: %w", err)
	}
	return nil
}

// Delete removes a gadget.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrGadgetNotFound
		}
		return fmt.Errorf("deleting gadget: %w", err)
	}
	return nil
}
