package store

import (
	"context"

	"github.com/rpggio/comicfolio/internal/domain/experience"
	"github.com/rpggio/comicfolio/internal/domain/gadget"
	"github.com/rpggio/comicfolio/internal/domain/message"
	"github.com/rpggio/comicfolio/internal/domain/project"
	"github.com/rpggio/comicfolio/internal/domain/skill"
)

func (s *Store) CreateProject(ctx context.Context, p project.Project) error {
	return s.Projects.Mutate(ctx, func(ctx context.Context) error {
		_, err := s.api.CreateProject(ctx, p)
		return err
	})
}

func (s *Store) UpdateProject(ctx context.Context, p project.Project) error {
	return s.Projects.Mutate(ctx, func(ctx context.Context) error {
		return s.api.UpdateProject(ctx, p)
	})
}

func (s *Store) DeleteProject(ctx context.Context, id int64) error {
	return s.Projects.Mutate(ctx, func(ctx context.Context) error {
		return s.api.DeleteProject(ctx, id)
	})
}

func (s *Store) CreateExperience(ctx context.Context, e experience.Experience) error {
	return s.Experiences.Mutate(ctx, func(ctx context.Context) error {
		_, err := s.api.CreateExperience(ctx, e)
		return err
	})
}

func (s *Store) UpdateExperience(ctx context.Context, e experience.Experience) error {
	return s.Experiences.Mutate(ctx, func(ctx context.Context) error {
		return s.api.UpdateExperience(ctx, e)
	})
}

// DeleteExperience has no server endpoint. It makes no request.
func (s *Store) DeleteExperience(_ context.Context, id int64) error {
	s.logger.Warn("experience delete not supported", "id", id)
	return ErrNotSupported
}

func (s *Store) CreateSkill(ctx context.Context, sk skill.Skill) error {
	return s.Skills.Mutate(ctx, func(ctx context.Context) error {
		_, err := s.api.CreateSkill(ctx, sk)
		return err
	})
}

func (s *Store) UpdateSkill(ctx context.Context, sk skill.Skill) error {
	return s.Skills.Mutate(ctx, func(ctx context.Context) error {
		return s.api.UpdateSkill(ctx, sk)
	})
}

func (s *Store) DeleteSkill(ctx context.Context, id int64) error {
	return s.Skills.Mutate(ctx, func(ctx context.Context) error {
		return s.api.DeleteSkill(ctx, id)
	})
}

func (s *Store) CreateGadget(ctx context.Context, g gadget.Gadget) error {
	return s.Gadgets.Mutate(ctx, func(ctx context.Context) error {
		_, err := s.api.CreateGadget(ctx, g)
		return err
	})
}

func (s *Store) UpdateGadget(ctx context.Context, g gadget.Gadget) error {
	return s.Gadgets.Mutate(ctx, func(ctx context.Context) error {
		return s.api.UpdateGadget(ctx, g)
	})
}

func (s *Store) DeleteGadget(ctx context.Context, id string) error {
	return s.Gadgets.Mutate(ctx, func(ctx context.Context) error {
		return s.api.DeleteGadget(ctx, id)
	})
}

// SendMessage submits the contact form. The inbox is private, so nothing
// is refreshed.
func (s *Store) SendMessage(ctx context.Context, req message.CreateRequest) (*message.Receipt, error) {
	return s.api.SendMessage(ctx, req)
}

func (s *Store) MarkMessageRead(ctx context.Context, id string) error {
	return s.Messages.Mutate(ctx, func(ctx context.Context) error {
		return s.api.MarkMessageRead(ctx, id)
	})
}

// DeleteMessage has no server endpoint. It makes no request.
func (s *Store) DeleteMessage(_ context.Context, id string) error {
	s.logger.Warn("message delete not supported", "id", id)
	return ErrNotSupported
}
