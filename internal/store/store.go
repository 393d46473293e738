// Package store caches the portfolio collections on the client and keeps
// them in step with the server after every write.
package store

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/rpggio/comicfolio/internal/domain/experience"
	"github.com/rpggio/comicfolio/internal/domain/gadget"
	"github.com/rpggio/comicfolio/internal/domain/message"
	"github.com/rpggio/comicfolio/internal/domain/project"
	"github.com/rpggio/comicfolio/internal/domain/skill"
)

var (
	// ErrReloadFailed means the write succeeded but the follow-up refresh
	// did not; the cache still holds the previous snapshot.
	ErrReloadFailed = errors.New("reload after write failed")

	// ErrNotSupported marks operations the backend has no endpoint for.
	ErrNotSupported = errors.New("operation not supported")
)

// API is the backend surface the store needs. *client.Client satisfies it.
type API interface {
	ListProjects(ctx context.Context) ([]project.Project, error)
	CreateProject(ctx context.Context, p project.Project) (*project.Project, error)
	UpdateProject(ctx context.Context, p project.Project) error
	DeleteProject(ctx context.Context, id int64) error

	ListExperiences(ctx context.Context) ([]experience.Experience, error)
	CreateExperience(ctx context.Context, e experience.Experience) (*experience.Experience, error)
	UpdateExperience(ctx context.Context, e experience.Experience) error

	ListSkills(ctx context.Context) ([]skill.Skill, error)
	CreateSkill(ctx context.Context, s skill.Skill) (*skill.Skill, error)
	UpdateSkill(ctx context.Context, s skill.Skill) error
	DeleteSkill(ctx context.Context, id int64) error

	ListGadgets(ctx context.Context) ([]gadget.Gadget, error)
	CreateGadget(ctx context.Context, g gadget.Gadget) (*gadget.Gadget, error)
	UpdateGadget(ctx context.Context, g gadget.Gadget) error
	DeleteGadget(ctx context.Context, id string) error

	ListMessages(ctx context.Context) ([]message.Message, error)
	SendMessage(ctx context.Context, req message.CreateRequest) (*message.Receipt, error)
	MarkMessageRead(ctx context.Context, id string) error
}

// Store holds one Resource per collection.
type Store struct {
	api    API
	logger *slog.Logger

	Projects    *Resource[project.Project]
	Experiences *Resource[experience.Experience]
	Skills      *Resource[skill.Skill]
	Gadgets     *Resource[gadget.Gadget]
	Messages    *Resource[message.Message]

	ready     chan struct{}
	readyOnce sync.Once
}

// New creates an empty store. Nothing is fetched until LoadPublic.
func New(api API, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{
		api:         api,
		logger:      logger,
		Projects:    NewResource[project.Project]("projects", api.ListProjects, logger),
		Experiences: NewResource[experience.Experience]("experiences", api.ListExperiences, logger),
		Skills:      NewResource[skill.Skill]("skills", api.ListSkills, logger),
		Gadgets:     NewResource[gadget.Gadget]("gadgets", api.ListGadgets, logger),
		Messages:    NewResource[message.Message]("messages", api.ListMessages, logger),
		ready:       make(chan struct{}),
	}
}

// LoadPublic refreshes the four public collections in parallel. Each
// failure is independent; all of them are joined into the result. The
// loading gate opens once every refresh has settled.
func (s *Store) LoadPublic(ctx context.Context) error {
	refreshes := []func(context.Context) error{
		s.Projects.Refresh,
		s.Experiences.Refresh,
		s.Skills.Refresh,
		s.Gadgets.Refresh,
	}

	errs := make([]error, len(refreshes))
	var wg sync.WaitGroup
	for i, refresh := range refreshes {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = refresh(ctx)
		}()
	}
	wg.Wait()
	s.readyOnce.Do(func() { close(s.ready) })

	err := errors.Join(errs...)
	if err != nil {
		s.logger.Error("public load incomplete", "error", err)
	}
	return err
}

// Loading reports whether the initial public load is still in flight.
func (s *Store) Loading() bool {
	select {
	case <-s.ready:
		return false
	default:
		return true
	}
}

// Ready is closed when the initial public load has settled.
func (s *Store) Ready() <-chan struct{} {
	return s.ready
}

// RefreshMessages reloads the inbox. Failures, including the 401 an
// anonymous visitor gets, are logged and otherwise ignored.
func (s *Store) RefreshMessages(ctx context.Context) {
	if err := s.Messages.Refresh(ctx); err != nil {
		s.logger.Warn("messages unavailable", "error", err)
	}
}

// UnreadCount counts cached messages not yet marked read.
func (s *Store) UnreadCount() int {
	return message.Unread(s.Messages.List())
}
