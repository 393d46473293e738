// Package dashboard routes between the admin tabs and owns their edit
// buffers.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rpggio/comicfolio/internal/domain/experience"
	"github.com/rpggio/comicfolio/internal/domain/gadget"
	"github.com/rpggio/comicfolio/internal/domain/project"
	"github.com/rpggio/comicfolio/internal/domain/skill"
	"github.com/rpggio/comicfolio/internal/store"
)

type Tab string

const (
	TabOverview   Tab = "overview"
	TabProjects   Tab = "projects"
	TabExperience Tab = "experience"
	TabAbilities  Tab = "abilities"
	TabMessages   Tab = "messages"
)

// Tabs lists the tabs in display order.
var Tabs = []Tab{TabOverview, TabProjects, TabExperience, TabAbilities, TabMessages}

// Section is the sub-view of the abilities tab.
type Section string

const (
	SectionSkills  Section = "skills"
	SectionGadgets Section = "gadgets"
)

var (
	ErrUnknownTab     = errors.New("unknown tab")
	ErrUnknownSection = errors.New("unknown section")
	ErrUnknownMode    = errors.New("unknown editor mode")
)

// Router holds the active tab and one editor per content type. Tabs are
// flat; there is no history.
type Router struct {
	store  *store.Store
	logger *slog.Logger

	mu      sync.Mutex
	tab     Tab
	section Section

	Projects    *Editor[project.Project]
	Experiences *Editor[experience.Experience]
	Skills      *Editor[skill.Skill]
	Gadgets     *Editor[gadget.Gadget]
}

func NewRouter(s *store.Store, logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	r := &Router{
		store:   s,
		logger:  logger,
		tab:     TabOverview,
		section: SectionSkills,
	}
	r.Projects = NewEditor(dispatch(s.CreateProject, s.UpdateProject))
	r.Experiences = NewEditor(dispatch(s.CreateExperience, s.UpdateExperience))
	r.Skills = NewEditor(dispatch(s.CreateSkill, s.UpdateSkill))
	r.Gadgets = NewEditor(dispatch(s.CreateGadget, s.UpdateGadget))
	return r
}

func dispatch[T any](create, update func(context.Context, T) error) SaveFunc[T] {
	return func(ctx context.Context, mode Mode, draft T) error {
		switch mode {
		case ModeCreate:
			return create(ctx, draft)
		case ModeEdit:
			return update(ctx, draft)
		default:
			return fmt.Errorf("%w: %q", ErrUnknownMode, mode)
		}
	}
}

// Mount runs when the dashboard is shown. It loads the inbox.
func (r *Router) Mount(ctx context.Context) {
	r.store.RefreshMessages(ctx)
}

func (r *Router) Tab() Tab {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tab
}

// Select switches tabs. Every open editor is discarded without saving.
func (r *Router) Select(tab Tab) error {
	if !validTab(tab) {
		return fmt.Errorf("%w: %q", ErrUnknownTab, tab)
	}
	r.mu.Lock()
	r.tab = tab
	r.mu.Unlock()

	r.Projects.Discard()
	r.Experiences.Discard()
	r.Skills.Discard()
	r.Gadgets.Discard()
	return nil
}

func (r *Router) Section() Section {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.section
}

// SelectSection switches the abilities sub-view and discards its editors.
func (r *Router) SelectSection(sec Section) error {
	if sec != SectionSkills && sec != SectionGadgets {
		return fmt.Errorf("%w: %q", ErrUnknownSection, sec)
	}
	r.mu.Lock()
	r.section = sec
	r.mu.Unlock()

	r.Skills.Discard()
	r.Gadgets.Discard()
	return nil
}

func validTab(tab Tab) bool {
	for _, t := range Tabs {
		if t == tab {
			return true
		}
	}
	return false
}

func (r *Router) DeleteProject(ctx context.Context, id int64) error {
	return r.store.DeleteProject(ctx, id)
}

func (r *Router) DeleteExperience(ctx context.Context, id int64) error {
	return r.store.DeleteExperience(ctx, id)
}

func (r *Router) DeleteSkill(ctx context.Context, id int64) error {
	return r.store.DeleteSkill(ctx, id)
}

func (r *Router) DeleteGadget(ctx context.Context, id string) error {
	return r.store.DeleteGadget(ctx, id)
}

func (r *Router) MarkRead(ctx context.Context, id string) error {
	return r.store.MarkMessageRead(ctx, id)
}

func (r *Router) DeleteMessage(ctx context.Context, id string) error {
	return r.store.DeleteMessage(ctx, id)
}

// Overview is the summary shown on the overview tab.
type Overview struct {
	Projects    int
	Experiences int
	Skills      int
	Gadgets     int
	Unread      int
}

func (r *Router) Overview() Overview {
	return Overview{
		Projects:    r.store.Projects.Len(),
		Experiences: r.store.Experiences.Len(),
		Skills:      r.store.Skills.Len(),
		Gadgets:     r.store.Gadgets.Len(),
		Unread:      r.store.UnreadCount(),
	}
}

// Capabilities lists the actions the backend can perform, so views can
// label the rest as unsupported.
type Capabilities struct {
	DeleteExperience bool
	DeleteMessage    bool
}

func (r *Router) Capabilities() Capabilities {
	return Capabilities{}
}
