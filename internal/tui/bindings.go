package tui

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/rpggio/comicfolio/internal/dashboard"
	"github.com/rpggio/comicfolio/internal/domain/experience"
	"github.com/rpggio/comicfolio/internal/domain/gadget"
	"github.com/rpggio/comicfolio/internal/domain/project"
	"github.com/rpggio/comicfolio/internal/domain/skill"
)

var errInvalidField = errors.New("invalid field")

// binding connects a form to one typed editor.
type binding struct {
	title   string
	labels  []string
	values  []string
	apply   func(values []string) error
	save    func(ctx context.Context) error
	discard func()
}

func (b binding) form() *form {
	return newForm(b.title, b.labels, b.values)
}

func editorTitle(mode dashboard.Mode, kind string) string {
	if mode == dashboard.ModeCreate {
		return "New " + kind
	}
	return "Edit " + kind
}

func projectBinding(e *dashboard.Editor[project.Project]) binding {
	d := e.Draft()
	return binding{
		title:  editorTitle(e.Mode(), "project"),
		labels: []string{"Title", "Description", "Tags (comma separated)", "Image URL", "Link"},
		values: []string{d.Title, d.Description, project.JoinTags(d.Tags), d.ImageURL, d.Link},
		apply: func(v []string) error {
			e.Edit(func(p *project.Project) {
				p.Title = v[0]
				p.Description = v[1]
				p.Tags = project.ParseTags(v[2])
				p.ImageURL = v[3]
				p.Link = v[4]
			})
			return nil
		},
		save:    e.Save,
		discard: e.Discard,
	}
}

func experienceBinding(e *dashboard.Editor[experience.Experience]) binding {
	d := e.Draft()
	return binding{
		title:  editorTitle(e.Mode(), "experience"),
		labels: []string{"Role", "Company", "Period", "Description", "Side (left/right)"},
		values: []string{d.Role, d.Company, d.Period, d.Description, string(d.Side)},
		apply: func(v []string) error {
			side := experience.Side(strings.ToLower(strings.TrimSpace(v[4])))
			if side != experience.SideLeft && side != experience.SideRight {
				return fmt.Errorf("%w: side must be left or right", errInvalidField)
			}
			e.Edit(func(x *experience.Experience) {
				x.Role = v[0]
				x.Company = v[1]
				x.Period = v[2]
				x.Description = v[3]
				x.Side = side
			})
			return nil
		},
		save:    e.Save,
		discard: e.Discard,
	}
}

func skillBinding(e *dashboard.Editor[skill.Skill]) binding {
	d := e.Draft()
	return binding{
		title:  editorTitle(e.Mode(), "skill"),
		labels: []string{"Name", "Power level", "Color (" + strings.Join(skill.Colors, ", ") + ")"},
		values: []string{d.Name, strconv.Itoa(d.Level), d.Color},
		apply: func(v []string) error {
			level, err := strconv.Atoi(strings.TrimSpace(v[1]))
			if err != nil {
				return fmt.Errorf("%w: power level must be a number", errInvalidField)
			}
			color := strings.TrimSpace(v[2])
			if !slices.Contains(skill.Colors, color) {
				return fmt.Errorf("%w: unknown color %q", errInvalidField, color)
			}
			e.Edit(func(s *skill.Skill) {
				s.Name = v[0]
				s.Level = level
				s.Color = color
			})
			return nil
		},
		save:    e.Save,
		discard: e.Discard,
	}
}

// Gadget ids are chosen on creation only.
func gadgetBinding(e *dashboard.Editor[gadget.Gadget]) binding {
	d := e.Draft()
	if e.Mode() == dashboard.ModeCreate {
		return binding{
			title:  editorTitle(e.Mode(), "gadget"),
			labels: []string{"ID (blank to generate)", "Name", "Icon", "Description"},
			values: []string{d.ID, d.Name, d.Icon, d.Description},
			apply: func(v []string) error {
				e.Edit(func(g *gadget.Gadget) {
					g.ID = strings.TrimSpace(v[0])
					g.Name = v[1]
					g.Icon = v[2]
					g.Description = v[3]
				})
				return nil
			},
			save:    e.Save,
			discard: e.Discard,
		}
	}
	return binding{
		title:  editorTitle(e.Mode(), "gadget") + " " + d.ID,
		labels: []string{"Name", "Icon", "Description"},
		values: []string{d.Name, d.Icon, d.Description},
		apply: func(v []string) error {
			e.Edit(func(g *gadget.Gadget) {
				g.Name = v[0]
				g.Icon = v[1]
				g.Description = v[2]
			})
			return nil
		},
		save:    e.Save,
		discard: e.Discard,
	}
}
