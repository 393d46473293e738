package dashboard

import (
	"github.com/rpggio/comicfolio/internal/domain/experience"
	"github.com/rpggio/comicfolio/internal/domain/gadget"
	"github.com/rpggio/comicfolio/internal/domain/project"
	"github.com/rpggio/comicfolio/internal/domain/skill"
)

// Templates for BeginCreate.

func ProjectTemplate() project.Project {
	return project.Project{Tags: []string{}}
}

func ExperienceTemplate() experience.Experience {
	return experience.Experience{Side: experience.SideLeft}
}

func SkillTemplate() skill.Skill {
	return skill.Skill{Name: "", Level: 50, Color: skill.DefaultColor}
}

func GadgetTemplate() gadget.Gadget {
	return gadget.Gadget{Icon: gadget.DefaultIcon}
}
