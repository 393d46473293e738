package mcp

import (
	"context"
	"strconv"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/comicfolio/internal/domain/experience"
	"github.com/rpggio/comicfolio/internal/domain/gadget"
	"github.com/rpggio/comicfolio/internal/domain/project"
	"github.com/rpggio/comicfolio/internal/domain/skill"
)

type listProjectsInput struct {
	Tag string `json:"tag,omitempty" jsonschema:"only return projects carrying this tag (case-insensitive)"`
}

type listProjectsOutput struct {
	Projects []project.Project `json:"projects"`
}

type emptyInput struct{}

type listExperiencesOutput struct {
	Experiences []experience.Experience `json:"experiences"`
}

type listSkillsOutput struct {
	Skills []skill.Skill `json:"skills"`
}

type listGadgetsOutput struct {
	Gadgets []gadget.Gadget `json:"gadgets"`
}

type searchInput struct {
	Query string `json:"query" jsonschema:"keyword matched against titles, names, tags and descriptions"`
}

// Match is one search hit.
type Match struct {
	Kind  string `json:"kind"`
	ID    string `json:"id"`
	Title string `json:"title"`
}

type searchOutput struct {
	Matches []Match `json:"matches"`
}

func registerTools(server *sdkmcp.Server, svc Services) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_projects",
		Description: "List portfolio projects, optionally filtered by tag.",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in listProjectsInput) (*sdkmcp.CallToolResult, listProjectsOutput, error) {
		list, err := svc.Projects.List(ctx)
		if err != nil {
			return nil, listProjectsOutput{}, err
		}
		return nil, listProjectsOutput{Projects: filterByTag(list, in.Tag)}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_experiences",
		Description: "List the career timeline in order.",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ emptyInput) (*sdkmcp.CallToolResult, listExperiencesOutput, error) {
		list, err := svc.Experiences.List(ctx)
		if err != nil {
			return nil, listExperiencesOutput{}, err
		}
		return nil, listExperiencesOutput{Experiences: nonNil(list)}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_skills",
		Description: "List skills with their power levels.",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ emptyInput) (*sdkmcp.CallToolResult, listSkillsOutput, error) {
		list, err := svc.Skills.List(ctx)
		if err != nil {
			return nil, listSkillsOutput{}, err
		}
		return nil, listSkillsOutput{Skills: nonNil(list)}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_gadgets",
		Description: "List the tools in the developer's utility belt.",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ emptyInput) (*sdkmcp.CallToolResult, listGadgetsOutput, error) {
		list, err := svc.Gadgets.List(ctx)
		if err != nil {
			return nil, listGadgetsOutput{}, err
		}
		return nil, listGadgetsOutput{Gadgets: nonNil(list)}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "search_portfolio",
		Description: "Find projects, experience, skills and gadgets mentioning a keyword.",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in searchInput) (*sdkmcp.CallToolResult, searchOutput, error) {
		matches, err := search(ctx, svc, in.Query)
		if err != nil {
			return nil, searchOutput{}, err
		}
		return nil, searchOutput{Matches: matches}, nil
	})
}

func filterByTag(list []project.Project, tag string) []project.Project {
	out := []project.Project{}
	tag = strings.TrimSpace(tag)
	for _, p := range list {
		if tag == "" || hasTag(p.Tags, tag) {
			out = append(out, p)
		}
	}
	return out
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

func search(ctx context.Context, svc Services, query string) ([]Match, error) {
	matches := []Match{}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return matches, nil
	}
	contains := func(fields ...string) bool {
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f), q) {
				return true
			}
		}
		return false
	}

	projects, err := svc.Projects.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range projects {
		if contains(append([]string{p.Title, p.Description}, p.Tags...)...) {
			matches = append(matches, Match{Kind: "project", ID: strconv.FormatInt(p.ID, 10), Title: p.Title})
		}
	}

	experiences, err := svc.Experiences.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, e := range experiences {
		if contains(e.Role, e.Company, e.Description) {
			matches = append(matches, Match{Kind: "experience", ID: strconv.FormatInt(e.ID, 10), Title: e.Role + " @ " + e.Company})
		}
	}

	skills, err := svc.Skills.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, s := range skills {
		if contains(s.Name) {
			matches = append(matches, Match{Kind: "skill", ID: strconv.FormatInt(s.ID, 10), Title: s.Name})
		}
	}

	gadgets, err := svc.Gadgets.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, g := range gadgets {
		if contains(g.ID, g.Name, g.Description) {
			matches = append(matches, Match{Kind: "gadget", ID: g.ID, Title: g.Name})
		}
	}
	return matches, nil
}

func nonNil[T any](list []T) []T {
	if list == nil {
		return []T{}
	}
	return list
}
