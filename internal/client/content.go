package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rpggio/comicfolio/internal/domain/experience"
	"github.com/rpggio/comicfolio/internal/domain/gadget"
	"github.com/rpggio/comicfolio/internal/domain/message"
	"github.com/rpggio/comicfolio/internal/domain/project"
	"github.com/rpggio/comicfolio/internal/domain/skill"
)

func itemPath(collection string, id int64) string {
	return "/" + collection + "/" + strconv.FormatInt(id, 10)
}

func (c *Client) ListProjects(ctx context.Context) ([]project.Project, error) {
	var out []project.Project
	if err := c.do(ctx, http.MethodGet, "/projects", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateProject(ctx context.Context, p project.Project) (*project.Project, error) {
	var out project.Project
	if err := c.do(ctx, http.MethodPost, "/projects", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProject(ctx context.Context, p project.Project) error {
	return c.do(ctx, http.MethodPut, itemPath("projects", p.ID), p, nil)
}

func (c *Client) DeleteProject(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, itemPath("projects", id), nil, nil)
}

func (c *Client) ListExperiences(ctx context.Context) ([]experience.Experience, error) {
	var out []experience.Experience
	if err := c.do(ctx, http.MethodGet, "/experiences", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateExperience(ctx context.Context, e experience.Experience) (*experience.Experience, error) {
	var out experience.Experience
	if err := c.do(ctx, http.MethodPost, "/experiences", e, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateExperience(ctx context.Context, e experience.Experience) error {
	return c.do(ctx, http.MethodPut, itemPath("experiences", e.ID), e, nil)
}

func (c *Client) ListSkills(ctx context.Context) ([]skill.Skill, error) {
	var out []skill.Skill
	if err := c.do(ctx, http.MethodGet, "/skills", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateSkill(ctx context.Context, s skill.Skill) (*skill.Skill, error) {
	var out skill.Skill
	if err := c.do(ctx, http.MethodPost, "/skills", s, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateSkill(ctx context.Context, s skill.Skill) error {
	return c.do(ctx, http.MethodPut, itemPath("skills", s.ID), s, nil)
}

func (c *Client) DeleteSkill(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, itemPath("skills", id), nil, nil)
}

func (c *Client) ListGadgets(ctx context.Context) ([]gadget.Gadget, error) {
	var out []gadget.Gadget
	if err := c.do(ctx, http.MethodGet, "/gadgets", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateGadget(ctx context.Context, g gadget.Gadget) (*gadget.Gadget, error) {
	var out gadget.Gadget
	if err := c.do(ctx, http.MethodPost, "/gadgets", g, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateGadget(ctx context.Context, g gadget.Gadget) error {
	return c.do(ctx, http.MethodPut, "/gadgets/"+url.PathEscape(g.ID), g, nil)
}

func (c *Client) DeleteGadget(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/gadgets/"+url.PathEscape(id), nil, nil)
}

// ListMessages needs a session; anonymous callers get ErrUnauthorized.
func (c *Client) ListMessages(ctx context.Context) ([]message.Message, error) {
	var out []message.Message
	if err := c.do(ctx, http.MethodGet, "/messages", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SendMessage submits the public contact form.
func (c *Client) SendMessage(ctx context.Context, req message.CreateRequest) (*message.Receipt, error) {
	var out message.Receipt
	if err := c.do(ctx, http.MethodPost, "/messages", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) MarkMessageRead(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPatch, "/messages/"+url.PathEscape(id)+"/read", nil, nil)
}
