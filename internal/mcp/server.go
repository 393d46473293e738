package mcp

import (
	"context"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/comicfolio/internal/domain/experience"
	"github.com/rpggio/comicfolio/internal/domain/gadget"
	"github.com/rpggio/comicfolio/internal/domain/project"
	"github.com/rpggio/comicfolio/internal/domain/skill"
)

// ProjectLister lists portfolio projects.
type ProjectLister interface {
	List(ctx context.Context) ([]project.Project, error)
}

// ExperienceLister lists timeline entries.
type ExperienceLister interface {
	List(ctx context.Context) ([]experience.Experience, error)
}

// SkillLister lists skills.
type SkillLister interface {
	List(ctx context.Context) ([]skill.Skill, error)
}

// GadgetLister lists gadgets.
type GadgetLister interface {
	List(ctx context.Context) ([]gadget.Gadget, error)
}

// Services contains the read-only content sources exposed over MCP.
type Services struct {
	Projects    ProjectLister
	Experiences ExperienceLister
	Skills      SkillLister
	Gadgets     GadgetLister
}

// Config contains server configuration.
type Config struct {
	Services Services
	Version  string
	Logger   *slog.Logger
}

// NewServer creates an MCP server exposing the public portfolio content as
// resources and tools. Nothing here mutates content.
func NewServer(cfg Config) *sdkmcp.Server {
	version := cfg.Version
	if version == "" {
		version = "0.1.0"
	}
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "comicfolio",
		Version: version,
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	registerDocResources(server)
	registerContentResources(server, cfg.Services)

	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, cfg.Services)

	return server
}
