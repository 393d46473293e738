package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

type contentResource struct {
	uri         string
	name        string
	description string
	load        func(ctx context.Context) (any, error)
}

func contentResources(svc Services) []contentResource {
	return []contentResource{
		{
			uri:         "folio://content/projects",
			name:        "projects",
			description: "All portfolio projects as a JSON array.",
			load:        func(ctx context.Context) (any, error) { return svc.Projects.List(ctx) },
		},
		{
			uri:         "folio://content/experiences",
			name:        "experiences",
			description: "Career timeline entries as a JSON array.",
			load:        func(ctx context.Context) (any, error) { return svc.Experiences.List(ctx) },
		},
		{
			uri:         "folio://content/skills",
			name:        "skills",
			description: "Skills with power levels as a JSON array.",
			load:        func(ctx context.Context) (any, error) { return svc.Skills.List(ctx) },
		},
		{
			uri:         "folio://content/gadgets",
			name:        "gadgets",
			description: "Tools in the utility belt as a JSON array.",
			load:        func(ctx context.Context) (any, error) { return svc.Gadgets.List(ctx) },
		},
	}
}

func registerContentResources(server *sdkmcp.Server, svc Services) {
	for _, res := range contentResources(svc) {
		server.AddResource(&sdkmcp.Resource{
			URI:         res.uri,
			Name:        res.name,
			Description: res.description,
			MIMEType:    "application/json",
		}, func(ctx context.Context, _ *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			items, err := res.load(ctx)
			if err != nil {
				return nil, fmt.Errorf("loading %s: %w", res.name, err)
			}
			data, err := json.Marshal(items)
			if err != nil {
				return nil, fmt.Errorf("encoding %s: %w", res.name, err)
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      res.uri,
					MIMEType: "application/json",
					Text:     string(data),
				}},
			}, nil
		})
	}
}
