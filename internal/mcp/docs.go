package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `comicfolio serves a developer portfolio: projects, a career timeline, skills and a gadget belt.

Everything here is read-only. Content is edited through the admin dashboard.

- Start with search_portfolio to find anything by keyword.
- list_projects accepts an optional tag filter.
- Raw collections are also available as resources under folio://content/.
- folio://docs/index describes the data model.
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "folio://docs/index",
		Name:        "docs_index",
		Title:       "comicfolio data model",
		Description: "Field reference for the portfolio collections.",
		Content: `# comicfolio data model

## Project
- id: integer
- title, description: text
- tags: list of technology names
- imageUrl: preview image
- link: optional external link

## Experience
- id: integer
- role, company, period, description: text (period is free text, e.g. "2020 - 2022")
- side: "left" or "right", the timeline column

## Skill
- id: integer
- name: text
- level: integer power level, usually 0-100 but not capped
- color: display color token

## Gadget
- id: short slug such as "git"
- name, icon, description: text

Messages sent through the contact form are private and not exposed here.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
