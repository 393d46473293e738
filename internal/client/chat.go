package client

import (
	"context"
	"errors"
	"net/http"

	"github.com/rpggio/comicfolio/internal/gemini"
)

// codeNotConfigured mirrors the server's marker for a missing generation key.
const codeNotConfigured = "not_configured"

type chatRequest struct {
	Message string        `json:"message"`
	History []gemini.Turn `json:"history"`
}

type chatResponse struct {
	Text string `json:"text"`
}

// Generate asks the server's chat endpoint for a reply. A server without a
// generation key yields gemini.ErrNotConfigured.
func (c *Client) Generate(ctx context.Context, history []gemini.Turn, prompt string) (string, error) {
	if history == nil {
		history = []gemini.Turn{}
	}
	var out chatResponse
	err := c.do(ctx, http.MethodPost, "/chat", chatRequest{Message: prompt, History: history}, &out)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Code == codeNotConfigured {
			return "", errors.Join(gemini.ErrNotConfigured, err)
		}
		return "", err
	}
	return out.Text, nil
}
