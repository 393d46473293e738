// Package gemini generates chat replies with the Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"
)

const (
	// DefaultModel is used when no model is configured.
	DefaultModel = "gemini-2.5-flash"

	// DefaultTimeout bounds a single generation request.
	DefaultTimeout = 60 * time.Second
)

// SystemInstruction is the persona sent with every request.
const SystemInstruction = "You are the AI Assistant for a 'Comic Book Style' Portfolio. " +
	"Speak in a dramatic, comic-book narrator style. " +
	"Be concise, punchy, and use words like 'POW!', 'ZAP!', and 'MEANWHILE...'. " +
	"Your goal is to hype up the developer's skills (React, TypeScript, AI). " +
	"If asked about the developer, say they are a code vigilante fighting bugs in the digital city."

var (
	// ErrNotConfigured indicates the API key is not set.
	ErrNotConfigured = errors.New("gemini api key not configured")

	// ErrEmptyResponse indicates the API answered without any text.
	ErrEmptyResponse = errors.New("gemini returned no content")
)

// Roles accepted in conversation history.
const (
	RoleUser  = genai.RoleUser
	RoleModel = genai.RoleModel
)

// Turn is one prior exchange in the conversation.
type Turn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// Config configures a Client.
type Config struct {
	APIKey            string
	Model             string
	BaseURL           string
	SystemInstruction string
	Timeout           time.Duration
	HTTPClient        *http.Client
}

// Client starts a chat per request, seeded with the caller's history.
type Client struct {
	genai  *genai.Client
	model  string
	config *genai.GenerateContentConfig
}

// NewClient creates a client, filling defaults for unset fields. Without an
// API key the client is returned unconfigured and Generate reports
// ErrNotConfigured.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	instruction := cfg.SystemInstruction
	if instruction == "" {
		instruction = SystemInstruction
	}
	c := &Client{
		model: cfg.Model,
		config: &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{genai.NewPartFromText(instruction)}},
		},
	}
	if c.model == "" {
		c.model = DefaultModel
	}

	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return c, nil
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.HTTPClient,
		HTTPOptions: genai.HTTPOptions{
			BaseURL: cfg.BaseURL,
			Timeout: &timeout,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	c.genai = client
	return c, nil
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool {
	return c.genai != nil
}

// Generate sends the history plus prompt and returns the model's text.
func (c *Client) Generate(ctx context.Context, history []Turn, prompt string) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	contents := make([]*genai.Content, 0, len(history))
	for _, turn := range history {
		contents = append(contents, genai.NewContentFromText(turn.Text, genai.Role(turn.Role)))
	}

	chat, err := c.genai.Chats.Create(ctx, c.model, c.config, contents)
	if err != nil {
		return "", fmt.Errorf("starting chat: %w", err)
	}
	resp, err := chat.SendMessage(ctx, genai.Part{Text: prompt})
	if err != nil {
		return "", fmt.Errorf("calling gemini: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
