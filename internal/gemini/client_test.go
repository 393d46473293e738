package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

// wireContent mirrors the generateContent request body.
type wireContent struct {
	Role  string `json:"role"`
	Parts []struct {
		Text string `json:"text"`
	} `json:"parts"`
}

type wireRequest struct {
	SystemInstruction *wireContent  `json:"systemInstruction"`
	Contents          []wireContent `json:"contents"`
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c, err := NewClient(context.Background(), Config{APIKey: "k3y", BaseURL: server.URL})
	require.NoError(t, err)
	require.True(t, c.Configured())
	return c
}

func TestGenerate_NotConfigured(t *testing.T) {
	c, err := NewClient(context.Background(), Config{APIKey: "  "})
	require.NoError(t, err)
	require.False(t, c.Configured())

	_, err = c.Generate(context.Background(), nil, "hello")
	require.ErrorIs(t, err, ErrNotConfigured)
}

func TestGenerate_SendsHistoryAndInstruction(t *testing.T) {
	var got wireRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.True(t, strings.HasSuffix(r.URL.Path, "/models/gemini-2.5-flash:generateContent"), r.URL.Path)
		require.Equal(t, "k3y", r.Header.Get("x-goog-api-key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"POW! "},{"text":"ZAP!"}]}}]}`))
	})

	reply, err := c.Generate(context.Background(), []Turn{
		{Role: RoleModel, Text: "GREETINGS CITIZEN!"},
		{Role: RoleUser, Text: "who are you?"},
		{Role: RoleModel, Text: "A narrator."},
	}, "tell me more")
	require.NoError(t, err)
	require.Equal(t, "POW! ZAP!", reply)

	require.NotNil(t, got.SystemInstruction)
	require.Equal(t, SystemInstruction, got.SystemInstruction.Parts[0].Text)
	require.Len(t, got.Contents, 4)
	require.Equal(t, RoleModel, got.Contents[0].Role)
	require.Equal(t, RoleUser, got.Contents[3].Role)
	require.Equal(t, "tell me more", got.Contents[3].Parts[0].Text)
}

func TestGenerate_APIError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"API key invalid","status":"PERMISSION_DENIED"}}`))
	})

	_, err := c.Generate(context.Background(), nil, "hi")

	var apiErr genai.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusForbidden, apiErr.Code)
	require.Equal(t, "PERMISSION_DENIED", apiErr.Status)
}

func TestGenerate_EmptyCandidates(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	})

	_, err := c.Generate(context.Background(), nil, "hi")
	require.ErrorIs(t, err, ErrEmptyResponse)
}
