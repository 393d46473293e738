package transport

import (
	"errors"
	"net/http"

	"github.com/rpggio/comicfolio/internal/gemini"
	"github.com/rpggio/comicfolio/internal/schema"
)

// CodeNotConfigured marks a 503 caused by a missing generation credential.
const CodeNotConfigured = "not_configured"

type chatRequest struct {
	Message string        `json:"message"`
	History []gemini.Turn `json:"history"`
}

type chatResponse struct {
	Text string `json:"text"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if !s.decode(w, r, schema.Chat, &req) {
		return
	}
	if s.svc.Generator == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "generation not configured", Code: CodeNotConfigured})
		return
	}

	text, err := s.svc.Generator.Generate(r.Context(), req.History, req.Message)
	if err != nil {
		if errors.Is(err, gemini.ErrNotConfigured) {
			writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "generation not configured", Code: CodeNotConfigured})
			return
		}
		s.logger.Warn("generation failed", "error", err)
		writeError(w, http.StatusBadGateway, "generation failed")
		return
	}
	writeJSON(w, http.StatusOK, chatResponse{Text: text})
}
