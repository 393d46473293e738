package transport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rpggio/comicfolio/internal/domain/message"
	"github.com/rpggio/comicfolio/internal/schema"
)

func (s *Server) listMessages(w http.ResponseWriter, r *http.Request) {
	list, err := s.svc.Messages.List(r.Context())
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) createMessage(w http.ResponseWriter, r *http.Request) {
	var req message.CreateRequest
	if !s.decode(w, r, schema.Message, &req) {
		return
	}
	receipt, err := s.svc.Messages.Create(r.Context(), req)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, receipt)
}

func (s *Server) markMessageRead(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Messages.MarkRead(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}
