package transport

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rpggio/comicfolio/internal/domain/account"
	"github.com/rpggio/comicfolio/internal/domain/experience"
	"github.com/rpggio/comicfolio/internal/domain/gadget"
	"github.com/rpggio/comicfolio/internal/domain/message"
	"github.com/rpggio/comicfolio/internal/domain/project"
	"github.com/rpggio/comicfolio/internal/domain/skill"
	"github.com/rpggio/comicfolio/internal/schema"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

type successResponse struct {
	Success bool `json:"success"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// decode reads the body, validates it against the named schema and
// unmarshals it into dst. It writes the error response itself.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, name string, dst any) bool {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
		return false
	}
	if s.validator != nil {
		if err := s.validator.Validate(name, body); err != nil {
			if errors.Is(err, schema.ErrInvalid) {
				writeError(w, http.StatusBadRequest, err.Error())
				return false
			}
			s.logger.Error("schema validation error", "schema", name, "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return false
		}
	}
	if err := json.Unmarshal(body, dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

func intParam(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return id, true
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, project.ErrProjectNotFound),
		errors.Is(err, experience.ErrExperienceNotFound),
		errors.Is(err, skill.ErrSkillNotFound),
		errors.Is(err, gadget.ErrGadgetNotFound),
		errors.Is(err, message.ErrMessageNotFound):
		return http.StatusNotFound
	case errors.Is(err, project.ErrInvalidInput),
		errors.Is(err, experience.ErrInvalidInput),
		errors.Is(err, skill.ErrInvalidInput),
		errors.Is(err, gadget.ErrInvalidInput),
		errors.Is(err, message.ErrInvalidInput),
		errors.Is(err, account.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, gadget.ErrGadgetExists),
		errors.Is(err, account.ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, account.ErrInvalidCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeServiceError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err)
		writeError(w, status, "internal error")
		return
	}
	writeError(w, status, err.Error())
}
