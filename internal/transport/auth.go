package transport

import (
	"context"
	"errors"
	"net/http"

	"github.com/rpggio/comicfolio/internal/domain/account"
	"github.com/rpggio/comicfolio/internal/schema"
)

type sessionKey struct{}

// SessionFromContext returns the resolved login session, if present.
func SessionFromContext(ctx context.Context) (*account.SessionView, bool) {
	view, ok := ctx.Value(sessionKey{}).(*account.SessionView)
	return view, ok && view != nil
}

// sessionMiddleware resolves the cookie token into a session. Requests
// without a valid session continue anonymously.
func (s *Server) sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := s.cookies.Token(r)
		if token == "" || s.svc.Accounts == nil {
			next.ServeHTTP(w, r)
			return
		}

		view, err := s.svc.Accounts.Resolve(r.Context(), token)
		if err != nil {
			if !errors.Is(err, account.ErrSessionNotFound) {
				s.logger.Warn("session lookup failed", "error", err)
			}
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), sessionKey{}, view)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireSession rejects anonymous requests with 401.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := SessionFromContext(r.Context()); !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleSignUp(w http.ResponseWriter, r *http.Request) {
	if !s.allowSignUp {
		writeError(w, http.StatusForbidden, "sign-up is disabled")
		return
	}
	var req account.SignUpRequest
	if !s.decode(w, r, schema.SignUp, &req) {
		return
	}
	view, err := s.svc.Accounts.SignUp(r.Context(), req)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.startSession(w, r, view)
}

func (s *Server) handleSignIn(w http.ResponseWriter, r *http.Request) {
	var req account.SignInRequest
	if !s.decode(w, r, schema.SignIn, &req) {
		return
	}
	view, err := s.svc.Accounts.SignIn(r.Context(), req)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.startSession(w, r, view)
}

func (s *Server) startSession(w http.ResponseWriter, r *http.Request, view *account.SessionView) {
	if err := s.cookies.Save(w, r, view.Session.Token); err != nil {
		s.logger.Error("failed to write session cookie", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// handleGetSession answers the session oracle query: the session, or null.
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	view, ok := SessionFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusOK, nil)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleSignOut(w http.ResponseWriter, r *http.Request) {
	if token := s.cookies.Token(r); token != "" {
		if err := s.svc.Accounts.SignOut(r.Context(), token); err != nil {
			s.logger.Warn("sign-out failed", "error", err)
		}
	}
	if err := s.cookies.Clear(w, r); err != nil {
		s.logger.Warn("failed to clear session cookie", "error", err)
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}
