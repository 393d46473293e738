package transport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/handlers"
	"github.com/rpggio/comicfolio/internal/domain/account"
	"github.com/rpggio/comicfolio/internal/domain/experience"
	"github.com/rpggio/comicfolio/internal/domain/gadget"
	"github.com/rpggio/comicfolio/internal/domain/message"
	"github.com/rpggio/comicfolio/internal/domain/project"
	"github.com/rpggio/comicfolio/internal/domain/skill"
	"github.com/rpggio/comicfolio/internal/gemini"
	"github.com/rpggio/comicfolio/internal/schema"
)

// ProjectService defines project operations needed by the API.
type ProjectService interface {
	List(ctx context.Context) ([]project.Project, error)
	Create(ctx context.Context, proj project.Project) (*project.Project, error)
	Update(ctx context.Context, proj project.Project) error
	Delete(ctx context.Context, id int64) error
}

// ExperienceService defines experience operations needed by the API.
type ExperienceService interface {
	List(ctx context.Context) ([]experience.Experience, error)
	Create(ctx context.Context, exp experience.Experience) (*experience.Experience, error)
	Update(ctx context.Context, exp experience.Experience) error
}

// SkillService defines skill operations needed by the API.
type SkillService interface {
	List(ctx context.Context) ([]skill.Skill, error)
	Create(ctx context.Context, sk skill.Skill) (*skill.Skill, error)
	Update(ctx context.Context, sk skill.Skill) error
	Delete(ctx context.Context, id int64) error
}

// GadgetService defines gadget operations needed by the API.
type GadgetService interface {
	List(ctx context.Context) ([]gadget.Gadget, error)
	Create(ctx context.Context, g gadget.Gadget) (*gadget.Gadget, error)
	Update(ctx context.Context, g gadget.Gadget) error
	Delete(ctx context.Context, id string) error
}

// MessageService defines inbox operations needed by the API.
type MessageService interface {
	List(ctx context.Context) ([]message.Message, error)
	Create(ctx context.Context, req message.CreateRequest) (*message.Receipt, error)
	MarkRead(ctx context.Context, id string) error
}

// AccountService is the session oracle backing the auth endpoints.
type AccountService interface {
	SignUp(ctx context.Context, req account.SignUpRequest) (*account.SessionView, error)
	SignIn(ctx context.Context, req account.SignInRequest) (*account.SessionView, error)
	Resolve(ctx context.Context, token string) (*account.SessionView, error)
	SignOut(ctx context.Context, token string) error
}

// Generator produces chat replies.
type Generator interface {
	Generate(ctx context.Context, history []gemini.Turn, prompt string) (string, error)
}

// Services contains all domain services needed by the API.
type Services struct {
	Projects    ProjectService
	Experiences ExperienceService
	Skills      SkillService
	Gadgets     GadgetService
	Messages    MessageService
	Accounts    AccountService
	Generator   Generator
}

// Limit is a per-client request budget.
type Limit struct {
	PerMinute int
	Burst     int
}

// Options wires the HTTP server.
type Options struct {
	Services       Services
	Cookies        *CookieSessions
	Validator      *schema.Validator
	Logger         *slog.Logger
	AllowedOrigins []string
	AllowSignUp    bool
	ContactLimit   Limit
	ChatLimit      Limit
	MCP            http.Handler
}

// Server holds handler dependencies.
type Server struct {
	svc         Services
	cookies     *CookieSessions
	validator   *schema.Validator
	logger      *slog.Logger
	allowSignUp bool
}

// NewServer creates the HTTP router: the REST API under /api, the MCP
// endpoint at /mcp and a health check.
func NewServer(opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	srv := &Server{
		svc:         opts.Services,
		cookies:     opts.Cookies,
		validator:   opts.Validator,
		logger:      logger,
		allowSignUp: opts.AllowSignUp,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	r.Get("/health", srv.handleHealth)
	if opts.MCP != nil {
		r.Handle("/mcp", opts.MCP)
		r.Handle("/mcp/*", opts.MCP)
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(srv.sessionMiddleware)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/sign-up/email", srv.handleSignUp)
			r.Post("/sign-in/email", srv.handleSignIn)
			r.Get("/get-session", srv.handleGetSession)
			r.Post("/sign-out", srv.handleSignOut)
		})

		r.Get("/projects", srv.listProjects)
		r.With(RequireSession).Post("/projects", srv.createProject)
		r.With(RequireSession).Put("/projects/{id}", srv.updateProject)
		r.With(RequireSession).Delete("/projects/{id}", srv.deleteProject)

		r.Get("/experiences", srv.listExperiences)
		r.With(RequireSession).Post("/experiences", srv.createExperience)
		r.With(RequireSession).Put("/experiences/{id}", srv.updateExperience)

		r.Get("/skills", srv.listSkills)
		r.With(RequireSession).Post("/skills", srv.createSkill)
		r.With(RequireSession).Put("/skills/{id}", srv.updateSkill)
		r.With(RequireSession).Delete("/skills/{id}", srv.deleteSkill)

		r.Get("/gadgets", srv.listGadgets)
		r.With(RequireSession).Post("/gadgets", srv.createGadget)
		r.With(RequireSession).Put("/gadgets/{id}", srv.updateGadget)
		r.With(RequireSession).Delete("/gadgets/{id}", srv.deleteGadget)

		r.With(RequireSession).Get("/messages", srv.listMessages)
		r.With(RateLimit(opts.ContactLimit, logger)).Post("/messages", srv.createMessage)
		r.With(RequireSession).Patch("/messages/{id}/read", srv.markMessageRead)

		r.With(RateLimit(opts.ChatLimit, logger)).Post("/chat", srv.handleChat)
	})

	if len(opts.AllowedOrigins) == 0 {
		return r
	}
	cors := handlers.CORS(
		handlers.AllowedOrigins(opts.AllowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
		handlers.AllowCredentials(),
	)
	return cors(r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Debug("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
			)
		})
	}
}
