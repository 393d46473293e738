// Package testserver runs the full HTTP stack over an in-memory database.
package testserver

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/comicfolio/internal/domain/account"
	"github.com/rpggio/comicfolio/internal/domain/experience"
	"github.com/rpggio/comicfolio/internal/domain/gadget"
	"github.com/rpggio/comicfolio/internal/domain/message"
	"github.com/rpggio/comicfolio/internal/domain/project"
	"github.com/rpggio/comicfolio/internal/domain/skill"
	"github.com/rpggio/comicfolio/internal/gemini"
	"github.com/rpggio/comicfolio/internal/mcp"
	"github.com/rpggio/comicfolio/internal/schema"
	"github.com/rpggio/comicfolio/internal/sqlite"
	"github.com/rpggio/comicfolio/internal/transport"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// AdminEmail and AdminPassword identify the account every test server has.
const (
	AdminName     = "Test Admin"
	AdminEmail    = "admin@example.com"
	AdminPassword = "correct-horse"
)

// GeneratorFunc adapts a function to the chat generator interface.
type GeneratorFunc func(ctx context.Context, history []gemini.Turn, prompt string) (string, error)

func (f GeneratorFunc) Generate(ctx context.Context, history []gemini.Turn, prompt string) (string, error) {
	return f(ctx, history, prompt)
}

type options struct {
	seed      bool
	generator transport.Generator
	signUp    bool
	limits    transport.Limit
}

// Option configures a test server.
type Option func(*options)

// WithSeed fills the database with the starter portfolio.
func WithSeed() Option {
	return func(o *options) { o.seed = true }
}

// WithGenerator enables the chat endpoint.
func WithGenerator(gen transport.Generator) Option {
	return func(o *options) { o.generator = gen }
}

// WithoutSignUp disables account registration.
func WithoutSignUp() Option {
	return func(o *options) { o.signUp = false }
}

// WithContactLimit rate limits the contact form.
func WithContactLimit(perMinute, burst int) Option {
	return func(o *options) { o.limits = transport.Limit{PerMinute: perMinute, Burst: burst} }
}

type TestServer struct {
	Server   *httptest.Server
	DB       *sqlite.DB
	Accounts *account.Service
}

// URL returns the API root, suitable for client.New.
func (ts *TestServer) URL() string {
	return ts.Server.URL + "/api"
}

func New(t *testing.T, opts ...Option) *TestServer {
	t.Helper()

	o := options{signUp: true}
	for _, opt := range opts {
		opt(&o)
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())
	if o.seed {
		require.NoError(t, sqlite.Seed(context.Background(), db))
	}

	projectSvc := project.NewService(sqlite.NewProjectRepository(db), nil)
	experienceSvc := experience.NewService(sqlite.NewExperienceRepository(db), nil)
	skillSvc := skill.NewService(sqlite.NewSkillRepository(db), nil)
	gadgetSvc := gadget.NewService(sqlite.NewGadgetRepository(db), nil)
	messageSvc := message.NewService(sqlite.NewMessageRepository(db), nil)
	accountSvc := account.NewService(sqlite.NewAccountRepository(db), time.Hour, nil, account.WithHashCost(bcrypt.MinCost))

	validator, err := schema.New()
	require.NoError(t, err)

	mcpServer := mcp.NewServer(mcp.Config{
		Services: mcp.Services{
			Projects:    projectSvc,
			Experiences: experienceSvc,
			Skills:      skillSvc,
			Gadgets:     gadgetSvc,
		},
		Version: "test",
	})
	mcpHandler := sdkmcp.NewStreamableHTTPHandler(
		func(*http.Request) *sdkmcp.Server { return mcpServer },
		&sdkmcp.StreamableHTTPOptions{Stateless: true},
	)

	handler := transport.NewServer(transport.Options{
		Services: transport.Services{
			Projects:    projectSvc,
			Experiences: experienceSvc,
			Skills:      skillSvc,
			Gadgets:     gadgetSvc,
			Messages:    messageSvc,
			Accounts:    accountSvc,
			Generator:   o.generator,
		},
		Cookies:      transport.NewCookieSessions([]byte("test-session-secret-0123456789ab"), time.Hour, false),
		Validator:    validator,
		AllowSignUp:  o.signUp,
		ContactLimit: o.limits,
		MCP:          mcpHandler,
	})
	server := httptest.NewServer(handler)

	ts := &TestServer{
		Server:   server,
		DB:       db,
		Accounts: accountSvc,
	}

	_, err = accountSvc.SignUp(context.Background(), account.SignUpRequest{
		Name:     AdminName,
		Email:    AdminEmail,
		Password: AdminPassword,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		server.Close()
		_ = db.Close()
	})

	return ts
}
