package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gorilla/securecookie"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/comicfolio/internal/config"
	"github.com/rpggio/comicfolio/internal/domain/account"
	"github.com/rpggio/comicfolio/internal/domain/experience"
	"github.com/rpggio/comicfolio/internal/domain/gadget"
	"github.com/rpggio/comicfolio/internal/domain/message"
	"github.com/rpggio/comicfolio/internal/domain/project"
	"github.com/rpggio/comicfolio/internal/domain/skill"
	"github.com/rpggio/comicfolio/internal/gemini"
	"github.com/rpggio/comicfolio/internal/logging"
	"github.com/rpggio/comicfolio/internal/mcp"
	"github.com/rpggio/comicfolio/internal/schema"
	"github.com/rpggio/comicfolio/internal/sqlite"
	"github.com/rpggio/comicfolio/internal/transport"
)

const sessionPurgeInterval = time.Hour

func main() {
	stdio := flag.Bool("stdio", false, "serve MCP over stdin/stdout instead of HTTP")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	// Use stderr for logs in stdio mode to keep stdout clean for JSON-RPC.
	logWriter := io.Writer(os.Stdout)
	if *stdio {
		logWriter = os.Stderr
	}
	logger, logCloser, err := logging.New(logWriter, cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "log file error: %v\n", err)
		os.Exit(1)
	}
	defer logCloser.Close()

	if err := ensureDBDir(cfg.DB.Path); err != nil {
		logger.Error("failed to prepare database path", "error", err)
		os.Exit(1)
	}

	db, err := sqlite.New(cfg.DB.Path)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	if cfg.DB.Seed {
		if err := sqlite.Seed(context.Background(), db); err != nil {
			logger.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	projectSvc := project.NewService(sqlite.NewProjectRepository(db), logger)
	experienceSvc := experience.NewService(sqlite.NewExperienceRepository(db), logger)
	skillSvc := skill.NewService(sqlite.NewSkillRepository(db), logger)
	gadgetSvc := gadget.NewService(sqlite.NewGadgetRepository(db), logger)
	messageSvc := message.NewService(sqlite.NewMessageRepository(db), logger)
	accountSvc := account.NewService(sqlite.NewAccountRepository(db), cfg.Auth.SessionTTL, logger)

	mcpServer := mcp.NewServer(mcp.Config{
		Services: mcp.Services{
			Projects:    projectSvc,
			Experiences: experienceSvc,
			Skills:      skillSvc,
			Gadgets:     gadgetSvc,
		},
		Logger: logger,
	})

	if *stdio {
		runStdioMode(logger, mcpServer)
		return
	}

	validator, err := schema.New()
	if err != nil {
		logger.Error("failed to load request schemas", "error", err)
		os.Exit(1)
	}

	secret := []byte(cfg.Auth.SessionSecret)
	if len(secret) == 0 {
		// Sessions will not survive a restart.
		secret = securecookie.GenerateRandomKey(32)
		logger.Warn("no session secret configured, using a random key")
	}

	var generator transport.Generator
	gem, err := gemini.NewClient(context.Background(), gemini.Config{
		APIKey:  cfg.Gemini.APIKey,
		Model:   cfg.Gemini.Model,
		BaseURL: cfg.Gemini.BaseURL,
	})
	if err != nil {
		logger.Error("failed to create gemini client", "error", err)
		os.Exit(1)
	}
	if gem.Configured() {
		generator = gem
	} else {
		logger.Warn("gemini api key not set, chat is disabled")
	}

	var mcpHandler http.Handler
	if cfg.MCP.Enabled {
		mcpHandler = sdkmcp.NewStreamableHTTPHandler(
			func(r *http.Request) *sdkmcp.Server { return mcpServer },
			&sdkmcp.StreamableHTTPOptions{
				Stateless:      false,
				SessionTimeout: 30 * time.Minute,
			},
		)
	}

	handler := transport.NewServer(transport.Options{
		Services: transport.Services{
			Projects:    projectSvc,
			Experiences: experienceSvc,
			Skills:      skillSvc,
			Gadgets:     gadgetSvc,
			Messages:    messageSvc,
			Accounts:    accountSvc,
			Generator:   generator,
		},
		Cookies:        transport.NewCookieSessions(secret, cfg.Auth.SessionTTL, cfg.Auth.SecureCookie),
		Validator:      validator,
		Logger:         logger,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowSignUp:    cfg.Auth.AllowSignUp,
		ContactLimit:   transport.Limit{PerMinute: cfg.RateLimit.ContactPerMinute, Burst: cfg.RateLimit.Burst},
		ChatLimit:      transport.Limit{PerMinute: cfg.RateLimit.ChatPerMinute, Burst: cfg.RateLimit.Burst},
		MCP:            mcpHandler,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go purgeSessions(ctx, logger, accountSvc)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", addr, "mcp", cfg.MCP.Enabled, "chat", generator != nil)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
		}
	}()

	waitForShutdown(logger, httpServer)
}

func runStdioMode(logger *slog.Logger, mcpServer *sdkmcp.Server) {
	logger.Info("starting stdio transport")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-stop
		logger.Info("shutting down")
		cancel()
	}()

	// Run blocks until stdin closes or context is canceled
	if err := mcpServer.Run(ctx, &sdkmcp.StdioTransport{}); err != nil {
		logger.Error("stdio server error", "error", err)
		os.Exit(1)
	}
}

func purgeSessions(ctx context.Context, logger *slog.Logger, accounts *account.Service) {
	ticker := time.NewTicker(sessionPurgeInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := accounts.PurgeExpired(ctx); err != nil {
				logger.Warn("session purge failed", "error", err)
			}
		}
	}
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func waitForShutdown(logger *slog.Logger, server *http.Server) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}
