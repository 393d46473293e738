package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rpggio/comicfolio/internal/app"
	"github.com/rpggio/comicfolio/internal/chat"
	"github.com/rpggio/comicfolio/internal/client"
	"github.com/rpggio/comicfolio/internal/config"
	"github.com/rpggio/comicfolio/internal/dashboard"
	"github.com/rpggio/comicfolio/internal/logging"
	"github.com/rpggio/comicfolio/internal/store"
	"github.com/rpggio/comicfolio/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, tea.WithAltScreen()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run drives the terminal client until it quits. Deferred cleanup always
// runs before it returns.
func run(cfg config.Config, opts ...tea.ProgramOption) error {
	// The terminal belongs to the UI, so logs only go to a file.
	logger, logCloser, err := logging.New(io.Discard, cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer logCloser.Close()

	api := client.New(cfg.Client.APIURL, client.WithTimeout(cfg.Client.Timeout))
	st := store.New(api, logger)

	model := tui.New(context.Background(), tui.Deps{
		Controller: app.NewController(api, logger),
		Store:      st,
		Router:     dashboard.NewRouter(st, logger),
		Chat:       chat.NewSession(api, chat.WithMaxHistory(cfg.Client.ChatMaxHistory), chat.WithLogger(logger)),
		Logger:     logger,
	})

	logger.Info("client starting", "api", api.BaseURL())
	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		logger.Error("client stopped", "error", err)
		return err
	}
	logger.Info("client stopped")
	return nil
}
