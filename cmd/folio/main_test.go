package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rpggio/comicfolio/internal/config"
	"github.com/rpggio/comicfolio/internal/testserver"
	"github.com/stretchr/testify/require"
)

func TestRun_QuitsAndFlushesLog(t *testing.T) {
	ts := testserver.New(t, testserver.WithSeed())

	cfg := config.Default()
	cfg.Client.APIURL = ts.URL()
	cfg.Log.Path = filepath.Join(t.TempDir(), "folio.log")

	err := run(cfg,
		tea.WithInput(strings.NewReader("\x03")),
		tea.WithOutput(io.Discard),
		tea.WithoutSignalHandler(),
	)
	require.NoError(t, err)

	data, err := os.ReadFile(cfg.Log.Path)
	require.NoError(t, err)
	require.Contains(t, string(data), "client starting")
	require.Contains(t, string(data), "client stopped")
}
