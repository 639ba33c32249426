package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LoveSim_Go/internal/config"
)

func TestCleanupLogs_KeepsMostRecent(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 12; i++ {
		name := fmt.Sprintf("session_2024-01-%02d_00-00-00.log", i+1)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))

	cleanupLogs(dir, 9)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var logs []string
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".log" {
			logs = append(logs, e.Name())
		}
	}
	assert.Len(t, logs, 9)
	assert.NotContains(t, logs, "session_2024-01-01_00-00-00.log")
	assert.Contains(t, logs, "session_2024-01-12_00-00-00.log")
	assert.FileExists(t, filepath.Join(dir, "notes.txt"))
}

func TestSetupLogger_CreatesSessionFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	dir := filepath.Join(t.TempDir(), "logs")
	cfg := &config.Config{
		LogDir:      dir,
		LogLevel:    "info",
		LogFormat:   "json",
		ServiceName: "lovesim-test",
		Environment: config.EnvDevelopment,
	}

	f, err := SetupLogger(cfg)
	require.NoError(t, err)
	defer f.Close()

	slog.Info("hello from test")

	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from test")
	assert.Contains(t, string(data), `"service":"lovesim-test"`)
}

type fakeServer struct {
	stopped bool
	err     error
}

func (f *fakeServer) Stop(context.Context) error {
	f.stopped = true
	return f.err
}

type fakePool struct{ closed bool }

func (f *fakePool) Close() { f.closed = true }

func TestGracefulShutdown_StopsServerThenClosesPool(t *testing.T) {
	srv := &fakeServer{err: errors.New("deadline exceeded")}
	pool := &fakePool{}

	GracefulShutdown(context.Background(), ShutdownComponents{Server: srv, DB: pool})

	assert.True(t, srv.stopped)
	assert.True(t, pool.closed, "pool must be closed even when server stop fails")
}

func TestGracefulShutdown_NilComponents(t *testing.T) {
	assert.NotPanics(t, func() {
		GracefulShutdown(context.Background(), ShutdownComponents{})
	})
}
