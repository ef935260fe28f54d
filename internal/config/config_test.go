package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("ICBUTLER_CONFIG", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".local", "share", "icbutler", "icbutler.db"), cfg.Database.Path)
	require.Equal(t, "sqlite3", cfg.Database.Driver)
	require.Equal(t, "127.0.0.1:8480", cfg.Server.Listen)
	require.Equal(t, 10*time.Second, cfg.Client.Timeout)
	require.Equal(t, "ICButler", cfg.UI.Title)
	require.False(t, cfg.Remote())
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	data := `
[database]
path = "/tmp/tasks.db"
driver = "sqlite"

[client]
endpoint = "http://127.0.0.1:9000"
timeout = "3s"

[log]
level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	t.Setenv("ICBUTLER_CONFIG", path)
	t.Setenv("ICBUTLER_UI_TITLE", "Tasks")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "/tmp/tasks.db", cfg.Database.Path)
	require.Equal(t, "sqlite", cfg.Database.Driver)
	require.Equal(t, "http://127.0.0.1:9000", cfg.Client.Endpoint)
	require.Equal(t, 3*time.Second, cfg.Client.Timeout)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "Tasks", cfg.UI.Title)
	require.True(t, cfg.Remote())
}

func TestLoadMissingExplicitFile(t *testing.T) {
	t.Setenv("ICBUTLER_CONFIG", filepath.Join(t.TempDir(), "nope.toml"))

	_, err := Load()
	require.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	t.Setenv("ICBUTLER_CONFIG", path)

	in := Config{
		Database: DatabaseConfig{Path: "/data/icbutler.db", Driver: "sqlite3"},
		Server:   ServerConfig{Listen: "0.0.0.0:8480"},
		Client:   ClientConfig{Endpoint: "http://tasks.local:8480", Timeout: 5 * time.Second},
		Log:      LogConfig{Level: "warn", Format: "json", Path: "/var/log/icbutler.log"},
		UI:       UIConfig{Title: "Butler"},
	}
	require.NoError(t, Save(in))

	out, err := Load()
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestLoadFromExplicitPathIgnoresEnvPath(t *testing.T) {
	t.Setenv("ICBUTLER_CONFIG", filepath.Join(t.TempDir(), "nope.toml"))
	path := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, SaveTo(path, Config{
		Database: DatabaseConfig{Path: "/srv/tasks.db", Driver: "sqlite"},
		Client:   ClientConfig{Timeout: time.Second},
	}))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	require.Equal(t, "/srv/tasks.db", cfg.Database.Path)
	require.Equal(t, time.Second, cfg.Client.Timeout)
}

func TestDefaultPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("ICBUTLER_CONFIG", "")
	require.Equal(t, filepath.Join(home, ".config", "icbutler", "config.toml"), DefaultPath())

	t.Setenv("ICBUTLER_CONFIG", "/etc/icbutler.toml")
	require.Equal(t, "/etc/icbutler.toml", DefaultPath())
}
