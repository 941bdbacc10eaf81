package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Load_NoFilesYieldsDefaults(t *testing.T) {
	loader := NewLoaderWithGlobalDir(t.TempDir(), t.TempDir())

	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 60*time.Second, cfg.ScanInterval)
	assert.NotEmpty(t, cfg.DataDir)
}

func TestLoader_Load_GlobalFile(t *testing.T) {
	globalDir := t.TempDir()
	content := `
data_dir = "/srv/missions"

[log]
level = "debug"

[scan]
interval_seconds = 30
`
	require.NoError(t, os.WriteFile(filepath.Join(globalDir, "config.toml"), []byte(content), 0o600))
	loader := NewLoaderWithGlobalDir(t.TempDir(), globalDir)

	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, "/srv/missions", cfg.DataDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 30*time.Second, cfg.ScanInterval)
}

func TestLoader_Load_LocalOverridesGlobal(t *testing.T) {
	globalDir := t.TempDir()
	localDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(globalDir, "config.toml"), []byte(`
[log]
level = "debug"

[scan]
interval_seconds = 30
`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(localDir, LocalConfigFileName), []byte(`
[log]
level = "error"
`), 0o600))
	loader := NewLoaderWithGlobalDir(localDir, globalDir)

	cfg, err := loader.Load()
	require.NoError(t, err)
	// Local wins where set, global fills the rest.
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, 30*time.Second, cfg.ScanInterval)
}

func TestLoader_Load_MalformedTOMLErrors(t *testing.T) {
	globalDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(globalDir, "config.toml"), []byte("not [valid toml"), 0o600))
	loader := NewLoaderWithGlobalDir(t.TempDir(), globalDir)

	_, err := loader.Load()
	assert.Error(t, err)
}
