package subst

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("SUBST_WORKSPACE", "")
	t.Setenv("SUBST_LOG_LEVEL", "")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, []string{".tsx"}, cfg.Extensions)
	assert.Empty(t, cfg.Exclude)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.False(t, cfg.NoAnimation)
}

func TestLoadConfigFile(t *testing.T) {
	t.Setenv("SUBST_WORKSPACE", "")
	t.Setenv("SUBST_LOG_LEVEL", "")

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
extensions = ["tsx", ".jsx", ""]
exclude = ["node_modules", ".git"]
workspace = "~/code/app"
no_animation = true

[logging]
level = "debug"
`), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []string{".tsx", ".jsx"}, cfg.Extensions)
	assert.Equal(t, []string{"node_modules", ".git"}, cfg.Exclude)
	assert.Equal(t, filepath.Join(home, "code", "app"), cfg.Workspace)
	assert.True(t, cfg.NoAnimation)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("SUBST_WORKSPACE", "/srv/web")
	t.Setenv("SUBST_LOG_LEVEL", "error")

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("workspace = \"/tmp/elsewhere\"\n"), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/web", cfg.Workspace)
	assert.Equal(t, "error", cfg.Logging.Level)
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("extensions = ["), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestConfigPath(t *testing.T) {
	t.Setenv("SUBST_CONFIG", "/etc/subst.toml")
	assert.Equal(t, "/etc/subst.toml", ConfigPath())

	t.Setenv("SUBST_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	assert.Equal(t, "/xdg/subst/config.toml", ConfigPath())
}

func TestNewLogger(t *testing.T) {
	_, closer, err := NewLogger(LoggingConfig{Level: "loud"})
	assert.Error(t, err)
	assert.NoError(t, closer.Close())

	file := filepath.Join(t.TempDir(), "subst.log")
	logger, closer, err := NewLogger(LoggingConfig{Level: "debug", File: file})
	require.NoError(t, err)
	logger.Debug().Str("path", "a.tsx").Msg("file processed")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"path":"a.tsx"`)
	assert.Contains(t, string(data), `"level":"debug"`)
}
