package subst

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// FileConfig is the on-disk configuration.
type FileConfig struct {
	Extensions  []string      `toml:"extensions"`
	Exclude     []string      `toml:"exclude"`
	Workspace   string        `toml:"workspace"`
	NoAnimation bool          `toml:"no_animation"`
	Logging     LoggingConfig `toml:"logging"`
}

type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// LoadConfig reads path, or ConfigPath() when path is empty. A missing file
// is not an error.
func LoadConfig(path string) (*FileConfig, error) {
	cfg := defaultConfig()

	if path == "" {
		path = ConfigPath()
	}
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, errors.Wrapf(err, "failed to parse config %s", path)
		}
	}

	cfg.applyEnv()
	cfg.expandPaths()
	cfg.Extensions = NormalizeExtensions(cfg.Extensions)
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = []string{DefaultExtension}
	}
	return cfg, nil
}

func ConfigPath() string {
	if p := os.Getenv("SUBST_CONFIG"); p != "" {
		return p
	}
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "subst", "config.toml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "subst", "config.toml")
}

func defaultConfig() *FileConfig {
	return &FileConfig{
		Extensions: []string{DefaultExtension},
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}

func (c *FileConfig) applyEnv() {
	if ws := os.Getenv("SUBST_WORKSPACE"); ws != "" {
		c.Workspace = ws
	}
	if lvl := os.Getenv("SUBST_LOG_LEVEL"); lvl != "" {
		c.Logging.Level = lvl
	}
}

func (c *FileConfig) expandPaths() {
	c.Workspace = expandHome(c.Workspace)
	c.Logging.File = expandHome(c.Logging.File)
}

func expandHome(p string) string {
	home, _ := os.UserHomeDir()
	if strings.HasPrefix(p, "~/") {
		return filepath.Join(home, p[2:])
	}
	if strings.HasPrefix(p, "$HOME/") {
		return filepath.Join(home, p[6:])
	}
	return p
}
