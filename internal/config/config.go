// ABOUTME: Configuration for sylvo hosts.
// ABOUTME: Loads YAML from XDG config paths and applies environment overrides.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultName is the repository name used when none is configured.
	DefaultName = "default"
	// DefaultAddr is the listen address for the HTTP host.
	DefaultAddr = "127.0.0.1:8421"

	envDataDir = "SYLVO_DATA_DIR"
	envName    = "SYLVO_NAME"
	envAddr    = "SYLVO_ADDR"
)

// Config holds host settings.
type Config struct {
	// DataDir is the directory holding repository files (default: user cache dir)
	DataDir string `yaml:"data_dir,omitempty"`

	// Name is the repository file inside DataDir (default: "default")
	Name string `yaml:"name,omitempty"`

	// Addr is the HTTP listen address used by `serve`
	Addr string `yaml:"addr,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Name: DefaultName,
		Addr: DefaultAddr,
	}
}

// ConfigDir returns the configuration directory path.
func ConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "sylvo")
}

// DefaultPath returns the path to the config file.
func DefaultPath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Load reads the config at path, returning defaults if it does not exist.
// Environment variables override values from the file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	return cfg, nil
}

// Save writes the config to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}

func (c *Config) applyEnv() {
	if v := os.Getenv(envDataDir); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv(envName); v != "" {
		c.Name = v
	}
	if v := os.Getenv(envAddr); v != "" {
		c.Addr = v
	}
}

func (c *Config) applyDefaults() {
	if c.Name == "" {
		c.Name = DefaultName
	}
	if c.Addr == "" {
		c.Addr = DefaultAddr
	}
}

// ResolveDataDir returns the repository directory: the flag value if set,
// then the configured DataDir, then the per-user cache directory.
func (c *Config) ResolveDataDir(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if c.DataDir != "" {
		return c.DataDir, nil
	}

	cache, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("locate cache dir: %w", err)
	}
	return filepath.Join(cache, "sylvo"), nil
}
