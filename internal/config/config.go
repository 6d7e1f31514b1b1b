// Package config handles loading of user configuration.
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
	appName        = "github-orgs"
	configFileName = "config.yml"
	tokenEnv       = "GITHUB_TOKEN"
)

var errConfigDirUnknown = errors.New("cannot determine config directory")

// Config represents the complete configuration for github-orgs.
type Config struct {
	// Token is sent as an OAuth2 bearer token. GITHUB_TOKEN overrides it.
	Token string `yaml:"token"`
	// WaitOnRateLimit sleeps through GitHub secondary rate limits.
	WaitOnRateLimit bool `yaml:"wait_on_rate_limit"`
	// UserAgent overrides the User-Agent header.
	UserAgent string `yaml:"user_agent"`
}

// DefaultPath returns $XDG_CONFIG_HOME/github-orgs/config.yml, falling back
// to ~/.config/github-orgs/config.yml.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, configFileName), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %w", errConfigDirUnknown, err)
	}
	return filepath.Join(homeDir, ".config", appName, configFileName), nil
}

// Load reads the configuration file at path. An empty path means
// DefaultPath; when there is no default file, or no directory to look for
// it in, the zero Config is used. An explicitly requested file must exist.
func Load(path string) (*Config, error) {
	var cfg Config
	explicit := path != ""
	if !explicit {
		if defaultPath, err := DefaultPath(); err == nil {
			path = defaultPath
		}
	}

	if path != "" {
		// #nosec G304 - the path is chosen by the user
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		case errors.Is(err, fs.ErrNotExist) && !explicit:
			// defaults
		default:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if token := os.Getenv(tokenEnv); token != "" {
		cfg.Token = token
	}
	return &cfg, nil
}
