// Package config resolves client configuration from defaults, an
// optional YAML file, and environment variables.
//
// Priority (highest to lowest): env > file > defaults. The default
// file location is ~/.config/capedge/config.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Default configuration values.
const (
	DefaultBaseURL = "https://capedge.com/v1/api/"
	DefaultTimeout = 30 * time.Second
)

// Environment variable names.
const (
	EnvCookie  = "CAPEDGE_COOKIE"
	EnvBaseURL = "CAPEDGE_BASE_URL"
	EnvTimeout = "CAPEDGE_TIMEOUT"
)

// Source identifies where a configuration value came from.
type Source string

const (
	SourceDefault Source = "default"
	SourceFile    Source = "file"
	SourceEnv     Source = "env"
)

// Config holds resolved client configuration.
type Config struct {
	// Cookie is the raw Cookie header value for authentication.
	Cookie string `yaml:"cookie"`

	// BaseURL is the API base URL.
	BaseURL string `yaml:"base_url"`

	// Timeout is the per-request HTTP timeout.
	Timeout time.Duration `yaml:"timeout"`

	sources map[string]Source
}

// Source returns where the named key ("cookie", "base_url", "timeout")
// got its value.
func (c *Config) Source(key string) Source {
	return c.sources[key]
}

// DefaultPath returns the default config file location, or "" when the
// home directory cannot be determined.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "capedge", "config.yaml")
}

// Load resolves configuration from the default file location and the
// environment.
func Load() (*Config, error) {
	return LoadFrom(DefaultPath())
}

// LoadFrom resolves configuration using the given file path. A missing
// file is not an error; a malformed one is.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{
		BaseURL: DefaultBaseURL,
		Timeout: DefaultTimeout,
		sources: map[string]Source{
			"base_url": SourceDefault,
			"timeout":  SourceDefault,
		},
	}

	if path != "" {
		if err := cfg.applyFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var parsed struct {
		Cookie  string `yaml:"cookie"`
		BaseURL string `yaml:"base_url"`
		Timeout string `yaml:"timeout"`
	}
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if parsed.Cookie != "" {
		c.Cookie = parsed.Cookie
		c.sources["cookie"] = SourceFile
	}
	if parsed.BaseURL != "" {
		c.BaseURL = parsed.BaseURL
		c.sources["base_url"] = SourceFile
	}
	if parsed.Timeout != "" {
		d, err := time.ParseDuration(parsed.Timeout)
		if err != nil {
			return fmt.Errorf("parse config %s: timeout: %w", path, err)
		}
		c.Timeout = d
		c.sources["timeout"] = SourceFile
	}

	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvCookie); v != "" {
		c.Cookie = v
		c.sources["cookie"] = SourceEnv
	}
	if v := os.Getenv(EnvBaseURL); v != "" {
		c.BaseURL = v
		c.sources["base_url"] = SourceEnv
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse %s: %w", EnvTimeout, err)
		}
		c.Timeout = d
		c.sources["timeout"] = SourceEnv
	}
	return nil
}
