// Package config loads the resolver's YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"streamresolve/internal/filesystem"
)

// Config captures the embedder-facing configuration surface.
type Config struct {
	Version int           `yaml:"version"`
	Tool    ToolConfig    `yaml:"tool"`
	Resolve ResolveConfig `yaml:"resolve"`
	Logs    LogsConfig    `yaml:"logs"`
}

// ToolConfig controls where the yt-dlp binary comes from.
type ToolConfig struct {
	// Path is an explicit binary path override.
	Path string `yaml:"path"`
	// InstallDir overrides where auto-downloads land.
	InstallDir string `yaml:"install_dir"`
	// AutoDownload installs the tool on first use when absent.
	AutoDownload *bool `yaml:"auto_download,omitempty"`
	// TimeoutMs bounds each tool invocation.
	TimeoutMs int `yaml:"timeout_ms"`
}

// ResolveConfig holds resolution defaults.
type ResolveConfig struct {
	// Quality is the default quality tier or numeric height.
	Quality string `yaml:"quality"`
}

// LogsConfig controls the on-disk logfile.
type LogsConfig struct {
	Dir   string `yaml:"dir"`
	Level string `yaml:"level"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		Version: 1,
		Tool: ToolConfig{
			AutoDownload: boolPtr(true),
			TimeoutMs:    30000,
		},
		Resolve: ResolveConfig{
			Quality: "auto",
		},
		Logs: LogsConfig{
			Level: "info",
		},
	}
}

// Load reads the YAML configuration from disk if it exists, otherwise
// returns the default configuration.
func Load(path string) (Config, error) {
	contents, err := afero.ReadFile(filesystem.API(), path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := Default()
			cfg.ApplyDefaults()
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.ApplyDefaults()
	return cfg, nil
}

// ApplyDefaults fills nested fields the YAML omitted.
func (c *Config) ApplyDefaults() {
	defaults := Default()

	if c.Version == 0 {
		c.Version = defaults.Version
	}
	if c.Tool.AutoDownload == nil {
		c.Tool.AutoDownload = boolPtr(true)
	}
	if c.Tool.TimeoutMs == 0 {
		c.Tool.TimeoutMs = defaults.Tool.TimeoutMs
	}
	if c.Resolve.Quality == "" {
		c.Resolve.Quality = defaults.Resolve.Quality
	}
	if c.Logs.Level == "" {
		c.Logs.Level = defaults.Logs.Level
	}
}

// AutoDownloadEnabled returns the effective auto-download flag.
func (c Config) AutoDownloadEnabled() bool {
	if c.Tool.AutoDownload == nil {
		return true
	}
	return *c.Tool.AutoDownload
}

// Validate reports configuration errors that should stop startup.
func (c Config) Validate() error {
	if c.Tool.TimeoutMs < 0 {
		return fmt.Errorf("tool.timeout_ms must not be negative, got %d", c.Tool.TimeoutMs)
	}
	if c.Tool.Path != "" {
		if !filesystem.FileExists(c.Tool.Path) {
			return fmt.Errorf("tool.path %q not found", c.Tool.Path)
		}
	}
	return nil
}

// Marshal returns the YAML encoding of the configuration.
func (c Config) Marshal() ([]byte, error) {
	buf, err := yaml.Marshal(&c)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return buf, nil
}

func boolPtr(v bool) *bool {
	return &v
}
