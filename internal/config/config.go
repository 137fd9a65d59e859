// Package config handles TOML configuration loading with environment
// variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/BurntSushi/toml"

	"github.com/vmunix/aniorg/internal/scanner"
)

// Config is the root configuration structure. Every field has a flag
// equivalent; flags override the file.
type Config struct {
	Organize OrganizeConfig `toml:"organize"`
	Log      LogConfig      `toml:"log"`
	History  HistoryConfig  `toml:"history"`
}

type OrganizeConfig struct {
	Source        string   `toml:"source"`
	Target        string   `toml:"target"`
	Mode          string   `toml:"mode"`
	Fallback      string   `toml:"fallback"` // mode to retry with when a hard link fails
	Extensions    []string `toml:"extensions"`
	MatchExisting bool     `toml:"match_existing"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

type HistoryConfig struct {
	Path string `toml:"path"` // empty disables history recording
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads and parses the configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	content := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Discover loads the config from the standard search order: the
// ANIORG_CONFIG environment variable, then ./aniorg.toml, then
// $XDG_CONFIG_HOME/aniorg/config.toml. When no file exists defaults
// are returned.
func Discover() (*Config, error) {
	if envPath := os.Getenv("ANIORG_CONFIG"); envPath != "" {
		return Load(envPath)
	}

	candidates := []string{"aniorg.toml"}
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		candidates = append(candidates, filepath.Join(configHome, "aniorg", "config.toml"))
	} else if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", "aniorg", "config.toml"))
	}

	for _, path := range candidates {
		cfg, err := Load(path)
		if err == nil {
			return cfg, nil
		}
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		return nil, err
	}

	return Default(), nil
}

func (c *Config) applyDefaults() {
	if c.Organize.Mode == "" {
		c.Organize.Mode = "link"
	}
	if len(c.Organize.Extensions) == 0 {
		c.Organize.Extensions = append([]string(nil), scanner.DefaultExtensions...)
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

func substituteEnvVars(content string) string {
	return envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		varName := match[2 : len(match)-1]
		if value, ok := os.LookupEnv(varName); ok {
			return value
		}
		return match
	})
}
