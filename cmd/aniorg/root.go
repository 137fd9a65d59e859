package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/aniorg/internal/config"
)

var version = "dev"

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "aniorg",
	Short: "Organize bracketed anime releases into a per-title library",
	Long: `aniorg - organize bracketed anime releases into a per-title library

Recognizes files named "[Group] Title - NN [Tags].ext" and rebuilds
them as "Title/NN [Tags].ext" under a target root, by moving, copying,
or hard-linking.

Hard links use no extra disk space but require source and target on
the same filesystem; use --fallback to degrade gracefully.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: auto-discover)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log skipped files and per-file results")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("aniorg {{.Version}}\n")
}

// loadConfig loads the config file (explicit path or discovery) and
// validates it.
func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	var err error

	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.Discover()
	}
	if err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, &config.ConfigError{Path: configPath, Errors: errs}
	}
	return cfg, nil
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// newLogger builds the CLI logger. Verbose mode forces debug level so
// per-file skip decisions show up.
func newLogger(level string) *slog.Logger {
	l := parseLogLevel(level)
	if verbose && l > slog.LevelDebug {
		l = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}
