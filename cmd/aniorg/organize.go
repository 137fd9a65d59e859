package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vmunix/aniorg/internal/config"
	"github.com/vmunix/aniorg/internal/history"
	"github.com/vmunix/aniorg/internal/organizer"
	"github.com/vmunix/aniorg/internal/scanner"
	"github.com/vmunix/aniorg/pkg/episode"
)

var organizeCmd = &cobra.Command{
	Use:   "organize",
	Short: "Scan a directory and organize recognized episode files",
	Long: `Scan a directory and organize recognized episode files.

Walks the source tree, parses every file matching the extension
allow-list, and transfers recognized episodes into Title/NN [Tags].ext
under the target root. Unrecognized files are skipped. Failures are
reported per file and never abort the batch.

Examples:
  aniorg organize --source /downloads --target /anime
  aniorg organize --source /downloads --mode link --fallback copy
  aniorg organize --source /downloads --dry-run --verbose`,
	RunE: runOrganize,
}

func init() {
	rootCmd.AddCommand(organizeCmd)
	organizeCmd.Flags().String("source", "", "Source directory to scan")
	organizeCmd.Flags().String("target", "", "Target root (default: same as source)")
	organizeCmd.Flags().String("mode", "", "Transfer mode: move, copy, or link")
	organizeCmd.Flags().String("fallback", "", "Mode to retry with when a hard link fails: move or copy")
	organizeCmd.Flags().Bool("dry-run", false, "Preview the mapping without touching the filesystem")
	organizeCmd.Flags().StringSlice("ext", nil, "Extension allow-list (default: mp4,mkv,avi,mov,wmv,flv,rmvb)")
	organizeCmd.Flags().Bool("match-existing", false, "Reuse an existing library directory when its name closely matches the parsed title")
}

// organizeOptions is the merged result of config file and flags.
type organizeOptions struct {
	source        string
	target        string
	mode          organizer.Mode
	fallback      *organizer.Mode // nil: no fallback
	dryRun        bool
	extensions    map[string]bool
	matchExisting bool
	historyPath   string
}

func runOrganize(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	opts, err := buildOrganizeOptions(cmd, cfg)
	if err != nil {
		return err
	}

	logger := newLogger(cfg.Log.Level)

	// Pre-flight validation, before any transfer is attempted.
	if _, err := os.Stat(opts.source); err != nil {
		return fmt.Errorf("%w: %s", organizer.ErrSourceNotFound, opts.source)
	}
	if _, err := os.Stat(opts.target); err != nil {
		return fmt.Errorf("%w: %s", organizer.ErrTargetNotFound, opts.target)
	}

	var store *history.Store
	if opts.historyPath != "" && !opts.dryRun {
		store, err = history.Open(opts.historyPath)
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()
	}

	var existingTitles []string
	if opts.matchExisting {
		existingTitles = listTitleDirs(opts.target)
	}

	candidates, err := scanner.Scan(opts.source, opts.extensions)
	if err != nil {
		return err
	}

	var processed, succeeded, failed int
	for _, path := range candidates {
		info, ok := episode.Parse(path)
		if !ok {
			logger.Debug("skipping unrecognized filename", "path", filepath.Base(path))
			continue
		}
		processed++

		if opts.matchExisting {
			if match := episode.MatchTitle(info.Title, existingTitles); match.Confidence == episode.ConfidenceHigh && match.Title != info.Title {
				logger.Info("reusing existing title directory", "parsed", info.Title, "existing", match.Title)
				info.Title = match.Title
			}
		}

		if organizeOne(info, opts, logger, store) {
			succeeded++
		} else {
			failed++
		}
	}

	fmt.Printf("done: %d processed, %d succeeded, %d failed\n", processed, succeeded, failed)
	return nil
}

// organizeOne transfers a single file, applying the configured
// fallback when a hard link cannot be created. Reports success.
func organizeOne(info episode.Info, opts *organizeOptions, logger *slog.Logger, store *history.Store) bool {
	mode := opts.mode
	err := organizer.Organize(info, opts.target, mode, opts.dryRun)

	if err != nil && mode == organizer.ModeLink && opts.fallback != nil && isLinkFallbackError(err) {
		logger.Info("hard link failed, retrying", "fallback", opts.fallback.String(), "source", info.SourcePath, "cause", err)
		mode = *opts.fallback
		err = organizer.Organize(info, opts.target, mode, opts.dryRun)
	}

	dest := filepath.Join(opts.target, info.Title, info.TargetFilename())
	recordOutcome(store, info, dest, mode, err)

	if err != nil {
		logger.Error("organize failed", "source", info.SourcePath, "error", err)
		return false
	}
	if !opts.dryRun {
		logger.Debug("organized", "source", info.SourcePath, "dest", dest, "mode", mode.String())
	}
	return true
}

// isLinkFallbackError reports whether a link failure is one the caller
// may retry with a different mode.
func isLinkFallbackError(err error) bool {
	return errors.Is(err, organizer.ErrCrossDevice) || errors.Is(err, organizer.ErrLinkUnsupported)
}

func recordOutcome(store *history.Store, info episode.Info, dest string, mode organizer.Mode, orgErr error) {
	if store == nil {
		return
	}
	entry := &history.Entry{
		Source:      info.SourcePath,
		Destination: dest,
		Mode:        mode.String(),
		Outcome:     history.OutcomeOK,
	}
	if orgErr != nil {
		entry.Outcome = history.OutcomeFailed
		entry.Error = orgErr.Error()
	}
	// History is best effort; a write failure must not fail the batch.
	_ = store.Add(entry)
}

// buildOrganizeOptions merges flags over the config file.
func buildOrganizeOptions(cmd *cobra.Command, cfg *config.Config) (*organizeOptions, error) {
	source, _ := cmd.Flags().GetString("source")
	target, _ := cmd.Flags().GetString("target")
	modeName, _ := cmd.Flags().GetString("mode")
	fallbackName, _ := cmd.Flags().GetString("fallback")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	exts, _ := cmd.Flags().GetStringSlice("ext")
	matchExisting, _ := cmd.Flags().GetBool("match-existing")

	if source == "" {
		source = cfg.Organize.Source
	}
	if source == "" {
		return nil, fmt.Errorf("source directory required (--source or organize.source in config)")
	}
	if target == "" {
		target = cfg.Organize.Target
	}
	if target == "" {
		target = source
	}
	if modeName == "" {
		modeName = cfg.Organize.Mode
	}
	if fallbackName == "" {
		fallbackName = cfg.Organize.Fallback
	}
	if len(exts) == 0 {
		exts = cfg.Organize.Extensions
	}

	mode, err := organizer.ParseMode(modeName)
	if err != nil {
		return nil, err
	}

	var fallback *organizer.Mode
	if fallbackName != "" {
		fb, err := organizer.ParseMode(fallbackName)
		if err != nil {
			return nil, err
		}
		if fb == organizer.ModeLink {
			return nil, fmt.Errorf("fallback must be move or copy")
		}
		fallback = &fb
	}

	return &organizeOptions{
		source:        source,
		target:        target,
		mode:          mode,
		fallback:      fallback,
		dryRun:        dryRun,
		extensions:    scanner.NormalizeExtensions(exts),
		matchExisting: matchExisting || cfg.Organize.MatchExisting,
		historyPath:   cfg.History.Path,
	}, nil
}

// listTitleDirs returns the names of directories directly under the
// target root, the candidates for --match-existing.
func listTitleDirs(root string) []string {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil
	}
	var titles []string
	for _, e := range entries {
		if e.IsDir() {
			titles = append(titles, e.Name())
		}
	}
	return titles
}
