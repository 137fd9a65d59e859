// Package organizer transfers parsed episode files into a per-title
// directory layout by moving, copying, or hard-linking them.
package organizer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmunix/aniorg/pkg/episode"
)

// Organize places info's source file at targetRoot/Title/TargetFilename.
//
// The destination directory chain is created if missing and an existing
// destination file is replaced (last write wins). With dryRun set, the
// intended mapping is printed and nothing on disk is touched.
//
// Each call is independent; a failed call can be re-invoked from
// scratch, including with a different mode, because directory creation
// and collision removal are idempotent. Link mode never falls back on
// its own: a classified error (ErrCrossDevice, ErrLinkUnsupported) is
// returned so the caller can decide.
func Organize(info episode.Info, targetRoot string, mode Mode, dryRun bool) error {
	targetDir := filepath.Join(targetRoot, info.Title)
	targetPath := filepath.Join(targetDir, info.TargetFilename())

	if dryRun {
		fmt.Printf("[dry-run] %s -> %s\n", info.SourcePath, targetPath)
		return nil
	}

	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	if _, err := os.Lstat(targetPath); err == nil {
		if err := os.Remove(targetPath); err != nil {
			return fmt.Errorf("remove existing destination: %w", err)
		}
	}

	switch mode {
	case ModeMove:
		return moveFile(info.SourcePath, targetPath)
	case ModeCopy:
		return copyFile(info.SourcePath, targetPath)
	case ModeLink:
		return linkFile(info.SourcePath, targetPath)
	default:
		return fmt.Errorf("unknown mode %d", mode)
	}
}

// moveFile renames src to dst, degrading to copy+remove when the
// rename fails (typically across filesystems). If the copy succeeds
// but the source removal fails, the error propagates: the caller must
// be able to observe the duplicate it leaves behind.
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	if err := copyFile(src, dst); err != nil {
		return err
	}
	if err := os.Remove(src); err != nil {
		return fmt.Errorf("remove source after copy: %w", err)
	}
	return nil
}

// linkFile hard-links src at dst and classifies failures so the caller
// can choose a fallback mode.
func linkFile(src, dst string) error {
	if err := os.Link(src, dst); err != nil {
		return classifyLinkError(err)
	}
	return nil
}

// classifyLinkError maps raw hard-link failures onto the error
// taxonomy. The permission-denied case is treated as "links not
// supported"; that mapping is approximate but kept for compatibility.
func classifyLinkError(err error) error {
	switch {
	case isCrossDevice(err):
		return fmt.Errorf("%w: %v", ErrCrossDevice, err)
	case errors.Is(err, os.ErrPermission):
		return fmt.Errorf("%w: %v", ErrLinkUnsupported, err)
	default:
		return fmt.Errorf("create hard link: %w", err)
	}
}
