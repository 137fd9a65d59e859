// Package scanner finds candidate video files under a source tree.
package scanner

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// DefaultExtensions is the allow-list used when none is configured.
var DefaultExtensions = []string{".mp4", ".mkv", ".avi", ".mov", ".wmv", ".flv", ".rmvb"}

// NormalizeExtensions lowercases the given extensions and ensures each
// carries a leading dot, so "MKV" and ".mkv" filter the same files.
func NormalizeExtensions(exts []string) map[string]bool {
	set := make(map[string]bool, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		set[ext] = true
	}
	return set
}

// Scan walks root and returns, in walk order, every regular file whose
// extension (case-insensitive) is in the allow-list. Unreadable
// subtrees are skipped rather than aborting the scan.
func Scan(root string, extensions map[string]bool) ([]string, error) {
	var paths []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if extensions[ext] {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	return paths, nil
}
