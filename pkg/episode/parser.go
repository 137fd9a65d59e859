package episode

import (
	"path/filepath"
	"regexp"
	"strings"
)

// filenamePattern matches the full base name, anchored at both ends:
// a bracketed group, the title (non-greedy), " - ", the episode digits,
// a bracketed tag run, and the extension. Compiled once and shared by
// every Parse call.
var filenamePattern = regexp.MustCompile(
	`^\[([^\]]+)\]\s+(.+?)\s+-\s+(\d+)\s+(\[.+\])(\.\w+)$`,
)

// Parse extracts episode metadata from the base name of path.
// The base name must match the grammar in full; anything else returns
// ok=false. There is no partial-match recovery.
func Parse(path string) (Info, bool) {
	name := filepath.Base(path)
	if name == "." || name == string(filepath.Separator) {
		return Info{}, false
	}

	m := filenamePattern.FindStringSubmatch(name)
	if m == nil {
		return Info{}, false
	}

	return Info{
		Group:      strings.TrimSpace(m[1]),
		Title:      strings.TrimSpace(m[2]),
		Episode:    padEpisode(m[3]),
		Tags:       strings.TrimSpace(m[4]),
		Extension:  strings.ToLower(m[5]),
		SourcePath: path,
	}, true
}

// padEpisode left-pads the captured digits with zeros to width 2.
// Wider captures are preserved exactly.
func padEpisode(digits string) string {
	if len(digits) >= 2 {
		return digits
	}
	return strings.Repeat("0", 2-len(digits)) + digits
}
