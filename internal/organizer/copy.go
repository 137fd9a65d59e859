package organizer

import (
	"fmt"
	"io"
	"os"
)

// copyFile streams src to dst, syncing before returning. A partial
// destination is removed on failure so a retry starts clean.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create destination: %w", err)
	}
	defer func() { _ = out.Close() }()

	if _, err := io.Copy(out, in); err != nil {
		_ = os.Remove(dst)
		return fmt.Errorf("copy content: %w", err)
	}

	if err := out.Sync(); err != nil {
		return fmt.Errorf("sync destination: %w", err)
	}

	return nil
}
