package organizer

import "errors"

var (
	// ErrCrossDevice indicates a hard link failed because source and
	// destination are on different filesystems.
	ErrCrossDevice = errors.New("hard link failed: source and destination must be on the same filesystem")

	// ErrLinkUnsupported indicates hard links are not available, either
	// because the filesystem rejected the operation or permission was
	// denied. The permission-denied mapping is approximate: an ACL can
	// deny a link on a filesystem that supports them.
	ErrLinkUnsupported = errors.New("hard links not supported")

	// ErrSourceNotFound indicates the source directory does not exist.
	// Used by callers for pre-flight validation before organizing.
	ErrSourceNotFound = errors.New("source directory not found")

	// ErrTargetNotFound indicates the target root does not exist.
	ErrTargetNotFound = errors.New("target directory not found")
)
