package organizer

import "fmt"

// Mode selects how a file is transferred into the library.
type Mode int

const (
	ModeMove Mode = iota
	ModeCopy
	ModeLink
)

func (m Mode) String() string {
	switch m {
	case ModeMove:
		return "move"
	case ModeCopy:
		return "copy"
	case ModeLink:
		return "link"
	default:
		return "unknown"
	}
}

// ParseMode converts a mode name from flags or config into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "move":
		return ModeMove, nil
	case "copy":
		return ModeCopy, nil
	case "link":
		return ModeLink, nil
	default:
		return ModeMove, fmt.Errorf("unknown mode %q (want move, copy, or link)", s)
	}
}
