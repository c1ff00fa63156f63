package placement

import (
	"fmt"
	"strings"

	"samplesort/internal/failure"
)

// Mode selects how a sample is placed at its destination.
type Mode string

const (
	ModeMove    Mode = "move"
	ModeCopy    Mode = "copy"
	ModeSymlink Mode = "symlink"
)

// DefaultMode is used when no mode is configured.
const DefaultMode = ModeSymlink

// Modes lists the accepted placement modes.
func Modes() []Mode {
	return []Mode{ModeSymlink, ModeCopy, ModeMove}
}

// ParseMode validates a configured mode. Unknown values are configuration errors.
func ParseMode(value string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(value))) {
	case ModeMove:
		return ModeMove, nil
	case ModeCopy:
		return ModeCopy, nil
	case ModeSymlink:
		return ModeSymlink, nil
	case "":
		return DefaultMode, nil
	default:
		return "", failure.Wrap(
			failure.ErrConfiguration,
			"placement",
			"parse mode",
			fmt.Sprintf("unknown placement mode %q (expected symlink, copy or move)", value),
			nil,
		)
	}
}

// Action records what happened to one sample.
type Action string

const (
	ActionMoved      Action = "moved"
	ActionCopied     Action = "copied"
	ActionSymlinked  Action = "symlinked"
	ActionHardlinked Action = "hardlinked"
	// ActionPlanned marks a dry-run placement.
	ActionPlanned Action = "planned"
	// ActionSkipped marks a destination that already holds the source.
	ActionSkipped Action = "skipped"
)
