// Package types holds the shared types of the bracket-detection engine:
// the filesystem abstraction, the per-file record produced by the scanner,
// and the enums selecting match mode and action.
package types

import (
	"io/fs"
	"strings"

	"github.com/brackt/brackt/pkg/ev"
)

// FS abstracts the filesystem operations the engine performs, so tests can
// run against an in-memory implementation.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadDir(name string) ([]fs.DirEntry, error)
	ReadFile(name string) ([]byte, error)
	Mkdir(path string, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
	Rename(oldpath, newpath string) error
	// AppendFile appends data to name, creating it with perm if absent.
	AppendFile(name string, data []byte, perm fs.FileMode) error
}

// ExposureMode is the camera-reported shooting mode from EXIF.
type ExposureMode uint16

const (
	ExposureAuto        ExposureMode = 0
	ExposureManual      ExposureMode = 1
	ExposureAutoBracket ExposureMode = 2
)

func (m ExposureMode) String() string {
	switch m {
	case ExposureAuto:
		return "Auto exposure"
	case ExposureManual:
		return "Manual exposure"
	case ExposureAutoBracket:
		return "Auto bracket"
	default:
		return "Unknown"
	}
}

// FileRecord is one file considered for matching. Bias and Mode are nil when
// the corresponding metadata could not be extracted. Records are created
// once per scan and never mutated.
type FileRecord struct {
	Path string
	Bias *ev.Value
	Mode *ExposureMode
}

// MatchedRun is a contiguous window of records that satisfied the match
// predicate. It aliases the scanned slice; consumers must not retain it
// beyond the pass.
type MatchedRun []FileRecord

// MatchMode selects the comparison semantics of the windowed matcher.
type MatchMode int

const (
	// MatchAbsolute compares each record's bias against the target value
	// at the same position.
	MatchAbsolute MatchMode = iota
	// MatchDelta compares bias offsets relative to the window's record at
	// the target sequence's zero entry.
	MatchDelta
)

func (m MatchMode) String() string {
	switch m {
	case MatchAbsolute:
		return "absolute"
	case MatchDelta:
		return "delta"
	default:
		return "unknown"
	}
}

// ParseMatchMode parses a match mode name as used on the command line.
func ParseMatchMode(s string) (MatchMode, bool) {
	switch strings.ToLower(s) {
	case "absolute", "abs":
		return MatchAbsolute, true
	case "delta":
		return MatchDelta, true
	default:
		return MatchAbsolute, false
	}
}

// Action selects what happens to a matched run.
type Action int

const (
	// ActionMoveToFolder moves the run's files into a new folder named
	// after the first file's stem.
	ActionMoveToFolder Action = iota
	// ActionSaveToTextfile appends the run's paths to the manifest file.
	ActionSaveToTextfile
)

func (a Action) String() string {
	switch a {
	case ActionMoveToFolder:
		return "move"
	case ActionSaveToTextfile:
		return "textfile"
	default:
		return "unknown"
	}
}

// ParseAction parses an action name as used on the command line.
func ParseAction(s string) (Action, bool) {
	switch strings.ToLower(s) {
	case "move", "move-to-folder":
		return ActionMoveToFolder, true
	case "textfile", "manifest", "save-to-textfile":
		return ActionSaveToTextfile, true
	default:
		return ActionMoveToFolder, false
	}
}
