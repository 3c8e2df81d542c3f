// Package actions executes the configured action on each matched run.
//
// Failures here are logged warnings, never errors that stop the pass: a run
// that cannot be moved is skipped, a partially moved run stays partially
// moved (no rollback), and a manifest write failure does not block the
// remaining runs.
package actions

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/brackt/brackt/pkg/logging"
	"github.com/brackt/brackt/pkg/rawmeta"
	"github.com/brackt/brackt/pkg/types"
)

// ManifestName is the manifest file created in the scanned root by
// ActionSaveToTextfile. Appended to, never rewritten.
const ManifestName = "sequences.txt"

// Executor applies actions to matched runs.
type Executor struct {
	fs     types.FS
	logger zerolog.Logger
}

// NewExecutor creates an Executor over the given filesystem.
func NewExecutor(fsys types.FS) *Executor {
	return &Executor{
		fs:     fsys,
		logger: logging.GetLogger("actions"),
	}
}

// Execute applies the action to one matched run under root. The run is
// borrowed for the duration of the call only.
func (e *Executor) Execute(root string, run types.MatchedRun, action types.Action) {
	if len(run) == 0 {
		return
	}
	switch action {
	case types.ActionMoveToFolder:
		e.moveToFolder(root, run)
	case types.ActionSaveToTextfile:
		e.saveToTextfile(root, run)
	}
}

// moveToFolder relocates the run into a new folder named after the first
// file's stem. Folder-create failure (typically a name collision from an
// earlier overlapping run) skips the whole run; per-file move failures skip
// just that file.
func (e *Executor) moveToFolder(root string, run types.MatchedRun) {
	first := filepath.Base(run[0].Path)
	folderName := strings.TrimSuffix(first, filepath.Ext(first))
	folderPath := filepath.Join(root, folderName)

	if err := e.fs.Mkdir(folderPath, 0755); err != nil {
		e.logger.Warn().Err(err).Str("folder", folderName).Msg("Failed to create folder")
		return
	}

	for _, record := range run {
		dest := filepath.Join(folderPath, filepath.Base(record.Path))
		if err := e.fs.Rename(record.Path, dest); err != nil {
			e.logger.Warn().
				Err(err).
				Str("file", record.Path).
				Str("folder", folderName).
				Msg("Failed to move file")
			continue
		}
		e.moveSidecar(record.Path, folderPath)
	}

	e.logger.Info().Str("folder", folderName).Int("files", len(run)).Msg("Moved sequence to folder")
}

// moveSidecar brings a file's XMP sidecar along. Best effort.
func (e *Executor) moveSidecar(original, folderPath string) {
	sidecar, ok := rawmeta.SidecarPath(e.fs, original)
	if !ok {
		return
	}
	dest := filepath.Join(folderPath, filepath.Base(sidecar))
	if err := e.fs.Rename(sidecar, dest); err != nil {
		e.logger.Warn().Err(err).Str("sidecar", sidecar).Msg("Failed to move sidecar")
	}
}

// saveToTextfile appends the run's paths to the manifest in root, one per
// line, followed by a blank separator line. Existing content is preserved.
func (e *Executor) saveToTextfile(root string, run types.MatchedRun) {
	var block strings.Builder
	for _, record := range run {
		block.WriteString(record.Path)
		block.WriteByte('\n')
	}
	block.WriteByte('\n')

	manifest := filepath.Join(root, ManifestName)
	if err := e.fs.AppendFile(manifest, []byte(block.String()), fs.FileMode(0644)); err != nil {
		e.logger.Warn().Err(err).Str("manifest", manifest).Msg("Failed to write manifest")
		return
	}

	e.logger.Info().Str("manifest", manifest).Int("files", len(run)).Msg("Appended sequence to manifest")
}
