// Package scanner collects candidate files and their exposure metadata from
// a directory.
//
// Scanning is FLAT: only the immediate children of the directory are
// considered, subdirectories are never descended into. Files are returned in
// the order the directory listing yields them — no explicit sort is applied.
// Creation-timestamp ordering was considered and rejected: cameras and
// filesystems disagree about it too often to be trustworthy.
package scanner

import (
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/brackt/brackt/pkg/logging"
	"github.com/brackt/brackt/pkg/progress"
	"github.com/brackt/brackt/pkg/rawmeta"
	"github.com/brackt/brackt/pkg/types"
)

// Options control which directory entries become candidate records.
type Options struct {
	// Extensions are the accepted file extensions, without the leading
	// dot, matched case-insensitively.
	Extensions []string
	// BracketOnly excludes files whose exposure mode is not "auto
	// bracket", including files with no mode at all.
	BracketOnly bool
}

// Scanner enumerates a directory and extracts per-file exposure metadata.
type Scanner struct {
	fs        types.FS
	extractor rawmeta.Extractor
	logger    zerolog.Logger
}

// New creates a Scanner over the given filesystem and metadata extractor.
func New(fsys types.FS, extractor rawmeta.Extractor) *Scanner {
	return &Scanner{
		fs:        fsys,
		extractor: extractor,
		logger:    logging.GetLogger("scanner"),
	}
}

// CountFiles returns the number of regular files in dir with an accepted
// extension. It feeds the total-files counter so progress has a denominator;
// an unreadable directory counts as zero.
func (s *Scanner) CountFiles(dir string, extensions []string) int {
	entries, err := s.fs.ReadDir(dir)
	if err != nil {
		return 0
	}
	count := 0
	for _, entry := range entries {
		if !entry.IsDir() && extensionMatches(entry.Name(), extensions) {
			count++
		}
	}
	return count
}

// Collect lists dir and returns a record per accepted file. Each file with a
// matching extension bumps the processed counter exactly once, whether or
// not it survives metadata extraction or the bracket filter. Extraction
// failures exclude the file silently; an unreadable directory yields an
// empty result with a warning.
func (s *Scanner) Collect(dir string, opts Options, counters *progress.Counters) []types.FileRecord {
	entries, err := s.fs.ReadDir(dir)
	if err != nil {
		s.logger.Warn().Err(err).Str("dir", dir).Msg("Failed to read directory")
		return nil
	}

	var records []types.FileRecord
	for _, entry := range entries {
		if entry.IsDir() || !extensionMatches(entry.Name(), opts.Extensions) {
			continue
		}
		counters.IncProcessed()

		path := filepath.Join(dir, entry.Name())
		meta, err := s.extractor.Extract(path)
		if err != nil {
			s.logger.Debug().Err(err).Str("path", path).Msg("skipping file without metadata")
			continue
		}

		if opts.BracketOnly {
			if meta.Mode == nil || *meta.Mode != types.ExposureAutoBracket {
				s.logger.Trace().Str("path", path).Msg("skipping non-bracket exposure mode")
				continue
			}
		}

		records = append(records, types.FileRecord{
			Path: path,
			Bias: meta.Bias,
			Mode: meta.Mode,
		})
	}

	s.logger.Debug().
		Str("dir", dir).
		Int("candidates", len(records)).
		Msg("directory scan complete")

	return records
}

func extensionMatches(name string, extensions []string) bool {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	if ext == "" {
		return false
	}
	for _, accepted := range extensions {
		if strings.EqualFold(ext, accepted) {
			return true
		}
	}
	return false
}
