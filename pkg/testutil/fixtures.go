package testutil

import (
	"path/filepath"
	"testing"

	"github.com/brackt/brackt/pkg/ev"
	"github.com/brackt/brackt/pkg/rawmeta"
	"github.com/brackt/brackt/pkg/types"
)

// StubExtractor serves canned metadata keyed by path. Paths without an entry
// fail extraction, like a file with no readable metadata.
type StubExtractor struct {
	Meta map[string]rawmeta.Metadata
	Errs map[string]error
}

// NewStubExtractor creates an empty StubExtractor.
func NewStubExtractor() *StubExtractor {
	return &StubExtractor{
		Meta: make(map[string]rawmeta.Metadata),
		Errs: make(map[string]error),
	}
}

func (s *StubExtractor) Extract(path string) (rawmeta.Metadata, error) {
	if err, ok := s.Errs[path]; ok {
		return rawmeta.Metadata{}, err
	}
	if meta, ok := s.Meta[path]; ok {
		return meta, nil
	}
	return rawmeta.Metadata{}, &noMetadataError{path: path}
}

type noMetadataError struct {
	path string
}

func (e *noMetadataError) Error() string {
	return "no metadata for " + e.path
}

// Rat builds an ev.Value or fails the test.
func Rat(t *testing.T, num, den int64) ev.Value {
	t.Helper()
	v, ok := ev.New(num, den)
	if !ok {
		t.Fatalf("invalid rational %d/%d", num, den)
	}
	return v
}

// BiasPtr returns a pointer to an ev.Value for FileRecord fixtures.
func BiasPtr(t *testing.T, num, den int64) *ev.Value {
	t.Helper()
	v := Rat(t, num, den)
	return &v
}

// ModePtr returns a pointer to an exposure mode.
func ModePtr(mode types.ExposureMode) *types.ExposureMode {
	return &mode
}

// Record builds a FileRecord with an optional bias.
func Record(path string, bias *ev.Value) types.FileRecord {
	return types.FileRecord{Path: path, Bias: bias}
}

// AddRawFile registers a RAW file in the filesystem and its metadata in the
// extractor; bias may be nil for a file whose EXIF lacks the field.
func AddRawFile(t *testing.T, fsys *MemoryFS, ex *StubExtractor, dir, name string, bias *ev.Value, mode *types.ExposureMode) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := fsys.WriteFile(path, []byte("raw"), 0644); err != nil {
		t.Fatalf("fixture write %s: %v", path, err)
	}
	ex.Meta[path] = rawmeta.Metadata{Bias: bias, Mode: mode}
	return path
}
