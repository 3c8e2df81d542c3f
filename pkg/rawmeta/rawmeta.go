// Package rawmeta extracts exposure metadata from camera RAW files.
//
// The primary source is the embedded EXIF block (most RAW formats are TIFF
// containers that goexif can walk). When EXIF decoding fails or lacks a
// field, an XMP sidecar next to the file is consulted. Extraction failure is
// an expected condition and is reported as an error for the caller to skip,
// never to abort a scan.
package rawmeta

import (
	"bytes"

	"github.com/rwcarlsen/goexif/exif"

	"github.com/brackt/brackt/pkg/errors"
	"github.com/brackt/brackt/pkg/ev"
	"github.com/brackt/brackt/pkg/logging"
	"github.com/brackt/brackt/pkg/types"
)

// Metadata is the exposure-relevant subset of a file's metadata. Either
// field may be nil when the source did not carry it.
type Metadata struct {
	Bias *ev.Value
	Mode *types.ExposureMode
}

// Extractor extracts exposure metadata for a file path.
type Extractor interface {
	Extract(path string) (Metadata, error)
}

type exifExtractor struct {
	fs types.FS
}

// NewExtractor returns the EXIF-backed extractor with XMP sidecar fallback.
func NewExtractor(fsys types.FS) Extractor {
	return &exifExtractor{fs: fsys}
}

func (e *exifExtractor) Extract(path string) (Metadata, error) {
	logger := logging.GetLogger("rawmeta")

	var meta Metadata
	decoded := false

	data, readErr := e.fs.ReadFile(path)
	if readErr != nil {
		logger.Debug().Err(readErr).Str("path", path).Msg("file unreadable")
	} else if x, err := exif.Decode(bytes.NewReader(data)); err != nil {
		logger.Debug().Err(err).Str("path", path).Msg("EXIF decode failed")
	} else {
		decoded = true
		if tag, err := x.Get(exif.ExposureBiasValue); err == nil {
			if num, den, err := tag.Rat2(0); err == nil {
				if v, ok := ev.New(num, den); ok {
					meta.Bias = &v
				}
			}
		}
		if tag, err := x.Get(exif.ExposureMode); err == nil {
			if code, err := tag.Int(0); err == nil && code >= 0 {
				mode := types.ExposureMode(code)
				meta.Mode = &mode
			}
		}
	}

	// Sidecar fills whatever EXIF could not provide.
	if meta.Bias == nil || meta.Mode == nil {
		if side, ok := e.sidecar(path); ok {
			decoded = true
			if meta.Bias == nil {
				meta.Bias = side.Bias
			}
			if meta.Mode == nil {
				meta.Mode = side.Mode
			}
		}
	}

	if !decoded {
		return Metadata{}, errors.Newf(errors.ErrMetadataDecode, "no readable metadata in %s", path)
	}
	return meta, nil
}

func (e *exifExtractor) sidecar(path string) (Metadata, bool) {
	sidePath, ok := SidecarPath(e.fs, path)
	if !ok {
		return Metadata{}, false
	}
	data, err := e.fs.ReadFile(sidePath)
	if err != nil {
		return Metadata{}, false
	}
	meta, err := ParseSidecar(data)
	if err != nil {
		logger := logging.GetLogger("rawmeta")
		logger.Debug().Err(err).Str("path", sidePath).Msg("sidecar unparseable")
		return Metadata{}, false
	}
	return meta, true
}
