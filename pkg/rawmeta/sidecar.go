package rawmeta

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/brackt/brackt/pkg/ev"
	"github.com/brackt/brackt/pkg/types"
)

// Local names of the XMP properties carrying exposure data. XMP writers
// disagree on whether these appear as rdf:Description attributes or as child
// elements, so lookup checks both, by local name, ignoring the namespace
// prefix.
const (
	xmpBiasName = "ExposureBiasValue"
	xmpModeName = "ExposureMode"
)

// SidecarPath returns the existing XMP sidecar for a RAW file, trying the
// stem form (IMG_001.xmp) before the full-name form (IMG_001.nef.xmp).
func SidecarPath(fsys types.FS, path string) (string, bool) {
	for _, candidate := range sidecarCandidates(path) {
		if info, err := fsys.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
	}
	return "", false
}

func sidecarCandidates(path string) []string {
	stem := strings.TrimSuffix(path, filepath.Ext(path))
	return []string{stem + ".xmp", path + ".xmp"}
}

// ParseSidecar extracts exposure metadata from XMP sidecar XML.
func ParseSidecar(data []byte) (Metadata, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return Metadata{}, fmt.Errorf("malformed sidecar XML: %w", err)
	}

	var meta Metadata
	if raw, ok := findProperty(doc.Root(), xmpBiasName); ok {
		if v, ok := ev.Parse(strings.TrimSpace(raw)); ok {
			meta.Bias = &v
		}
	}
	if raw, ok := findProperty(doc.Root(), xmpModeName); ok {
		if code, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 16); err == nil {
			mode := types.ExposureMode(code)
			meta.Mode = &mode
		}
	}
	return meta, nil
}

// findProperty walks the tree for an element or attribute with the given
// local name and returns its value.
func findProperty(el *etree.Element, local string) (string, bool) {
	if el == nil {
		return "", false
	}
	if el.Tag == local {
		if text := strings.TrimSpace(el.Text()); text != "" {
			return text, true
		}
	}
	for _, attr := range el.Attr {
		if attr.Key == local {
			return attr.Value, true
		}
	}
	for _, child := range el.ChildElements() {
		if v, ok := findProperty(child, local); ok {
			return v, true
		}
	}
	return "", false
}
