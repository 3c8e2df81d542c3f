package rawmeta_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brackt/brackt/pkg/rawmeta"
	"github.com/brackt/brackt/pkg/testutil"
	"github.com/brackt/brackt/pkg/types"
)

const sidecarWithAttributes = `<?xml version="1.0"?>
<x:xmpmeta xmlns:x="adobe:ns:meta/">
  <rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#">
    <rdf:Description rdf:about=""
        xmlns:exif="http://ns.adobe.com/exif/1.0/"
        exif:ExposureBiasValue="-1/2"
        exif:ExposureMode="2"/>
  </rdf:RDF>
</x:xmpmeta>`

const sidecarWithElements = `<?xml version="1.0"?>
<x:xmpmeta xmlns:x="adobe:ns:meta/">
  <rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#">
    <rdf:Description rdf:about="" xmlns:exif="http://ns.adobe.com/exif/1.0/">
      <exif:ExposureBiasValue>5/10</exif:ExposureBiasValue>
      <exif:ExposureMode>1</exif:ExposureMode>
    </rdf:Description>
  </rdf:RDF>
</x:xmpmeta>`

func TestParseSidecar(t *testing.T) {
	t.Run("properties as attributes", func(t *testing.T) {
		meta, err := rawmeta.ParseSidecar([]byte(sidecarWithAttributes))
		require.NoError(t, err)
		require.NotNil(t, meta.Bias)
		assert.True(t, meta.Bias.Equal(testutil.Rat(t, -1, 2)))
		require.NotNil(t, meta.Mode)
		assert.Equal(t, types.ExposureAutoBracket, *meta.Mode)
	})

	t.Run("properties as elements", func(t *testing.T) {
		meta, err := rawmeta.ParseSidecar([]byte(sidecarWithElements))
		require.NoError(t, err)
		require.NotNil(t, meta.Bias)
		assert.True(t, meta.Bias.Equal(testutil.Rat(t, 1, 2)))
		require.NotNil(t, meta.Mode)
		assert.Equal(t, types.ExposureManual, *meta.Mode)
	})

	t.Run("missing properties yield empty metadata", func(t *testing.T) {
		meta, err := rawmeta.ParseSidecar([]byte(`<x:xmpmeta xmlns:x="adobe:ns:meta/"/>`))
		require.NoError(t, err)
		assert.Nil(t, meta.Bias)
		assert.Nil(t, meta.Mode)
	})

	t.Run("malformed XML is an error", func(t *testing.T) {
		_, err := rawmeta.ParseSidecar([]byte("<unclosed"))
		assert.Error(t, err)
	})
}

func TestSidecarPath(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	require.NoError(t, fsys.MkdirAll("/photos", 0755))
	require.NoError(t, fsys.WriteFile("/photos/a.xmp", []byte(sidecarWithAttributes), 0644))
	require.NoError(t, fsys.WriteFile("/photos/b.nef.xmp", []byte(sidecarWithAttributes), 0644))

	t.Run("stem form", func(t *testing.T) {
		path, ok := rawmeta.SidecarPath(fsys, "/photos/a.nef")
		require.True(t, ok)
		assert.Equal(t, "/photos/a.xmp", path)
	})

	t.Run("full-name form", func(t *testing.T) {
		path, ok := rawmeta.SidecarPath(fsys, "/photos/b.nef")
		require.True(t, ok)
		assert.Equal(t, "/photos/b.nef.xmp", path)
	})

	t.Run("no sidecar", func(t *testing.T) {
		_, ok := rawmeta.SidecarPath(fsys, "/photos/c.nef")
		assert.False(t, ok)
	})
}
