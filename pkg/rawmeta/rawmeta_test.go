package rawmeta_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brackt/brackt/pkg/errors"
	"github.com/brackt/brackt/pkg/rawmeta"
	"github.com/brackt/brackt/pkg/testutil"
	"github.com/brackt/brackt/pkg/types"
)

func TestExtractFallsBackToSidecar(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	require.NoError(t, fsys.MkdirAll("/photos", 0755))
	// Junk bytes: not a TIFF container, so EXIF decoding fails and the
	// sidecar becomes the only source.
	require.NoError(t, fsys.WriteFile("/photos/a.nef", []byte("not a raw file"), 0644))
	require.NoError(t, fsys.WriteFile("/photos/a.xmp", []byte(sidecarWithAttributes), 0644))

	ex := rawmeta.NewExtractor(fsys)
	meta, err := ex.Extract("/photos/a.nef")
	require.NoError(t, err)
	require.NotNil(t, meta.Bias)
	assert.True(t, meta.Bias.Equal(testutil.Rat(t, -1, 2)))
	require.NotNil(t, meta.Mode)
	assert.Equal(t, types.ExposureAutoBracket, *meta.Mode)
}

func TestExtractWithNoSourceIsAnError(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	require.NoError(t, fsys.MkdirAll("/photos", 0755))
	require.NoError(t, fsys.WriteFile("/photos/a.nef", []byte("not a raw file"), 0644))

	ex := rawmeta.NewExtractor(fsys)
	_, err := ex.Extract("/photos/a.nef")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrMetadataDecode))
}

func TestExtractWithUnreadableFileStillTriesSidecar(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	require.NoError(t, fsys.MkdirAll("/photos", 0755))
	require.NoError(t, fsys.WriteFile("/photos/a.nef", []byte("x"), 0644))
	require.NoError(t, fsys.WriteFile("/photos/a.xmp", []byte(sidecarWithElements), 0644))
	fsys.InjectError("/photos/a.nef", assert.AnError)

	ex := rawmeta.NewExtractor(fsys)
	meta, err := ex.Extract("/photos/a.nef")
	require.NoError(t, err)
	require.NotNil(t, meta.Bias)
	assert.True(t, meta.Bias.Equal(testutil.Rat(t, 1, 2)))
}
