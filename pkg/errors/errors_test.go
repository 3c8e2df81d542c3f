package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAndNewf(t *testing.T) {
	err := New(ErrDirRead, "cannot read directory")
	assert.Equal(t, "[DIR_READ] cannot read directory", err.Error())

	err = Newf(ErrFileMove, "cannot move %s", "a.nef")
	assert.Equal(t, "[FILE_MOVE] cannot move a.nef", err.Error())
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("permission denied")
	err := Wrap(cause, ErrManifestWrite, "manifest append failed")

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "permission denied")
	assert.Contains(t, err.Error(), "manifest append failed")
}

func TestIsErrorCode(t *testing.T) {
	err := New(ErrSequenceInvalid, "bad sequence")

	assert.True(t, IsErrorCode(err, ErrSequenceInvalid))
	assert.False(t, IsErrorCode(err, ErrEngineBusy))
	assert.False(t, IsErrorCode(stderrors.New("plain"), ErrSequenceInvalid))
	assert.False(t, IsErrorCode(nil, ErrSequenceInvalid))

	// Codes survive wrapping by callers.
	wrapped := fmt.Errorf("during pass: %w", err)
	assert.True(t, IsErrorCode(wrapped, ErrSequenceInvalid))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, ErrEngineBusy, GetErrorCode(New(ErrEngineBusy, "busy")))
	assert.Equal(t, ErrUnknown, GetErrorCode(stderrors.New("plain")))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrMetadataDecode, "no metadata").WithDetail("path", "/photos/a.nef")

	var be *BracktError
	require.True(t, stderrors.As(err, &be))
	assert.Equal(t, "/photos/a.nef", be.Details["path"])
}
