package storage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRCErrorWrapping(t *testing.T) {
	cause := errors.New("disk exploded")
	err := newRCError(RCIoError, "PinPage", cause)

	require.ErrorIs(t, err, cause)
	require.Equal(t, RCIoError, Code(err))
	require.Contains(t, err.Error(), "PinPage")
	require.Contains(t, err.Error(), "IoError")
}

func TestCodeOnNilError(t *testing.T) {
	require.Equal(t, RCOk, Code(nil))
}
