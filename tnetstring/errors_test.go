package tnetstring

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorIsMatchesByKind(t *testing.T) {
	_, err := ParseAt([]byte("3bar,"), 0)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalidTNetstring))
	require.False(t, errors.Is(err, ErrKeyNotFound))
}

func TestErrorMessage(t *testing.T) {
	err := Errorf(KeyNotFound, "key %q not found", "foo")
	require.Equal(t, `KeyNotFound: key "foo" not found`, err.Error())

	require.Equal(t, "OutOfMemory", ErrOutOfMemory.Error())
}
